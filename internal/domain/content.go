// Response content payloads.
//
// A response's content column stores a small JSON document whose shape is
// decided at write time by the producing client: either a structured
// high/low pair or plain free text. A "type" tag names the variant.
package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// Content type tags persisted in the "type" field of the content document.
const (
	ContentTypeHighLow = "high-low"
	ContentTypeText    = "text"
)

// ErrInvalidContent is returned when a content document is malformed, has an
// unknown type tag, or is empty for its declared variant.
var ErrInvalidContent = errors.New("invalid response content")

// ResponseContent is the tagged variant carried by Response.Content.
//
// Exactly one shape is populated depending on Type:
//   - ContentTypeHighLow: High and Low (at least one non-empty)
//   - ContentTypeText:    Text (non-empty)
type ResponseContent struct {
	Type string `json:"type"`
	High string `json:"high,omitempty"`
	Low  string `json:"low,omitempty"`
	Text string `json:"text,omitempty"`
}

// Validate checks that the variant tag is known and the corresponding
// payload fields are present.
func (c ResponseContent) Validate() error {
	switch c.Type {
	case ContentTypeHighLow:
		if strings.TrimSpace(c.High) == "" && strings.TrimSpace(c.Low) == "" {
			return ErrInvalidContent
		}
	case ContentTypeText:
		if strings.TrimSpace(c.Text) == "" {
			return ErrInvalidContent
		}
	default:
		return ErrInvalidContent
	}
	return nil
}

// Encode validates the content and returns its serialized form for storage.
func (c ResponseContent) Encode() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeResponseContent parses a stored content document. Documents written
// before the tag was introduced (bare text) are not expected; a parse
// failure or unknown tag yields ErrInvalidContent.
func DecodeResponseContent(raw string) (ResponseContent, error) {
	var c ResponseContent
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return ResponseContent{}, ErrInvalidContent
	}
	if err := c.Validate(); err != nil {
		return ResponseContent{}, err
	}
	return c, nil
}
