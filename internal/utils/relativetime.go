// Relative-time labels for feed entries.
//
// These labels are purely cosmetic. A timestamp the label cannot be computed
// from sensibly (zero value, clock skew putting it in the future) degrades
// to a neutral placeholder; it must never fail the listing that uses it.
package utils

import (
	"fmt"
	"time"
)

// relativeTimePlaceholder is returned when no sensible label exists.
const relativeTimePlaceholder = "recently"

// RelativeTime renders a coarse "time ago" label for t relative to now.
func RelativeTime(t time.Time) string {
	return RelativeTimeAt(t, time.Now().UTC())
}

// RelativeTimeAt is RelativeTime with an explicit reference instant, so the
// label is testable without a real clock.
func RelativeTimeAt(t, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return relativeTimePlaceholder
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	}
}
