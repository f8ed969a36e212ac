// Package services – ResponseService
//
// This file implements ResponseService, which owns the response lifecycle:
// creation under the one-response-per-(user,prompt,pod) rule, the enriched
// pod feed with requester-aware like state, and the like/unlike reactions.
//
// Concurrency & atomicity: the duplicate-response and duplicate-like checks
// run inside transactions AND are backed by unique indexes, with driver
// duplicate errors translated to the same conflict sentinels. Two concurrent
// submissions of the same triple therefore produce exactly one row.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/repo"
	"github.com/intouchhq/go-intouch-backend/internal/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ResponseService implements the use-cases around responses and reactions.
type ResponseService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewResponseService constructs a ResponseService.
func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{DB: db}
}

// Create persists a response by userID to promptID within podID.
//
// Preconditions, checked in order inside one transaction:
//   - podID exists (ErrPodNotFound) and the caller is a member
//     (ErrNotPodMember).
//   - promptID exists (ErrPromptNotFound).
//   - content is a valid tagged variant (domain.ErrInvalidContent).
//   - no response exists yet for the triple (ErrDuplicateResponse).
//
// On any violation nothing is written. On success the response is visible.
func (s *ResponseService) Create(ctx context.Context, userID, promptID, podID int, content domain.ResponseContent, imageURL *string) (*domain.Response, error) {
	tr := otel.Tracer("services/ResponseService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int("user.id", userID),
			attribute.Int("prompt.id", promptID),
			attribute.Int("pod.id", podID),
		),
	)
	defer span.End()

	encoded, err := content.Encode()
	if err != nil {
		return nil, err
	}

	resp := &domain.Response{
		PromptID: promptID,
		PodID:    podID,
		UserID:   userID,
		Content:  encoded,
		ImageURL: imageURL,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireMemberTx(ctx, tx, userID, podID); err != nil {
			return err
		}
		if _, err := repo.GetPrompt(ctx, tx, promptID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPromptNotFound
			}
			return err
		}
		existing, err := repo.GetUserResponseForPrompt(ctx, tx, userID, promptID, podID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateResponse
		}
		if err := repo.CreateResponse(ctx, tx, resp); err != nil {
			if isDuplicate(err) {
				return ErrDuplicateResponse
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// PodFeed returns the visible responses for a pod, optionally filtered to
// one prompt, newest first, each enriched with author, pod, live like and
// comment counts, the comments themselves, and whether the requesting user
// has liked it. IsLiked is computed per requester at read time; it is never
// stored or shared between users.
//
// The relative-time label is cosmetic: if it cannot be computed sensibly it
// degrades to a neutral placeholder rather than failing the listing.
func (s *ResponseService) PodFeed(ctx context.Context, callerID, podID int, promptID *int) ([]domain.ResponseWithDetails, error) {
	tr := otel.Tracer("services/ResponseService")
	ctx, span := tr.Start(ctx, "PodFeed",
		trace.WithAttributes(
			attribute.Int("user.id", callerID),
			attribute.Int("pod.id", podID),
		),
	)
	defer span.End()

	if err := requireMemberTx(ctx, s.DB, callerID, podID); err != nil {
		return nil, err
	}

	responses, err := repo.ListPodResponses(ctx, s.DB, podID, promptID)
	if err != nil {
		return nil, err
	}

	pod, err := repo.GetPod(ctx, s.DB, podID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ResponseWithDetails, 0, len(responses))
	for _, r := range responses {
		author, err := repo.GetUser(ctx, s.DB, r.UserID)
		if err != nil {
			return nil, err
		}
		likes, err := repo.CountResponseLikes(ctx, s.DB, r.ID)
		if err != nil {
			return nil, err
		}
		liked, err := repo.HasLiked(ctx, s.DB, r.ID, callerID)
		if err != nil {
			return nil, err
		}
		comments, err := repo.GetResponseComments(ctx, s.DB, r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ResponseWithDetails{
			Response:      r,
			User:          *author,
			Pod:           *pod,
			LikesCount:    int(likes),
			CommentsCount: len(comments),
			IsLiked:       liked,
			Comments:      comments,
			TimeAgo:       utils.RelativeTime(r.CreatedAt),
		})
	}
	return out, nil
}

// Like records a like by userID on responseID. Membership is re-derived from
// the response's own pod reference, never trusted from the request. Liking a
// response twice yields ErrAlreadyLiked and leaves the count unchanged.
func (s *ResponseService) Like(ctx context.Context, userID, responseID int) (*domain.ResponseLike, error) {
	tr := otel.Tracer("services/ResponseService")
	ctx, span := tr.Start(ctx, "Like",
		trace.WithAttributes(
			attribute.Int("user.id", userID),
			attribute.Int("response.id", responseID),
		),
	)
	defer span.End()

	var like *domain.ResponseLike
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resp, err := repo.GetResponse(ctx, tx, responseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResponseNotFound
			}
			return err
		}
		if err := requireMemberTx(ctx, tx, userID, resp.PodID); err != nil {
			return err
		}
		l, err := repo.LikeResponse(ctx, tx, responseID, userID)
		if err != nil {
			if isDuplicate(err) {
				return ErrAlreadyLiked
			}
			return err
		}
		like = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

// Unlike removes userID's like on responseID and reports whether a like was
// actually removed. Unliking with no like present returns (false, nil): a
// not-removed result, not an error.
func (s *ResponseService) Unlike(ctx context.Context, userID, responseID int) (bool, error) {
	tr := otel.Tracer("services/ResponseService")
	ctx, span := tr.Start(ctx, "Unlike",
		trace.WithAttributes(
			attribute.Int("user.id", userID),
			attribute.Int("response.id", responseID),
		),
	)
	defer span.End()

	resp, err := repo.GetResponse(ctx, s.DB, responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrResponseNotFound
		}
		return false, err
	}
	if err := requireMemberTx(ctx, s.DB, userID, resp.PodID); err != nil {
		return false, err
	}
	return repo.UnlikeResponse(ctx, s.DB, responseID, userID)
}
