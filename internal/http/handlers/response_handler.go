// Response HTTP handlers.
//
// This file exposes REST endpoints for prompt responses, the pod feed, and
// likes:
//   - POST   /responses                         (submit response)
//   - GET    /pods/{podId}/responses            (pod feed, optional promptId)
//   - POST   /responses/{responseId}/like       (like)
//   - DELETE /responses/{responseId}/like       (unlike)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate domain/service errors into HTTP results. One response per
// user per prompt per pod; a second submit is a conflict, as is a second like.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intouchhq/go-intouch-backend/internal/domain"
	"github.com/intouchhq/go-intouch-backend/internal/services"
	"github.com/intouchhq/go-intouch-backend/internal/utils"
)

// CreateResponseRequest is the JSON payload for submitting a response.
//
// Content carries the typed response document: for "high-low" both high and
// low are required, for "text" the text field is required.
type CreateResponseRequest struct {
	PromptID int                    `json:"prompt_id" binding:"required,min=1" example:"1"`
	PodID    int                    `json:"pod_id" binding:"required,min=1" example:"1"`
	Content  domain.ResponseContent `json:"content" binding:"required"`
	ImageURL *string                `json:"image_url,omitempty" example:"https://cdn.example.com/pic.jpg"`
}

// UnlikeResponseResult reports whether an unlike actually deleted a like.
type UnlikeResponseResult struct {
	Removed bool `json:"removed" example:"true"`
}

// likeFail maps like/unlike service errors common to both endpoints.
// It returns false when err was nil and nothing was written.
func likeFail(c *gin.Context, err error) bool {
	switch err {
	case nil:
		return false
	case services.ErrResponseNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, "response not found")
	case services.ErrNotPodMember:
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not a member of this pod")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
	return true
}

// CreateResponse godoc
// @ID          createResponse
// @Summary     Submit a response
// @Description Records the caller's response to a prompt within a pod. One response per user per prompt per pod.
// @Tags        Responses
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateResponseRequest  true  "Response payload"
//
// @Success     201  {object} domain.Response
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload or content"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not a member"
// @Failure     404  {object} handlers.ErrorResponse "Pod or prompt not found"
// @Failure     409  {object} handlers.ErrorResponse "Already responded"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /responses [post]
func (h *Handlers) CreateResponse(c *gin.Context) {
	var req CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "prompt_id, pod_id, and content are required")
		return
	}

	resp, err := h.respSvc.Create(c.Request.Context(), userID(c), req.PromptID, req.PodID, req.Content, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidContent):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrPromptNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "prompt not found")
		case errors.Is(err, services.ErrDuplicateResponse):
			fail(c, http.StatusConflict, ErrCodeConflict, "already responded to this prompt")
		default:
			podFail(c, err)
		}
		return
	}
	ok(c, http.StatusCreated, resp)
}

// ListPodResponses godoc
// @ID          listPodResponses
// @Summary     Pod response feed
// @Description Returns the visible responses of a pod, newest first, with author, like, and comment details. Caller must be a member.
// @Tags        Responses
// @Produce     json
//
// @Param       podId     path   int  true   "Pod ID"                example(1)
// @Param       promptId  query  int  false  "Filter by prompt ID"   example(1)
//
// @Success     200  {array}  domain.ResponseWithDetails
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not a member"
// @Failure     404  {object} handlers.ErrorResponse "Pod not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /pods/{podId}/responses [get]
func (h *Handlers) ListPodResponses(c *gin.Context) {
	podID, okID := utils.ParseID(c.Param("podId"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pod id must be a positive integer")
		return
	}

	var promptID *int
	if q := c.Query("promptId"); q != "" {
		id, okQ := utils.ParseID(q)
		if !okQ {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "promptId must be a positive integer")
			return
		}
		promptID = &id
	}

	feed, err := h.respSvc.PodFeed(c.Request.Context(), userID(c), podID, promptID)
	if podFail(c, err) {
		return
	}
	ok(c, http.StatusOK, feed)
}

// LikeResponse godoc
// @ID          likeResponse
// @Summary     Like a response
// @Description Records the caller's like on a response. Caller must be a member of the response's pod.
// @Tags        Responses
// @Produce     json
//
// @Param       responseId  path  int  true  "Response ID"  example(1)
//
// @Success     201  {object} domain.ResponseLike
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not a member"
// @Failure     404  {object} handlers.ErrorResponse "Response not found"
// @Failure     409  {object} handlers.ErrorResponse "Already liked"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /responses/{responseId}/like [post]
func (h *Handlers) LikeResponse(c *gin.Context) {
	responseID, okID := utils.ParseID(c.Param("responseId"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "response id must be a positive integer")
		return
	}

	like, err := h.respSvc.Like(c.Request.Context(), userID(c), responseID)
	if err != nil {
		if err == services.ErrAlreadyLiked {
			fail(c, http.StatusConflict, ErrCodeConflict, "response already liked")
			return
		}
		likeFail(c, err)
		return
	}
	ok(c, http.StatusCreated, like)
}

// UnlikeResponse godoc
// @ID          unlikeResponse
// @Summary     Remove a like
// @Description Removes the caller's like on a response. Caller must be a member of the response's pod. Unliking with no like present succeeds with removed=false.
// @Tags        Responses
// @Produce     json
//
// @Param       responseId  path  int  true  "Response ID"  example(1)
//
// @Success     200  {object} handlers.UnlikeResponseResult
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not a member"
// @Failure     404  {object} handlers.ErrorResponse "Response not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /responses/{responseId}/like [delete]
func (h *Handlers) UnlikeResponse(c *gin.Context) {
	responseID, okID := utils.ParseID(c.Param("responseId"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "response id must be a positive integer")
		return
	}

	// A missing like is not an error: the caller's desired end state holds
	// either way, so report it through the removed flag.
	removed, err := h.respSvc.Unlike(c.Request.Context(), userID(c), responseID)
	if likeFail(c, err) {
		return
	}
	ok(c, http.StatusOK, UnlikeResponseResult{Removed: removed})
}
