// Prompt HTTP handlers.
//
// This file exposes REST endpoints for weekly prompts:
//   - GET /prompts/current                      (active prompt)
//   - GET /prompts/{promptId}/stats/{podId}     (pod-scoped prompt stats)
//
// Prompts are read-only over HTTP; they are written by the seed path.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intouchhq/go-intouch-backend/internal/services"
	"github.com/intouchhq/go-intouch-backend/internal/utils"
)

// CurrentPrompt godoc
// @ID          currentPrompt
// @Summary     Current weekly prompt
// @Description Returns the most recently started active prompt.
// @Tags        Prompts
// @Produce     json
//
// @Success     200  {object} domain.Prompt
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     404  {object} handlers.ErrorResponse "No active prompt"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /prompts/current [get]
func (h *Handlers) CurrentPrompt(c *gin.Context) {
	prompt, err := h.promptSvc.Current(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	if prompt == nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no active prompt")
		return
	}
	ok(c, http.StatusOK, prompt)
}

// PromptStats godoc
// @ID          promptStats
// @Summary     Prompt stats for a pod
// @Description Returns the prompt with its response count, the pod's member count, and days remaining. Caller must be a pod member.
// @Tags        Prompts
// @Produce     json
//
// @Param       promptId  path  int  true  "Prompt ID"  example(1)
// @Param       podId     path  int  true  "Pod ID"     example(1)
//
// @Success     200  {object} domain.PromptWithStats
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not a member"
// @Failure     404  {object} handlers.ErrorResponse "Prompt or pod not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /prompts/{promptId}/stats/{podId} [get]
func (h *Handlers) PromptStats(c *gin.Context) {
	promptID, okPrompt := utils.ParseID(c.Param("promptId"))
	podID, okPod := utils.ParseID(c.Param("podId"))
	if !okPrompt || !okPod {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "prompt id and pod id must be positive integers")
		return
	}

	stats, err := h.promptSvc.StatsForPod(c.Request.Context(), userID(c), promptID, podID)
	if err != nil {
		switch err {
		case services.ErrPromptNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "prompt not found")
		default:
			podFail(c, err)
		}
		return
	}
	ok(c, http.StatusOK, stats)
}
