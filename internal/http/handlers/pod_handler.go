// Pod HTTP handlers.
//
// This file exposes REST endpoints for pods and memberships:
//   - POST   /pods                            (create)
//   - GET    /pods                            (list caller's pods)
//   - GET    /pods/{podId}/members            (list members)
//   - POST   /pods/{podId}/members            (add member, admin only)
//   - DELETE /pods/{podId}/members/{userId}   (remove member or leave)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate domain/service errors into HTTP results. A pod the caller is
// not a member of yields 403, a pod that does not exist yields 404.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intouchhq/go-intouch-backend/internal/services"
	"github.com/intouchhq/go-intouch-backend/internal/utils"
)

// CreatePodRequest is the JSON payload for creating a pod.
type CreatePodRequest struct {
	// Name is the pod display name (1-100 chars after normalization).
	Name        string  `json:"name" binding:"required,min=1,max=255" example:"College Friends"`
	Description *string `json:"description,omitempty" example:"The old crew from sophomore year"`
}

// AddPodMemberRequest is the JSON payload for adding a member to a pod.
type AddPodMemberRequest struct {
	UserID int `json:"user_id" binding:"required,min=1" example:"3"`
}

// podFail maps pod-scoped service errors shared by several endpoints.
// It returns false when err was nil and nothing was written.
func podFail(c *gin.Context, err error) bool {
	switch err {
	case nil:
		return false
	case services.ErrPodNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, "pod not found")
	case services.ErrNotPodMember:
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not a member of this pod")
	case services.ErrNotPodAdmin:
		fail(c, http.StatusForbidden, ErrCodeForbidden, "admin access required")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
	return true
}

// CreatePod godoc
// @ID          createPod
// @Summary     Create a pod
// @Description Creates a pod and adds the caller as its admin member.
// @Tags        Pods
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreatePodRequest  true  "Create pod payload"
//
// @Success     201  {object} domain.Pod
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /pods [post]
func (h *Handlers) CreatePod(c *gin.Context) {
	var req CreatePodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}

	pod, err := h.podSvc.Create(c.Request.Context(), userID(c), req.Name, req.Description)
	if err != nil {
		switch err {
		case services.ErrInvalidPodName:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pod name is required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, pod)
}

// ListPods godoc
// @ID          listPods
// @Summary     List the caller's pods
// @Description Returns every pod the caller belongs to, with member counts and the caller's admin flag.
// @Tags        Pods
// @Produce     json
//
// @Success     200  {array}  domain.PodWithStats
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /pods [get]
func (h *Handlers) ListPods(c *gin.Context) {
	pods, err := h.podSvc.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, pods)
}

// ListPodMembers godoc
// @ID          listPodMembers
// @Summary     List pod members
// @Description Returns the members of a pod with user details. Caller must be a member.
// @Tags        Pods
// @Produce     json
//
// @Param       podId  path  int  true  "Pod ID"  example(1)
//
// @Success     200  {array}  domain.PodMemberWithUser
// @Failure     400  {object} handlers.ErrorResponse "Invalid pod id"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not a member"
// @Failure     404  {object} handlers.ErrorResponse "Pod not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /pods/{podId}/members [get]
func (h *Handlers) ListPodMembers(c *gin.Context) {
	podID, okID := utils.ParseID(c.Param("podId"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pod id must be a positive integer")
		return
	}

	members, err := h.podSvc.Members(c.Request.Context(), userID(c), podID)
	if podFail(c, err) {
		return
	}
	ok(c, http.StatusOK, members)
}

// AddPodMember godoc
// @ID          addPodMember
// @Summary     Add a member to a pod
// @Description Adds a user to the pod. Caller must be a pod admin.
// @Tags        Pods
// @Accept      json
// @Produce     json
//
// @Param       podId  path  int  true  "Pod ID"  example(1)
// @Param       body   body  handlers.AddPodMemberRequest  true  "Member payload"
//
// @Success     201  {object} domain.PodMember
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not an admin"
// @Failure     404  {object} handlers.ErrorResponse "Pod or user not found"
// @Failure     409  {object} handlers.ErrorResponse "Already a member"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /pods/{podId}/members [post]
func (h *Handlers) AddPodMember(c *gin.Context) {
	podID, okID := utils.ParseID(c.Param("podId"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pod id must be a positive integer")
		return
	}

	var req AddPodMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user_id is required")
		return
	}

	member, err := h.podSvc.AddMember(c.Request.Context(), userID(c), podID, req.UserID)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		case services.ErrAlreadyMember:
			fail(c, http.StatusConflict, ErrCodeConflict, "already a member of this pod")
		default:
			podFail(c, err)
		}
		return
	}
	ok(c, http.StatusCreated, member)
}

// RemovePodMember godoc
// @ID          removePodMember
// @Summary     Remove a member from a pod
// @Description Removes a user from the pod. Admins may remove anyone; any member may remove themselves.
// @Tags        Pods
// @Produce     json
//
// @Param       podId   path  int  true  "Pod ID"   example(1)
// @Param       userId  path  int  true  "User ID"  example(3)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     401  {object} handlers.ErrorResponse "No valid session"
// @Failure     403  {object} handlers.ErrorResponse "Not allowed"
// @Failure     404  {object} handlers.ErrorResponse "Pod or membership not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /pods/{podId}/members/{userId} [delete]
func (h *Handlers) RemovePodMember(c *gin.Context) {
	podID, okPod := utils.ParseID(c.Param("podId"))
	targetID, okUser := utils.ParseID(c.Param("userId"))
	if !okPod || !okUser {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "pod id and user id must be positive integers")
		return
	}

	err := h.podSvc.RemoveMember(c.Request.Context(), userID(c), podID, targetID)
	if err != nil {
		switch err {
		case services.ErrMemberNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "membership not found")
		default:
			podFail(c, err)
		}
		return
	}
	noContent(c)
}
