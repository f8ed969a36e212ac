// Package services defines the business logic for accounts, pods, prompts,
// and responses. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Account-related errors.
var (
	// ErrUsernameTaken indicates the requested username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken indicates the requested email already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords, to avoid leaking account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Pod-related errors.
var (
	// ErrInvalidPodName is returned when a pod name is empty after
	// normalization.
	ErrInvalidPodName = errors.New("pod name is required")

	// ErrPodNotFound indicates that the requested pod does not exist.
	ErrPodNotFound = errors.New("pod not found")

	// ErrNotPodMember is returned when the caller has a valid session but is
	// not a member of the pod an operation is scoped to. It is deliberately
	// distinct from not-found: the pod exists, the caller may not touch it.
	ErrNotPodMember = errors.New("not a member of this pod")

	// ErrNotPodAdmin is returned when a membership mutation requires the
	// caller's membership row to carry the admin flag.
	ErrNotPodAdmin = errors.New("not an admin of this pod")

	// ErrAlreadyMember is returned when adding a user who already has a
	// membership row for the pod.
	ErrAlreadyMember = errors.New("already a member of this pod")

	// ErrMemberNotFound is returned when removing a user who has no
	// membership row for the pod.
	ErrMemberNotFound = errors.New("membership not found")
)

// Prompt- and response-related errors.
var (
	// ErrPromptNotFound indicates that the requested prompt does not exist.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrResponseNotFound indicates that the requested response does not exist.
	ErrResponseNotFound = errors.New("response not found")

	// ErrDuplicateResponse is returned when the caller has already responded
	// to this prompt in this pod.
	ErrDuplicateResponse = errors.New("already responded to this prompt")

	// ErrAlreadyLiked is returned when the caller has already liked the
	// response. The unique index makes a second like a conflict instead of
	// a second row.
	ErrAlreadyLiked = errors.New("response already liked")
)
