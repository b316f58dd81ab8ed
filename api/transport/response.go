package transport

import "github.com/todogo/backend/domain"

// ErrorResponse is the failure body used by the task routes and user deletion.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body for plain confirmations and user-route failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserDataResponse wraps a user record with a localized confirmation.
type UserDataResponse struct {
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
}

// TaskDeleteResponse returns the deleted snapshot alongside the confirmation.
type TaskDeleteResponse struct {
	Message string       `json:"message"`
	Task    *domain.Task `json:"task"`
}
