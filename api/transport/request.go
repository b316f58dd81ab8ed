package transport

type TaskCreateRequest struct {
	UserID      *int64 `json:"user_id"`
	Description string `json:"description" validate:"required"`
}

// TaskCompletionRequest carries the completion flag. A missing field stays
// nil and is passed through to the store as NULL.
type TaskCompletionRequest struct {
	Completed *bool `json:"completed"`
}

type TaskEditRequest struct {
	Description *string `json:"description"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest accepts either identifier; username wins when both are set.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}
