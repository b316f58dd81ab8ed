package domain

// Task represents a to-do item, optionally owned by a user.
// Completed stays nil until the first completion update, so a freshly
// created row serializes with "completed": null, matching the table default.
type Task struct {
	ID          int64  `json:"id"`
	UserID      *int64 `json:"user_id"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed != nil && *t.Completed
}
