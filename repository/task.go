package repository

import (
	"context"

	"github.com/todogo/backend/domain"
)

// TaskRepository is the persistence gateway for the tasks table.
//
// ListByUser and the id parameters of SetCompletion and Delete take the raw
// path segment: the value is handed to the store as-is and a non-numeric
// segment surfaces as a store error, not a validation error.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// SetCompletion returns (nil, nil) when no row matches the id.
	SetCompletion(ctx context.Context, id string, completed *bool) (*domain.Task, error)
	UpdateDescription(ctx context.Context, id int, description *string) (*domain.Task, error)
	// Delete returns the deleted snapshot.
	Delete(ctx context.Context, id string) (*domain.Task, error)
}
