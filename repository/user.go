package repository

import (
	"context"

	"github.com/todogo/backend/domain"
)

// UserRepository is the persistence gateway for the users table.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	// CheckConflicts reports whether the username and/or the email are
	// already taken, using a single query over both columns.
	CheckConflicts(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
