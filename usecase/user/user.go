package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/todogo/backend/domain"
	"github.com/todogo/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

func (uc *UseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.users.List(ctx)
}

// Signup checks username and email uniqueness in one pass, reporting both
// conflicts together when both collide, then inserts the new row. The
// check-then-insert window is closed by the users table's unique
// constraints: a concurrent duplicate fails the insert and the repository
// maps it to the same conflict semantics.
func (uc *UseCase) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	usernameTaken, emailTaken, err := uc.users.CheckConflicts(ctx, username, email)
	if err != nil {
		return nil, err
	}
	switch {
	case usernameTaken && emailTaken:
		return nil, domain.NewError(domain.ErrCodeConflict, domain.MsgUsernameEmailTaken)
	case usernameTaken:
		return nil, domain.NewError(domain.ErrCodeConflict, domain.MsgUsernameTaken)
	case emailTaken:
		return nil, domain.NewError(domain.ErrCodeConflict, domain.MsgEmailTaken)
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Password: password,
	}
	return uc.users.Create(ctx, user)
}

// Login looks the account up by username when one is provided, otherwise by
// email, then verifies the remaining credentials against the row.
func (uc *UseCase) Login(ctx context.Context, username, email, password string) (*domain.User, error) {
	var (
		account *domain.User
		err     error
	)
	if username != "" {
		account, err = uc.users.GetByUsername(ctx, username)
	} else {
		account, err = uc.users.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	if username != "" && email != "" && account.Email != email {
		return nil, domain.ErrInvalidCredentials
	}
	if account.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

func (uc *UseCase) DeleteUser(ctx context.Context, id string) error {
	return uc.users.Delete(ctx, id)
}
