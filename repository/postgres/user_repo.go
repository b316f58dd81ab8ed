package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/todogo/backend/domain"
	"github.com/todogo/backend/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT id, username, email, password FROM users`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Password); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) CheckConflicts(ctx context.Context, username, email string) (bool, bool, error) {
	const query = `SELECT username, email FROM users WHERE username = $1 OR email = $2`
	rows, err := r.pool.Query(ctx, query, username, email)
	if err != nil {
		return false, false, err
	}
	defer rows.Close()

	var usernameTaken, emailTaken bool
	for rows.Next() {
		var rowUsername, rowEmail string
		if err := rows.Scan(&rowUsername, &rowEmail); err != nil {
			return false, false, err
		}
		if rowUsername == username {
			usernameTaken = true
		}
		if rowEmail == email {
			emailTaken = true
		}
	}
	return usernameTaken, emailTaken, rows.Err()
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
	INSERT INTO users (username, email, password)
	VALUES ($1, $2, $3)
	RETURNING id, username, email, password
	`
	var created domain.User
	err := r.pool.QueryRow(ctx, query, user.Username, user.Email, user.Password).
		Scan(&created.ID, &created.Username, &created.Email, &created.Password)
	if err != nil {
		// The pre-check races with concurrent signups; a unique-constraint
		// rejection here keeps the 409 contract without in-process locking.
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `SELECT id, username, email, password FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT id, username, email, password FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *userRepository) getOne(ctx context.Context, query, arg string) (*domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
