package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/todogo/backend/domain"
	"github.com/todogo/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	// No ORDER BY: callers get store-native (insertion) order.
	const query = `SELECT id, user_id, description, completed FROM tasks`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	// userID is the raw path segment. Postgres casts the parameter against
	// the integer column; a non-numeric value fails here and surfaces as a
	// store error.
	const query = `SELECT id, user_id, description, completed FROM tasks WHERE user_id = $1`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const query = `
	INSERT INTO tasks (user_id, description)
	VALUES ($1, $2)
	RETURNING id, user_id, description, completed
	`
	row := r.pool.QueryRow(ctx, query, task.UserID, task.Description)
	return scanTask(row)
}

func (r *taskRepository) SetCompletion(ctx context.Context, id string, completed *bool) (*domain.Task, error) {
	const query = `
	UPDATE tasks SET completed = $1
	WHERE id = $2
	RETURNING id, user_id, description, completed
	`
	row := r.pool.QueryRow(ctx, query, completed, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Silent no-op when the id matches nothing.
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) UpdateDescription(ctx context.Context, id int, description *string) (*domain.Task, error) {
	const query = `
	UPDATE tasks SET description = $1
	WHERE id = $2
	RETURNING id, user_id, description, completed
	`
	row := r.pool.QueryRow(ctx, query, description, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
	DELETE FROM tasks
	WHERE id = $1
	RETURNING id, user_id, description, completed
	`
	row := r.pool.QueryRow(ctx, query, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(&task.ID, &task.UserID, &task.Description, &task.Completed); err != nil {
		return nil, err
	}
	return &task, nil
}

func collectTasks(rows pgx.Rows) ([]domain.Task, error) {
	// Non-nil so an empty table serializes as [] rather than null.
	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}
