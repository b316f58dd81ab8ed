package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/todogo/backend/domain"
	"github.com/todogo/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.List(ctx)
}

func (uc *UseCase) ListTasksByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return uc.tasks.ListByUser(ctx, userID)
}

func (uc *UseCase) CreateTask(ctx context.Context, userID *int64, description string) (*domain.Task, error) {
	task := &domain.Task{
		UserID:      userID,
		Description: description,
	}
	return uc.tasks.Create(ctx, task)
}

// SetCompletion updates the completion flag of a single task. A nil result
// with a nil error means no row matched; the handler answers 200 with an
// empty body in that case.
func (uc *UseCase) SetCompletion(ctx context.Context, id string, completed *bool) (*domain.Task, error) {
	return uc.tasks.SetCompletion(ctx, id, completed)
}

func (uc *UseCase) EditDescription(ctx context.Context, id int, description *string) (*domain.Task, error) {
	return uc.tasks.UpdateDescription(ctx, id, description)
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.Delete(ctx, id)
}
