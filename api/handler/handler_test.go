package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/todogo/backend/domain"
)

var errStoreDown = errors.New("connection refused")

// newRequestCtx builds a fasthttp request context the way the router would
// hand it to a handler. Path params are injected via SetUserValue.
func newRequestCtx(method, uri string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), out))
}

func boolPtr(v bool) *bool    { return &v }
func int64Ptr(v int64) *int64 { return &v }

// fakeTaskRepo is an in-memory TaskRepository with an error-injection switch.
type fakeTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
	fail   bool
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (r *fakeTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	if r.fail {
		return nil, errStoreDown
	}
	out := make([]domain.Task, 0)
	for id := int64(1); id < r.nextID; id++ {
		if task, ok := r.tasks[id]; ok {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	if r.fail {
		return nil, errStoreDown
	}
	out := make([]domain.Task, 0)
	for id := int64(1); id < r.nextID; id++ {
		task, ok := r.tasks[id]
		if !ok || task.UserID == nil {
			continue
		}
		if idString(*task.UserID) == userID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if r.fail {
		return nil, errStoreDown
	}
	created := *task
	created.ID = r.nextID
	r.nextID++
	r.tasks[created.ID] = &created
	snapshot := created
	return &snapshot, nil
}

func (r *fakeTaskRepo) SetCompletion(ctx context.Context, id string, completed *bool) (*domain.Task, error) {
	if r.fail {
		return nil, errStoreDown
	}
	task := r.lookup(id)
	if task == nil {
		return nil, nil
	}
	task.Completed = completed
	snapshot := *task
	return &snapshot, nil
}

func (r *fakeTaskRepo) UpdateDescription(ctx context.Context, id int, description *string) (*domain.Task, error) {
	if r.fail {
		return nil, errStoreDown
	}
	task, ok := r.tasks[int64(id)]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if description != nil {
		task.Description = *description
	}
	snapshot := *task
	return &snapshot, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) (*domain.Task, error) {
	if r.fail {
		return nil, errStoreDown
	}
	task := r.lookup(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	delete(r.tasks, task.ID)
	return task, nil
}

func (r *fakeTaskRepo) lookup(id string) *domain.Task {
	for taskID, task := range r.tasks {
		if idString(taskID) == id {
			return task
		}
	}
	return nil
}

// fakeUserRepo mirrors the users table, including unique-violation injection
// for the insert race path.
type fakeUserRepo struct {
	users        map[int64]*domain.User
	nextID       int64
	fail         bool
	raceConflict *domain.Error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if r.fail {
		return nil, errStoreDown
	}
	out := make([]domain.User, 0)
	for id := int64(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CheckConflicts(ctx context.Context, username, email string) (bool, bool, error) {
	if r.fail {
		return false, false, errStoreDown
	}
	var usernameTaken, emailTaken bool
	for _, user := range r.users {
		if user.Username == username {
			usernameTaken = true
		}
		if user.Email == email {
			emailTaken = true
		}
	}
	return usernameTaken, emailTaken, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if r.fail {
		return nil, errStoreDown
	}
	if r.raceConflict != nil {
		return nil, r.raceConflict
	}
	created := *user
	created.ID = r.nextID
	r.nextID++
	r.users[created.ID] = &created
	snapshot := created
	return &snapshot, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if r.fail {
		return nil, errStoreDown
	}
	for _, user := range r.users {
		if user.Username == username {
			snapshot := *user
			return &snapshot, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.fail {
		return nil, errStoreDown
	}
	for _, user := range r.users {
		if user.Email == email {
			snapshot := *user
			return &snapshot, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if r.fail {
		return errStoreDown
	}
	for userID := range r.users {
		if idString(userID) == id {
			delete(r.users, userID)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
