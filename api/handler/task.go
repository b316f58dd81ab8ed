package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todogo/backend/api/transport"
	"github.com/todogo/backend/domain"
	"github.com/todogo/backend/pkg/httpcontext"
	taskUC "github.com/todogo/backend/usecase/task"
)

// Localized task-route messages, kept verbatim from the original frontend contract.
const (
	msgTaskFetchFailed    = "タスクの取得に失敗しました"
	msgTaskInputRequired  = "入力は必須です"
	msgTaskInternalError  = "内部サーバーエラーが発生しました。"
	msgTaskCompleteFailed = "Todo の更新中にエラーが発生しました。"
	msgTaskDeleted        = "タスクは正常に削除されました。"
	// The delete route historically spelled サーバ without the long vowel.
	msgTaskDeleteInternal = "内部サーバエラーが発生しました。"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List all tasks
// @Tags tasks
// @Router /todos [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx)
	if err != nil {
		h.failWithError(ctx, err, msgTaskFetchFailed)
		return
	}
	h.respondJSON(ctx, http.StatusOK, tasks)
}

// @Summary List tasks owned by a user
// @Tags tasks
// @Router /todos/{user_id} [get]
func (h *TaskHandler) GetTasksByUser(ctx *fasthttp.RequestCtx) {
	userID, _ := ctx.UserValue("user_id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasksByUser(stdCtx, userID)
	if err != nil {
		h.failWithError(ctx, err, msgTaskFetchFailed)
		return
	}
	h.respondJSON(ctx, http.StatusOK, tasks)
}

// @Summary Create task
// @Tags tasks
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.ErrorResponse{Error: msgTaskInputRequired})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.ErrorResponse{Error: msgTaskInputRequired})
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, req.UserID, req.Description)
	if err != nil {
		h.failWithError(ctx, err, msgTaskInternalError)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, created)
}

// @Summary Set task completion
// @Tags tasks
// @Router /tasks/{id} [patch]
func (h *TaskHandler) SetCompletion(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	// No presence validation: an absent or unparsable body leaves the flag
	// nil and NULL reaches the store.
	var req transport.TaskCompletionRequest
	_ = json.Unmarshal(ctx.PostBody(), &req)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.SetCompletion(stdCtx, id, req.Completed)
	if err != nil {
		h.failWithError(ctx, err, msgTaskCompleteFailed)
		return
	}
	if updated == nil {
		// No matching row: answer 200 with an empty body, not 404. Callers
		// of this route tolerate the undefined result.
		h.respondEmpty(ctx, http.StatusOK)
		return
	}
	h.respondJSON(ctx, http.StatusOK, updated)
}

// @Summary Edit task description
// @Tags tasks
// @Router /tasks/{id}/edit [patch]
func (h *TaskHandler) EditDescription(ctx *fasthttp.RequestCtx) {
	idSegment, _ := ctx.UserValue("id").(string)
	id, err := strconv.Atoi(idSegment)
	if err != nil {
		// A non-numeric id takes the same path as a store type rejection.
		h.failWithError(ctx, domain.WrapError(domain.ErrCodeInternal, msgTaskInternalError, err), msgTaskInternalError)
		return
	}

	var req transport.TaskEditRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.ErrorResponse{Error: msgTaskInputRequired})
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.EditDescription(stdCtx, id, req.Description)
	if err != nil {
		h.failWithError(ctx, err, msgTaskInternalError)
		return
	}
	h.respondJSON(ctx, http.StatusOK, updated)
}

// @Summary Delete task
// @Tags tasks
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.DeleteTask(stdCtx, id)
	if err != nil {
		h.failWithError(ctx, err, msgTaskDeleteInternal)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.TaskDeleteResponse{
		Message: msgTaskDeleted,
		Task:    deleted,
	})
}
