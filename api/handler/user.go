package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todogo/backend/api/transport"
	"github.com/todogo/backend/pkg/httpcontext"
	userUC "github.com/todogo/backend/usecase/user"
)

// Localized user-route messages.
const (
	msgUsersFetchFailed    = "ユーザーの取得に失敗しました。"
	msgSignupAllRequired   = "すべてのフィールドを入力してください。"
	msgSignupCreated       = "ユーザーの作成に成功しました。"
	msgSignupFailed        = "ユーザーの作成に失敗しました。"
	msgLoginFieldsRequired = "メールアドレスとパスワードを入力してください。"
	msgLoginSucceeded      = "ログインに成功しました。"
	msgLoginFailed         = "ログインに失敗しました。"
	msgUserDeleted         = "ユーザーは正常に削除されました。"
	msgUserDeleteFailed    = "ユーザーの削除に失敗しました。"
)

type UserHandler struct {
	baseHandler
	uc *userUC.UseCase
}

func NewUserHandler(uc *userUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List all users
// @Tags users
// @Router /users [get]
func (h *UserHandler) GetUsers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.ListUsers(stdCtx)
	if err != nil {
		h.failWithMessage(ctx, err, msgUsersFetchFailed)
		return
	}
	h.respondJSON(ctx, http.StatusOK, users)
}

// @Summary Register a new account
// @Tags users
// @Router /users/signup [post]
func (h *UserHandler) Signup(ctx *fasthttp.RequestCtx) {
	var req transport.SignupRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.MessageResponse{Message: msgSignupAllRequired})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.MessageResponse{Message: msgSignupAllRequired})
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	if username == "" || email == "" || password == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.MessageResponse{Message: msgSignupAllRequired})
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Signup(stdCtx, username, email, password)
	if err != nil {
		h.failWithMessage(ctx, err, msgSignupFailed)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.UserDataResponse{
		Message: msgSignupCreated,
		Data:    created,
	})
}

// @Summary Authenticate an account
// @Tags users
// @Router /users/login [post]
func (h *UserHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.MessageResponse{Message: msgLoginFieldsRequired})
		return
	}
	if err := h.validate.Struct(&req); err != nil || (req.Username == "" && req.Email == "") {
		h.respondJSON(ctx, http.StatusBadRequest, transport.MessageResponse{Message: msgLoginFieldsRequired})
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	account, err := h.uc.Login(stdCtx, req.Username, req.Email, req.Password)
	if err != nil {
		h.failWithMessage(ctx, err, msgLoginFailed)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.UserDataResponse{
		Message: msgLoginSucceeded,
		Data:    account,
	})
}

// @Summary Delete user
// @Tags users
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteUser(stdCtx, id); err != nil {
		h.failWithError(ctx, err, msgUserDeleteFailed)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.MessageResponse{Message: msgUserDeleted})
}
