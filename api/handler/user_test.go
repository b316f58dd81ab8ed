package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todogo/backend/api/transport"
	"github.com/todogo/backend/domain"
	userUC "github.com/todogo/backend/usecase/user"
)

func newUserTestHandler(repo *fakeUserRepo) *UserHandler {
	return NewUserHandler(userUC.New(repo, nil), nil, nil)
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email, password string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{Username: username, Email: email, Password: password})
	require.NoError(t, err)
	return user
}

func TestGetUsers_Empty(t *testing.T) {
	h := newUserTestHandler(newFakeUserRepo())

	ctx := newRequestCtx(http.MethodGet, "/users", nil)
	h.GetUsers(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `[]`, string(ctx.Response.Body()))
}

func TestGetUsers_StoreFailureIsCaught(t *testing.T) {
	repo := newFakeUserRepo()
	repo.fail = true
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodGet, "/users", nil)
	h.GetUsers(ctx)

	// Unified handling: this route maps store failures to 500 like the rest.
	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, msgUsersFetchFailed, resp.Message)
}

func TestSignup_Success(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/signup",
		[]byte(`{"username":"alice","email":"alice@example.com","password":"secret"}`))
	h.Signup(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())

	var resp transport.UserDataResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, msgSignupCreated, resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, int64(1), resp.Data.ID)
	assert.Equal(t, "alice", resp.Data.Username)
	// Plaintext password stays in the store but never in a response body.
	assert.NotContains(t, string(ctx.Response.Body()), "secret")
	assert.NotContains(t, string(ctx.Response.Body()), `"password"`)
}

func TestSignup_TrimsSurroundingWhitespace(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/signup",
		[]byte(`{"username":"  bob  ","email":" bob@example.com ","password":" pw "}`))
	h.Signup(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())

	var resp transport.UserDataResponse
	decodeBody(t, ctx, &resp)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "bob", resp.Data.Username)
	assert.Equal(t, "bob@example.com", resp.Data.Email)
}

func TestSignup_MissingOrBlankFields(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserTestHandler(repo)

	bodies := []string{
		`{}`,
		`{"username":"alice","email":"alice@example.com"}`,
		`{"username":"","email":"alice@example.com","password":"pw"}`,
		`{"username":"   ","email":"alice@example.com","password":"pw"}`,
		`{"username":"alice","email":"alice@example.com","password":"   "}`,
		`broken`,
	}
	for _, body := range bodies {
		ctx := newRequestCtx(http.MethodPost, "/users/signup", []byte(body))
		h.Signup(ctx)

		assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode(), "body: %s", body)

		var resp transport.MessageResponse
		decodeBody(t, ctx, &resp)
		assert.Equal(t, msgSignupAllRequired, resp.Message)
	}
	assert.Empty(t, repo.users)
}

func TestSignup_UsernameConflictOnly(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/signup",
		[]byte(`{"username":"alice","email":"fresh@example.com","password":"pw"}`))
	h.Signup(ctx)

	assert.Equal(t, http.StatusConflict, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, domain.MsgUsernameTaken, resp.Message)
}

func TestSignup_EmailConflictOnly(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/signup",
		[]byte(`{"username":"fresh","email":"alice@example.com","password":"pw"}`))
	h.Signup(ctx)

	assert.Equal(t, http.StatusConflict, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, domain.MsgEmailTaken, resp.Message)
}

func TestSignup_BothConflictsReportedTogether(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/signup",
		[]byte(`{"username":"alice","email":"alice@example.com","password":"pw"}`))
	h.Signup(ctx)

	assert.Equal(t, http.StatusConflict, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, domain.MsgUsernameEmailTaken, resp.Message)
}

func TestSignup_InsertRaceMapsToConflict(t *testing.T) {
	// A concurrent signup can slip past the pre-check; the store's unique
	// constraint rejects the insert and the handler still answers 409.
	repo := newFakeUserRepo()
	repo.raceConflict = domain.NewError(domain.ErrCodeConflict, domain.MsgUsernameTaken)
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/signup",
		[]byte(`{"username":"alice","email":"alice@example.com","password":"pw"}`))
	h.Signup(ctx)

	assert.Equal(t, http.StatusConflict, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, domain.MsgUsernameTaken, resp.Message)
}

func TestLogin_ByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/login",
		[]byte(`{"email":"alice@example.com","password":"pw"}`))
	h.Login(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp transport.UserDataResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, msgLoginSucceeded, resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "alice", resp.Data.Username)
	assert.NotContains(t, string(ctx.Response.Body()), `"password"`)
}

func TestLogin_ByUsername(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/login",
		[]byte(`{"username":"alice","password":"pw"}`))
	h.Login(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
}

func TestLogin_UsernameWithMismatchedEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/login",
		[]byte(`{"username":"alice","email":"other@example.com","password":"pw"}`))
	h.Login(ctx)

	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, domain.ErrInvalidCredentials.Message, resp.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodPost, "/users/login",
		[]byte(`{"email":"alice@example.com","password":"wrong"}`))
	h.Login(ctx)

	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	h := newUserTestHandler(newFakeUserRepo())

	ctx := newRequestCtx(http.MethodPost, "/users/login",
		[]byte(`{"email":"ghost@example.com","password":"pw"}`))
	h.Login(ctx)

	// Lookup miss is 404, distinct from the credential-mismatch 401.
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, domain.ErrUserNotFound.Message, resp.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	h := newUserTestHandler(newFakeUserRepo())

	for _, body := range []string{`{}`, `{"password":"pw"}`, `{"email":"a@b.c"}`} {
		ctx := newRequestCtx(http.MethodPost, "/users/login", []byte(body))
		h.Login(ctx)

		assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode(), "body: %s", body)

		var resp transport.MessageResponse
		decodeBody(t, ctx, &resp)
		assert.Equal(t, msgLoginFieldsRequired, resp.Message)
	}
}

func TestDeleteUser_SuccessThenNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice", "alice@example.com", "pw")
	h := newUserTestHandler(repo)

	ctx := newRequestCtx(http.MethodDelete, "/users/1", nil)
	ctx.SetUserValue("id", "1")
	h.DeleteUser(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp transport.MessageResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, msgUserDeleted, resp.Message)

	ctx = newRequestCtx(http.MethodDelete, "/users/1", nil)
	ctx.SetUserValue("id", "1")
	h.DeleteUser(ctx)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())

	var errResp transport.ErrorResponse
	decodeBody(t, ctx, &errResp)
	assert.Equal(t, domain.ErrUserNotFound.Message, errResp.Error)
}
