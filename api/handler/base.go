package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todogo/backend/api/transport"
	"github.com/todogo/backend/domain"
	"github.com/todogo/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter  *httpcontext.Adapter
	logger   *zap.Logger
	validate *validator.Validate
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{
		adapter:  adapter,
		logger:   logger,
		validate: validator.New(),
	}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

// respondEmpty sets the status with no body at all. Used by the completion
// update when the id matches nothing.
func (h baseHandler) respondEmpty(ctx *fasthttp.RequestCtx, status int) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
}

// failWithError writes an {"error": ...} body for err. fallback is the
// localized message used when err carries no domain classification, i.e.
// for raw store failures, which are logged and never echoed.
func (h baseHandler) failWithError(ctx *fasthttp.RequestCtx, err error, fallback string) {
	status, msg := h.classify(ctx, err, fallback)
	h.respondJSON(ctx, status, transport.ErrorResponse{Error: msg})
}

// failWithMessage is failWithError with the user routes' {"message": ...} shape.
func (h baseHandler) failWithMessage(ctx *fasthttp.RequestCtx, err error, fallback string) {
	status, msg := h.classify(ctx, err, fallback)
	h.respondJSON(ctx, status, transport.MessageResponse{Message: msg})
}

func (h baseHandler) classify(ctx *fasthttp.RequestCtx, err error, fallback string) (int, string) {
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		switch dErr.Code {
		case domain.ErrCodeInvalid:
			return http.StatusBadRequest, dErr.Message
		case domain.ErrCodeUnauthorized:
			return http.StatusUnauthorized, dErr.Message
		case domain.ErrCodeNotFound:
			return http.StatusNotFound, dErr.Message
		case domain.ErrCodeConflict:
			return http.StatusConflict, dErr.Message
		}
	}
	h.logger.Error("store operation failed",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Error(err),
	)
	return http.StatusInternalServerError, fallback
}
