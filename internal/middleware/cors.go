package middleware

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// CORS restricts cross-origin access to the single configured origin.
// Preflight requests answer 200 to match the frontend's optionSuccessStatus.
func CORS(allowedOrigin string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			origin := string(ctx.Request.Header.Peek("Origin"))
			if origin != "" && origin == allowedOrigin {
				ctx.Response.Header.Set("Access-Control-Allow-Origin", allowedOrigin)
				ctx.Response.Header.Set("Vary", "Origin")
			} else if origin != "" {
				logger.Debug("origin not allowed", zap.String("origin", origin))
			}

			if string(ctx.Method()) == fasthttp.MethodOptions {
				ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")
				ctx.SetStatusCode(fasthttp.StatusOK)
				return
			}

			next(ctx)
		}
	}
}
