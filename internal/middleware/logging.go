package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC with
// its caller. Client errors (any *connect.Error) are warnings, anything else
// is an error.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			rpcLogger := logger.With(
				"procedure", req.Spec().Procedure,
				"user_id", GetUserID(ctx), // empty if pre-auth
				"email", GetEmail(ctx),
				"role", GetRole(ctx),
			)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			var connectErr *connect.Error
			switch {
			case err == nil:
				rpcLogger.Info("RPC ok", "duration_ms", duration)
			case errors.As(err, &connectErr):
				rpcLogger.Warn("RPC error",
					"code", connectErr.Code(),
					"error", connectErr.Message(),
					"duration_ms", duration,
				)
			default:
				rpcLogger.Error("RPC error", "error", err, "duration_ms", duration)
			}

			return resp, err
		}
	}
}
