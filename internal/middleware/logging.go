package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs every unary RPC with its procedure, peer and
// duration. Client mistakes (any code but Internal and Unknown) log at Warn.
// Successful reads (Get*, List*) log at Debug to keep the list screens quiet.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			log := slog.With(
				"procedure", req.Spec().Procedure,
				"peer", req.Peer().Addr,
			)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			switch code := connect.CodeOf(err); {
			case err == nil:
				level := slog.LevelInfo
				if isRead(req.Spec().Procedure) {
					level = slog.LevelDebug
				}
				log.Log(ctx, level, "RPC ok", "duration_ms", duration)
			case code == connect.CodeInternal || code == connect.CodeUnknown:
				log.Error("RPC error", "code", code, "error", err, "duration_ms", duration)
			default:
				log.Warn("RPC error", "code", code, "error", errorMessage(err), "duration_ms", duration)
			}

			return resp, err
		}
	}
}

func isRead(procedure string) bool {
	method := procedure[strings.LastIndex(procedure, "/")+1:]
	return strings.HasPrefix(method, "Get") || strings.HasPrefix(method, "List")
}

func errorMessage(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}
