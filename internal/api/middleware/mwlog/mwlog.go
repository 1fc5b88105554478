// Package mwlog tags every unary call with a request id and logs its outcome.
package mwlog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

type ctxKey struct{}

// RequestID returns the id of the call being served, empty outside a call.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// NewInterceptor keeps an incoming X-Request-Id or assigns a new one, echoes
// it on the response and logs procedure, duration and code.
func NewInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				return next(ctx, req)
			}

			requestID := req.Header().Get(HeaderRequestID)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}
			ctx = context.WithValue(ctx, ctxKey{}, requestID)

			start := time.Now()
			resp, err := next(ctx, req)
			attrs := []any{
				"request_id", requestID,
				"procedure", req.Spec().Procedure,
				"duration", time.Since(start),
			}

			if err != nil {
				code := connect.CodeOf(err)
				attrs = append(attrs, "code", code.String(), "error", err)
				if code == connect.CodeInternal || code == connect.CodeUnknown {
					logger.ErrorContext(ctx, "rpc failed", attrs...)
				} else {
					logger.WarnContext(ctx, "rpc rejected", attrs...)
				}
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(HeaderRequestID, requestID)
				}
				return nil, err
			}

			resp.Header().Set(HeaderRequestID, requestID)
			logger.InfoContext(ctx, "rpc served", attrs...)
			return resp, nil
		}
	}
}
