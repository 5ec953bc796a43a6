package middleware

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

type RequestIDConfig struct {
	Builder func() string
}

type RequestIDOption func(*RequestIDConfig)

func WithBuilder(b func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Builder = b
	}
}

// RequestID tags every dispatch with an id so weigh logs of one request can
// be correlated.
func RequestID(opts ...RequestIDOption) Middleware {
	cfg := &RequestIDConfig{
		Builder: func() string {
			return uuid.New().String()
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return func(handler Handler) Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			rid, _ := ctx.Value(requestIDKey{}).(string)
			if len(rid) == 0 {
				ctx = context.WithValue(ctx, requestIDKey{}, cfg.Builder())
			}
			return handler(ctx, req)
		}
	}
}

func RequestIDFromContext(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}
