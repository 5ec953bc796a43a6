package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(tag string, order *[]string) Middleware {
	return func(handler Handler) Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			*order = append(*order, tag+" in")
			rsp, err := handler(ctx, req)
			*order = append(*order, tag+" out")
			return rsp, err
		}
	}
}

func TestComposeOrder(t *testing.T) {
	order := make([]string, 0, 5)
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		order = append(order, "handler")
		return req, nil
	}
	rsp, err := ComposeMiddleware(record("first", &order), record("second", &order))(handler)(context.TODO(), "req")
	assert.Nil(t, err)
	assert.Equal(t, "req", rsp)
	assert.Equal(t, []string{"first in", "second in", "handler", "second out", "first out"}, order)
}

func TestRequestID(t *testing.T) {
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return RequestIDFromContext(ctx), nil
	}
	rsp, err := RequestID()(handler)(context.TODO(), nil)
	assert.Nil(t, err)
	assert.NotEmpty(t, rsp)

	rsp, err = RequestID(WithBuilder(func() string { return "fixed" }))(handler)(context.TODO(), nil)
	assert.Nil(t, err)
	assert.Equal(t, "fixed", rsp)
}
