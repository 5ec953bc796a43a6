package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/go-weigh/weigh"
	"github.com/go-weigh/weigh/logger"
	"github.com/go-weigh/weigh/middleware"
)

// Log writes one line per weighed dispatch: the computed weight, its class
// and the handler outcome. Place it inside the weighing middleware.
func Log(l logger.Logger) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			start := time.Now()
			rsp, err := handler(ctx, req)
			fields := map[string]interface{}{
				"latency": time.Since(start).Milliseconds(),
			}
			if rid := middleware.RequestIDFromContext(ctx); len(rid) > 0 {
				fields["request_id"] = rid
			}
			wd, ok := weigh.FromContext(ctx)
			if ok {
				fields["weight"] = uint64(wd.Weight)
				fields["class"] = wd.Class.String()
				fields["pays_fee"] = wd.PaysFee
			}
			level := logger.DebugLevel
			if err != nil {
				fields["error"] = fmt.Sprintf("%+v", err)
				level = logger.ErrorLevel
			}
			l.Log(ctx, level, fields, "dispatch weighed")
			return rsp, err
		}
	}
}
