package routine

import (
	"context"
	"fmt"

	"github.com/go-weigh/weigh/logger"
)

// Go runs fn, recovering and logging a panic instead of crashing the host.
func Go(ctx context.Context, fn func()) {
	defer func(ctx context.Context) {
		if r := recover(); r != nil {
			logger.Log(ctx, logger.ErrorLevel, map[string]interface{}{"error": fmt.Sprintf("%+v", r)}, "routine recover")
		}
	}(ctx)
	fn()
}

// GoSafe runs fn on its own goroutine with panic recovery.
func GoSafe(ctx context.Context, fn func()) {
	go Go(ctx, fn)
}
