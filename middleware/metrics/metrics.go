package metrics

import (
	"context"
	"sync"

	"github.com/go-weigh/weigh"
	"github.com/go-weigh/weigh/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	defaultOnce      sync.Once
	defaultCounter   Counter
	defaultHistogram Histogram
)

func defaults() (Counter, Histogram) {
	defaultOnce.Do(func() {
		defaultCounter = NewCounter(prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "weigh",
			Name:      "total",
			Help:      "weighed dispatches count",
		}, []string{"class", "result"})
		defaultHistogram = NewHistogram(prometheus.HistogramOpts{
			Namespace: "dispatch",
			Subsystem: "weigh",
			Name:      "weight",
			Help:      "dispatch weight distribution",
			Buckets:   []float64{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304},
		}, []string{"class"})
	})
	return defaultCounter, defaultHistogram
}

type Option struct {
	counter   Counter
	histogram Histogram
}

type Options func(*Option)

func WithCounter(c Counter) Options {
	return func(o *Option) {
		o.counter = c
	}
}

func WithHistogram(h Histogram) Options {
	return func(o *Option) {
		o.histogram = h
	}
}

// Metrics observes the weight of every dispatch weighed by an outer weighing
// middleware. Place it inside the weighing middleware so it sees the
// weighed context.
func Metrics(opts ...Options) middleware.Middleware {
	o := &Option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.counter == nil && o.histogram == nil {
		o.counter, o.histogram = defaults()
	}
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			rsp, err := handler(ctx, req)
			wd, ok := weigh.FromContext(ctx)
			if !ok {
				return rsp, err
			}
			if o.histogram != nil {
				o.histogram.Values(wd.Class.String()).Observe(float64(wd.Weight))
			}
			if o.counter != nil {
				result := "ok"
				if err != nil {
					result = "error"
				}
				o.counter.Values(wd.Class.String(), result).Inc()
			}
			return rsp, err
		}
	}
}
