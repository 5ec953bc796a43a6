// Package weighing meters dispatches: every request is weighed by the
// configured scale, the outcome is attached to the context for the inner
// middlewares, and the charge is taken from the window budget.
package weighing

import (
	"context"

	"github.com/go-weigh/weigh"
	"github.com/go-weigh/weigh/encoding"
	"github.com/go-weigh/weigh/encoding/json"
	"github.com/go-weigh/weigh/errors"
	"github.com/go-weigh/weigh/meter"
	"github.com/go-weigh/weigh/middleware"
	"github.com/go-weigh/weigh/middleware/metrics"
	"github.com/go-weigh/weigh/scale"
)

// WeighFunc weighs one request directly, bypassing the scale and sizer.
type WeighFunc func(ctx context.Context, req interface{}) weigh.Weighed

// Sizer reports the encoded length of a request.
type Sizer func(req interface{}) int

type options struct {
	scale    weigh.Weighable
	weigh    WeighFunc
	meter    meter.Meter
	sizer    Sizer
	rejected metrics.Counter
}

type Option func(*options)

func WithScale(s weigh.Weighable) Option {
	return func(o *options) {
		o.scale = s
	}
}

func WithWeighFunc(fn WeighFunc) Option {
	return func(o *options) {
		o.weigh = fn
	}
}

func WithMeter(m meter.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}

func WithSizer(s Sizer) Option {
	return func(o *options) {
		o.sizer = s
	}
}

// WithRejectCounter counts budget rejections per class.
func WithRejectCounter(c metrics.Counter) Option {
	return func(o *options) {
		o.rejected = c
	}
}

func Weigh(opts ...Option) middleware.Middleware {
	o := &options{
		scale: scale.Default(),
		sizer: encodedSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			var wd weigh.Weighed
			if o.weigh != nil {
				wd = o.weigh(ctx, req)
			} else {
				wd = weigh.Weighed{
					Weight:  o.scale.Weight(o.sizer(req)),
					Class:   o.scale.Classify(),
					PaysFee: o.scale.PaysFee(),
				}
			}
			ctx = weigh.NewContext(ctx, wd)
			if o.meter != nil && wd.PaysFee && !o.meter.Allow(ctx, wd.Class, wd.Weight) {
				if o.rejected != nil {
					o.rejected.Values(wd.Class.String()).Inc()
				}
				return nil, errors.WeightExhausted("dispatch weight budget exhausted")
			}
			return handler(ctx, req)
		}
	}
}

func encodedSize(req interface{}) int {
	switch v := req.(type) {
	case nil:
		return 0
	case []byte:
		return len(v)
	case string:
		return len(v)
	}
	raw, err := encoding.GetCodec(json.Name).Marshal(req)
	if err != nil {
		return 0
	}
	return len(raw)
}
