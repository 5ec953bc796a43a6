package weigh

import "context"

type weighedKey struct{}

// Weighed is the two part outcome of weighing one dispatch: the cost value
// plus its classification.
type Weighed struct {
	Weight  Weight
	Class   Class
	PaysFee bool
}

func NewContext(ctx context.Context, wd Weighed) context.Context {
	return context.WithValue(ctx, weighedKey{}, wd)
}

func FromContext(ctx context.Context) (Weighed, bool) {
	wd, ok := ctx.Value(weighedKey{}).(Weighed)
	return wd, ok
}
