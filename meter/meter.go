// Package meter accounts admitted dispatch weight against a window budget,
// the runtime counterpart of weigh.MaxBlockWeight.
package meter

import (
	"context"
	"time"

	"github.com/go-weigh/weigh"
	"golang.org/x/time/rate"
)

// Meter admits or rejects one weighed dispatch. Implementations are safe for
// concurrent use.
type Meter interface {
	Allow(ctx context.Context, class weigh.Class, w weigh.Weight) bool
}

// Local meters the budget of a single process: a token bucket in weight
// units, refilled once per window. Normal dispatches are rejected once the
// budget is gone; Operational dispatches are charged best effort but always
// admitted.
type Local struct {
	budget  weigh.Weight
	limiter *rate.Limiter
}

func NewLocal(budget weigh.Weight, window time.Duration) *Local {
	if budget == 0 || budget > weigh.MaxBlockWeight {
		budget = weigh.MaxBlockWeight
	}
	if window <= 0 {
		window = time.Second
	}
	return &Local{
		budget:  budget,
		limiter: rate.NewLimiter(rate.Limit(float64(budget)/window.Seconds()), int(budget)),
	}
}

func (m *Local) Allow(_ context.Context, class weigh.Class, w weigh.Weight) bool {
	n := int(w)
	if w > m.budget {
		n = int(m.budget)
	}
	if class == weigh.Operational {
		// drain what is left so following normal dispatches see the charge
		m.limiter.AllowN(time.Now(), n)
		return true
	}
	if w > m.budget {
		return false
	}
	return m.limiter.AllowN(time.Now(), n)
}
