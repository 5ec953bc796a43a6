package config

import (
	"time"

	"github.com/go-weigh/weigh"
	"github.com/go-weigh/weigh/errors"
	"github.com/go-weigh/weigh/scale"
)

// Profile is the weighing configuration of one host: a scale per operation
// plus the window meter settings.
type Profile struct {
	Scales map[string]scale.Spec `json:"scales" yaml:"scales"`
	Meter  Meter                 `json:"meter" yaml:"meter"`
}

type Meter struct {
	// Budget is the admitted weight per window, 0 means weigh.MaxBlockWeight.
	Budget uint64 `json:"budget" yaml:"budget"`
	// Window is a duration string, default 1s.
	Window string `json:"window" yaml:"window"`
	// Redis is the address of the shared budget, empty means local metering.
	Redis string `json:"redis" yaml:"redis"`
}

// Build constructs the per operation scales of the profile.
func (p Profile) Build() (map[string]weigh.Weighable, error) {
	scales := make(map[string]weigh.Weighable, len(p.Scales))
	for op, spec := range p.Scales {
		w, err := scale.New(spec)
		if err != nil {
			return nil, errors.Wrap(err, "build scale "+op)
		}
		scales[op] = w
	}
	return scales, nil
}

func (m Meter) WeightBudget() weigh.Weight {
	if m.Budget == 0 {
		return weigh.MaxBlockWeight
	}
	return weigh.Weight(m.Budget)
}

func (m Meter) WindowDuration() time.Duration {
	d, err := time.ParseDuration(m.Window)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}
