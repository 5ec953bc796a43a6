package scale

import (
	"strings"

	"github.com/go-weigh/weigh"
	"github.com/go-weigh/weigh/errors"
)

// Spec selects a length weighable scale by kind. Only the coefficients of
// the chosen kind are read, the rest may stay zero.
type Spec struct {
	Kind        string `json:"kind" yaml:"kind"`
	Coefficient uint64 `json:"coefficient" yaml:"coefficient"`
	A           uint64 `json:"a" yaml:"a"`
	B           uint64 `json:"b" yaml:"b"`
	C           uint64 `json:"c" yaml:"c"`
	Base        uint64 `json:"base" yaml:"base"`
	PerByte     uint64 `json:"per_byte" yaml:"per_byte"`
}

func New(s Spec) (weigh.Weighable, error) {
	switch strings.ToLower(s.Kind) {
	case "linear":
		return Linear{Coefficient: s.Coefficient}.ByLength(), nil
	case "quadratic":
		return Quadratic{A: s.A, B: s.B, C: s.C}.ByLength(), nil
	case "basic":
		return Basic{Base: weigh.Weight(s.Base), PerByte: weigh.Weight(s.PerByte)}, nil
	case "max":
		return Max{}, nil
	case "free":
		return Free{}, nil
	case "", "default":
		return Default(), nil
	case "conditional":
		// the switch is a call argument, it cannot be derived from the
		// encoded length
		return nil, errors.InvalidScale("conditional scale is not length weighable")
	default:
		return nil, errors.InvalidScale("unknown scale kind").WithMetadata(map[string]string{"kind": s.Kind})
	}
}
