package weigh

import "math"

// Weight is a unitless cost estimate assigned to one dispatch. The host
// framework charges it against the window budget for resource accounting.
type Weight uint64

const (
	// MaxWeight is the largest representable weight, the clamp value of all
	// saturating operations.
	MaxWeight Weight = math.MaxUint64

	// MaxBlockWeight caps the total dispatch weight admitted per accounting window (4mb).
	MaxBlockWeight Weight = 4 * 1024 * 1024

	// IdealBlockWeight is the target window saturation: 25% of max.
	IdealBlockWeight Weight = 1024 * 1024
)

// SaturatingAdd clamps at MaxWeight instead of wrapping.
func (w Weight) SaturatingAdd(v Weight) Weight {
	r := w + v
	if r < w {
		return MaxWeight
	}
	return r
}

// SaturatingMul clamps at MaxWeight instead of wrapping.
func (w Weight) SaturatingMul(v Weight) Weight {
	if w == 0 || v == 0 {
		return 0
	}
	r := w * v
	if r/v != w {
		return MaxWeight
	}
	return r
}

// SaturatingSub floors at zero instead of wrapping.
func (w Weight) SaturatingSub(v Weight) Weight {
	if v > w {
		return 0
	}
	return w - v
}

// Class is the coarse dispatch category, independent of the numeric weight.
type Class uint8

const (
	// Normal is the default class, subject to the window budget.
	Normal Class = iota
	// Operational dispatches keep the host alive and are admitted even when
	// the window budget is gone.
	Operational
)

func (c Class) String() string {
	if c == Operational {
		return "operational"
	}
	return "normal"
}

// Weighable weighs one dispatch by the encoded length of its payload.
type Weighable interface {
	Weight(length int) Weight
	Classify() Class
	PaysFee() bool
}
