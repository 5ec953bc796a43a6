package scale

import "github.com/go-weigh/weigh"

// maxDispatchWeight is charged for a Max scaled dispatch: it might still be
// included, but nothing more fits in the window after it.
const maxDispatchWeight = weigh.Weight(3 * 1024 * 1024)

// Basic weighs a dispatch as a base charge plus a per byte charge on its
// encoded length.
type Basic struct {
	Base    weigh.Weight
	PerByte weigh.Weight
}

func (s Basic) Weight(length int) weigh.Weight {
	return s.PerByte.SaturatingMul(weigh.Weight(length)).SaturatingAdd(s.Base)
}

func (s Basic) Classify() weigh.Class {
	return weigh.Normal
}

func (s Basic) PaysFee() bool {
	return true
}

// Default charges one weight unit per encoded byte, nothing more. Operations
// that do not pick a scale get this one.
func Default() Basic {
	return Basic{Base: 0, PerByte: 1}
}

// Max weighs every dispatch at the maximum single dispatch weight.
type Max struct{}

func (Max) Weight(int) weigh.Weight {
	return maxDispatchWeight
}

func (Max) Classify() weigh.Class {
	return weigh.Normal
}

func (Max) PaysFee() bool {
	return true
}

// Free dispatches do not count towards the window budget and pay no fee.
type Free struct{}

func (Free) Weight(int) weigh.Weight {
	return 0
}

func (Free) Classify() weigh.Class {
	return weigh.Normal
}

func (Free) PaysFee() bool {
	return false
}
