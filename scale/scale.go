// Package scale holds the weighing scales a host framework attaches to its
// dispatchable operations. Every scale is an immutable value: coefficients
// are fixed at construction and invocation is stateless, so scales are safe
// for concurrent use without synchronization. All arithmetic saturates, a
// maximal argument yields weigh.MaxWeight rather than a wrapped result.
package scale

import (
	"github.com/go-weigh/weigh"
)

// Linear weighs a dispatch as the product of one call argument and a fixed
// coefficient.
type Linear struct {
	Coefficient uint64
}

func (s Linear) Weigh(x uint64) weigh.Weight {
	return weigh.Weight(x).SaturatingMul(weigh.Weight(s.Coefficient))
}

func (s Linear) Classify() weigh.Class {
	return weigh.Normal
}

func (s Linear) PaysFee() bool {
	return true
}

// ByLength adapts the scale to weigh the encoded dispatch length instead of
// a call argument.
func (s Linear) ByLength() weigh.Weighable {
	return lengthScale{weigh: func(length int) weigh.Weight {
		return s.Weigh(uint64(length))
	}}
}

// Quadratic weighs a dispatch as a*x^2 + b*y + c. Every multiplication and
// addition saturates independently, each intermediate clamps before
// combining.
type Quadratic struct {
	A uint64
	B uint64
	C uint64
}

func (s Quadratic) Weigh(x, y uint64) weigh.Weight {
	ax2 := weigh.Weight(x).SaturatingMul(weigh.Weight(x)).SaturatingMul(weigh.Weight(s.A))
	by := weigh.Weight(y).SaturatingMul(weigh.Weight(s.B))
	return ax2.SaturatingAdd(by).SaturatingAdd(weigh.Weight(s.C))
}

func (s Quadratic) Classify() weigh.Class {
	return weigh.Normal
}

func (s Quadratic) PaysFee() bool {
	return true
}

// ByLength weighs the encoded dispatch length as the polynomial a*len^2 + b*len + c.
func (s Quadratic) ByLength() weigh.Weighable {
	return lengthScale{weigh: func(length int) weigh.Weight {
		return s.Weigh(uint64(length), uint64(length))
	}}
}

// Conditional weighs a dispatch linearly in val when the switch argument is
// on, and as the bare coefficient when it is off (val is ignored then).
type Conditional struct {
	Coefficient uint64
}

func (s Conditional) Weigh(on bool, val uint64) weigh.Weight {
	if on {
		return weigh.Weight(val).SaturatingMul(weigh.Weight(s.Coefficient))
	}
	return weigh.Weight(s.Coefficient)
}

func (s Conditional) Classify() weigh.Class {
	return weigh.Normal
}

func (s Conditional) PaysFee() bool {
	return true
}

type lengthScale struct {
	weigh func(length int) weigh.Weight
}

func (s lengthScale) Weight(length int) weigh.Weight {
	return s.weigh(length)
}

func (s lengthScale) Classify() weigh.Class {
	return weigh.Normal
}

func (s lengthScale) PaysFee() bool {
	return true
}
