// Package ratio provides a fixed point fraction in parts per billion, used
// to scale weights without floating point.
package ratio

import "math/bits"

const Billion = 1_000_000_000

// Ratio is a fraction in [0, 1] stored as parts per billion.
type Ratio uint32

// FromParts caps at one whole.
func FromParts(parts uint32) Ratio {
	if parts > Billion {
		parts = Billion
	}
	return Ratio(parts)
}

func FromPercent(percent uint32) Ratio {
	if percent > 100 {
		percent = 100
	}
	return Ratio(percent * (Billion / 100))
}

func Zero() Ratio {
	return 0
}

func One() Ratio {
	return Billion
}

func (r Ratio) Parts() uint32 {
	return uint32(r)
}

func (r Ratio) IsZero() bool {
	return r == 0
}

// Add caps at one instead of wrapping.
func (r Ratio) Add(v Ratio) Ratio {
	return FromParts(uint32(r) + uint32(v))
}

// Mul scales v by the ratio, rounding down. The intermediate product is kept
// in 128 bits so no input can overflow.
func (r Ratio) Mul(v uint64) uint64 {
	hi, lo := bits.Mul64(v, uint64(r))
	q, _ := bits.Div64(hi, lo, Billion)
	return q
}
