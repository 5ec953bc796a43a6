// Package fee adjusts dispatch weights before fee conversion. The host
// updates one Multiplier per window from the previous window saturation and
// applies it to every weighed dispatch.
package fee

import (
	"fmt"

	"github.com/go-weigh/weigh"
	"github.com/go-weigh/weigh/ratio"
)

// Multiplier is a signed weight adjustment in the range [-1, infinity): a
// positive multiplier adds whole multiples of the weight plus a fraction of
// it, a negative one subtracts a fraction, never more than the whole.
type Multiplier struct {
	ratio    ratio.Ratio
	slope    weigh.Weight
	negative bool
}

// Positive yields weight + weight*slope + ratio*weight on Apply.
func Positive(r ratio.Ratio, slope weigh.Weight) Multiplier {
	return Multiplier{ratio: r, slope: slope}
}

// Negative yields weight - ratio*weight on Apply.
func Negative(r ratio.Ratio) Multiplier {
	return Multiplier{ratio: r, negative: true}
}

// Default is the identity adjustment.
func Default() Multiplier {
	return Multiplier{}
}

func (m Multiplier) Ratio() ratio.Ratio {
	return m.ratio
}

func (m Multiplier) Slope() weigh.Weight {
	return m.slope
}

func (m Multiplier) IsNegative() bool {
	return m.negative
}

// Apply scales the weight by the multiplier, saturating upward and flooring
// at zero downward.
func (m Multiplier) Apply(w weigh.Weight) weigh.Weight {
	part := weigh.Weight(m.ratio.Mul(uint64(w)))
	if m.negative {
		return w.SaturatingSub(part)
	}
	return w.SaturatingAdd(w.SaturatingMul(m.slope).SaturatingAdd(part))
}

// Sum combines two multipliers taking the sign into account. Positive
// fractions overflowing one whole carry into the slope; negative fractions
// cap at one whole; mixed signs borrow from the slope when the fraction
// would go negative.
func (m Multiplier) Sum(rhs Multiplier) Multiplier {
	switch {
	case !m.negative && !rhs.negative:
		p1, p2 := m.ratio.Parts(), rhs.ratio.Parts()
		if p1+p2 > ratio.Billion {
			return Multiplier{
				ratio: ratio.FromParts((p1 + p2) % ratio.Billion),
				slope: m.slope.SaturatingAdd(rhs.slope).SaturatingAdd(1),
			}
		}
		return Multiplier{
			ratio: ratio.FromParts(p1 + p2),
			slope: m.slope.SaturatingAdd(rhs.slope),
		}
	case m.negative && rhs.negative:
		// a discount cannot exceed the whole weight
		return Multiplier{ratio: m.ratio.Add(rhs.ratio), negative: true}
	case !m.negative && rhs.negative:
		p1, p2 := m.ratio.Parts(), rhs.ratio.Parts()
		if p1 >= p2 {
			return Multiplier{ratio: ratio.FromParts(p1 - p2), slope: m.slope}
		}
		np := ratio.FromParts(p2 - p1)
		if m.slope > 0 {
			return Multiplier{ratio: np, slope: m.slope - 1}
		}
		return Multiplier{ratio: np, negative: true}
	default:
		return rhs.Sum(m)
	}
}

func (m Multiplier) String() string {
	if m.negative {
		return fmt.Sprintf("-%d/1e9", m.ratio.Parts())
	}
	return fmt.Sprintf("+%d+%d/1e9", m.slope, m.ratio.Parts())
}
