package fee

import (
	"testing"

	"github.com/go-weigh/weigh"
	"github.com/go-weigh/weigh/ratio"
	"github.com/stretchr/testify/assert"
)

func p(percent uint32) ratio.Ratio {
	return ratio.FromParts(percent * 1_000_000_0)
}

func TestSum(t *testing.T) {
	assert.Equal(t, Positive(p(20), 2), Positive(p(10), 1).Sum(Positive(p(10), 1)))

	// fraction overflow carries into the slope
	assert.Equal(t, Positive(p(20), 2), Positive(p(60), 0).Sum(Positive(p(60), 1)))
	assert.Equal(t, Positive(p(20), 1), Positive(p(60), 0).Sum(Positive(p(60), 0)))

	assert.Equal(t, Positive(p(20), 1), Positive(p(10), 0).Sum(Positive(p(10), 1)))

	assert.Equal(t, Positive(p(0), 0), Positive(p(10), 0).Sum(Negative(p(10))))

	// zero
	assert.Equal(t, Negative(p(10)), Positive(p(0), 0).Sum(Negative(p(10))))
	assert.Equal(t, Positive(p(10), 2), Negative(p(0)).Sum(Positive(p(10), 2)))

	// asymmetric operation
	assert.Equal(t, Negative(p(20)), Positive(p(10), 0).Sum(Negative(p(30))))
	assert.Equal(t, Negative(p(20)), Negative(p(30)).Sum(Positive(p(10), 0)))

	// the slope lends a whole when the fraction goes negative
	assert.Equal(t, Positive(p(20), 0), Positive(p(10), 1).Sum(Negative(p(30))))

	// negative fractions cap at the whole weight
	assert.Equal(t, Negative(ratio.One()), Negative(p(60)).Sum(Negative(p(60))))
}

func TestApply(t *testing.T) {
	assert.Equal(t, weigh.Weight(100), Default().Apply(100))
	assert.Equal(t, weigh.Weight(125), Positive(ratio.FromPercent(25), 0).Apply(100))
	assert.Equal(t, weigh.Weight(30), Positive(ratio.Zero(), 2).Apply(10))
	assert.Equal(t, weigh.Weight(75), Negative(ratio.FromPercent(25)).Apply(100))
	assert.Equal(t, weigh.Weight(0), Negative(ratio.One()).Apply(100))
	assert.Equal(t, weigh.MaxWeight, Positive(ratio.Zero(), 1).Apply(weigh.MaxWeight))
}

func TestDefault(t *testing.T) {
	m := Default()
	assert.False(t, m.IsNegative())
	assert.True(t, m.Ratio().IsZero())
	assert.Equal(t, weigh.Weight(0), m.Slope())
}
