package ratio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromParts(t *testing.T) {
	assert.Equal(t, uint32(250_000_000), FromParts(250_000_000).Parts())
	assert.Equal(t, One(), FromParts(math.MaxUint32))
	assert.True(t, Zero().IsZero())
}

func TestFromPercent(t *testing.T) {
	assert.Equal(t, FromParts(250_000_000), FromPercent(25))
	assert.Equal(t, One(), FromPercent(100))
	assert.Equal(t, One(), FromPercent(300))
	assert.Equal(t, Zero(), FromPercent(0))
}

func TestAdd(t *testing.T) {
	assert.Equal(t, FromPercent(30), FromPercent(10).Add(FromPercent(20)))
	// caps at one
	assert.Equal(t, One(), FromPercent(60).Add(FromPercent(60)))
}

func TestMul(t *testing.T) {
	assert.Equal(t, uint64(25), FromPercent(25).Mul(100))
	assert.Equal(t, uint64(0), Zero().Mul(math.MaxUint64))
	assert.Equal(t, uint64(math.MaxUint64), One().Mul(math.MaxUint64))
	// rounds down
	assert.Equal(t, uint64(0), FromPercent(25).Mul(3))
	// no overflow on maximal input
	assert.Equal(t, uint64(math.MaxUint64/2), FromPercent(50).Mul(math.MaxUint64))
}
