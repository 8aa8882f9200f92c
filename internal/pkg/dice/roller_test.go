package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRoller_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Percent(), b.Percent())
		assert.Equal(t, a.Between(5, 20), b.Between(5, 20))
		assert.Equal(t, a.FloatBetween(0.5, 2.5), b.FloatBetween(0.5, 2.5))
	}
}

func TestRoller_Ranges(t *testing.T) {
	r := NewSeeded(7)

	for i := 0; i < 1000; i++ {
		p := r.Percent()
		assert.GreaterOrEqual(t, p, 1)
		assert.LessOrEqual(t, p, 100)

		n := r.Between(3, 9)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 9)

		f := r.FloatBetween(1.0, 3.0)
		assert.GreaterOrEqual(t, f, 1.0)
		assert.Less(t, f, 3.0)

		idx := r.Index(5)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
	}
}

func TestRoller_DegenerateRanges(t *testing.T) {
	r := NewSeeded(1)

	assert.Equal(t, 4, r.Between(4, 4))
	assert.Equal(t, 4, r.Between(4, 2))
	assert.Equal(t, 1.5, r.FloatBetween(1.5, 1.5))
}

func TestToolkitRoller_PercentRange(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		p := r.Percent()
		assert.GreaterOrEqual(t, p, 1)
		assert.LessOrEqual(t, p, 100)
	}
}
