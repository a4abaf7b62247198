package mobius

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityEvaluate(t *testing.T) {
	m := Identity()
	assert.Equal(t, 2.0, m.Evaluate(2))
}

func TestShiftComposition(t *testing.T) {
	m := Identity().Shift(3)
	assert.Equal(t, 5.0, m.Evaluate(2)) // (x+3) at x=2
}

func TestScaleInputComposition(t *testing.T) {
	m := Identity().ScaleInput(4)
	assert.Equal(t, 8.0, m.Evaluate(2)) // 4x at x=2
}

func TestInvertComposition(t *testing.T) {
	m := Identity().Invert()
	assert.InDelta(t, 0.5, m.Evaluate(2), 1e-12)
}

func TestLowerIntervalComposition(t *testing.T) {
	// x <- s/(x+1), s=6: at x=2, value should be 6/3=2.
	m := Identity().LowerInterval(6)
	assert.InDelta(t, 2.0, m.Evaluate(2), 1e-12)
}

func TestPositiveDomainImageIdentity(t *testing.T) {
	iv := Identity().PositiveDomainImage()
	assert.Equal(t, 0.0, iv.L)
	assert.True(t, math.IsInf(iv.R, 1))
}

func TestPositiveDomainImageShift(t *testing.T) {
	// x <- x+5: image of (0, inf) is (5, inf).
	iv := Identity().Shift(5).PositiveDomainImage()
	assert.Equal(t, 5.0, iv.L)
	assert.True(t, math.IsInf(iv.R, 1))
}

func TestPositiveDomainImageLowerInterval(t *testing.T) {
	// x <- s/(x+1), s=4: image of (0, inf) is (0, 4).
	iv := Identity().LowerInterval(4).PositiveDomainImage()
	assert.InDelta(t, 0.0, iv.L, 1e-12)
	assert.InDelta(t, 4.0, iv.R, 1e-12)
}

func TestEvaluateDenominatorZero(t *testing.T) {
	m := Mobius{A: 1, B: 0, C: 1, D: 0} // x/x, denominator zero at x=0
	v := m.Evaluate(0)
	assert.True(t, math.IsNaN(v))

	m2 := Mobius{A: 1, B: 1, C: 1, D: 0} // (x+1)/x, den zero at x=0, num=1
	assert.True(t, math.IsInf(m2.Evaluate(0), 1))
}
