package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivative(t *testing.T) {
	p := New([]float64{3, -4, 1}) // x^2 - 4x + 3
	d := Derivative(p)
	assert.Equal(t, []float64{-4, 2}, d.Trim().Coeffs())

	constant := New([]float64{5})
	assert.True(t, Derivative(constant).IsZero())
}

func TestDerivativeLawUnderShift(t *testing.T) {
	p := New([]float64{1, 0, -2, 1}) // x^3 - 2x + 1
	s := 1.7

	lhs := Derivative(Shift(p, s))
	rhs := Shift(Derivative(p), s)

	assert.InDeltaSlice(t, rhs.Trim().Coeffs(), lhs.Trim().Coeffs(), 1e-9)
}

func TestDivideRoundTrip(t *testing.T) {
	num := New([]float64{-6, 11, -6, 1}) // (x-1)(x-2)(x-3)
	den := New([]float64{-1, 1})         // (x-1)

	q, r := Divide(num, den)
	assert.True(t, r.IsZero())
	assert.InDeltaSlice(t, []float64{6, -5, 1}, q.Trim().Coeffs(), 1e-9)
}

func TestDividePanicsOnZeroDivisor(t *testing.T) {
	assert.Panics(t, func() {
		Divide(New([]float64{1, 1}), Zero())
	})
}

func TestGCDSelf(t *testing.T) {
	p := New([]float64{3, -4, 1})
	g := GCD(p, p)
	assert.True(t, g.Equals(p.Normalize()))
}

func TestGCDWithZero(t *testing.T) {
	p := New([]float64{3, -4, 1})
	g := GCD(p, Zero())
	assert.True(t, g.Equals(p.Normalize()))
}

func TestSquarefreeQuartic(t *testing.T) {
	// (x^2 - 2)^2 = x^4 - 4x^2 + 4
	p := New([]float64{4, 0, -4, 0, 1})
	s := Squarefree(p).Normalize()

	require.Len(t, s.Trim().Coeffs(), 3)
	assert.InDeltaSlice(t, []float64{-2, 0, 1}, s.Trim().Coeffs(), 1e-6)
}

func TestSquarefreeAlreadySquarefreeUnchanged(t *testing.T) {
	p := New([]float64{3, -4, 1})
	s := Squarefree(p)
	assert.True(t, s.Equals(p))
}
