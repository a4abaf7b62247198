package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignVariationsQuadratic(t *testing.T) {
	p := New([]float64{3, -4, 1}) // + - +  => 2 variations
	assert.Equal(t, 2, SignVariations(p))
}

func TestSignVariationsSkipsZeros(t *testing.T) {
	p := New([]float64{1, 0, -1, 0, 1}) // + (skip) - (skip) + => 2 variations
	assert.Equal(t, 2, SignVariations(p))
}

func TestSignVariationsNoPositiveRoots(t *testing.T) {
	p := New([]float64{1, 1, 0, 1}) // x^3 + x + 1, all nonneg-sign-consistent
	assert.Equal(t, 0, SignVariations(p))
}

func TestSignVariationsPanicsOnNaN(t *testing.T) {
	assert.Panics(t, func() {
		SignVariations(&Polynomial{inner: []float64{1, math.NaN()}})
	})
}
