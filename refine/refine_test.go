package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidlabs/intercept/poly"
)

func TestBisectionConvergesOnQuadratic(t *testing.T) {
	// x^2 - 4x + 3, root at 1 bracketed by [0, 2].
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()

	res := Bisection(p, 0, 2, params)

	assert.Equal(t, Converged, res.Outcome)
	assert.InDelta(t, 1.0, res.X, 2*params.Tolerance)
}

func TestBisectionInvalidOnNonBracketingInterval(t *testing.T) {
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()

	res := Bisection(p, 5, 6, params)

	assert.Equal(t, Invalid, res.Outcome)
}

func TestBisectionExactZeroAtEndpoint(t *testing.T) {
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()

	res := Bisection(p, 1, 2, params)

	assert.Equal(t, Converged, res.Outcome)
	assert.Equal(t, 1.0, res.X)
}

func TestBisectionMaxIterExhausted(t *testing.T) {
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()
	params.BisectionMaxIter = 0
	params.Tolerance = 0 // never converges on the |r-l| check either

	res := Bisection(p, 0, 2, params)

	assert.Equal(t, MaxIterExhausted, res.Outcome)
}

func TestITPConvergesOnQuadratic(t *testing.T) {
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()

	res := ITP(p, 0, 2, params)

	assert.Equal(t, Converged, res.Outcome)
	assert.InDelta(t, 1.0, res.X, 2*params.Tolerance)
}

func TestITPConvergesOnOtherRoot(t *testing.T) {
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()

	res := ITP(p, 2, 4, params)

	assert.Equal(t, Converged, res.Outcome)
	assert.InDelta(t, 3.0, res.X, 2*params.Tolerance)
}

func TestITPAgreesWithBisection(t *testing.T) {
	// Result carries no iteration count, so this does not compare speed: it
	// checks that both refiners converge on the same bracket to the same
	// root within 1e-3.
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()

	bisect := Bisection(p, 0, 2, params)
	itp := ITP(p, 0, 2, params)

	assert.Equal(t, Converged, bisect.Outcome)
	assert.Equal(t, Converged, itp.Outcome)
	assert.InDelta(t, bisect.X, itp.X, 1e-3)
}

func TestITPInvalidOnNonBracketingInterval(t *testing.T) {
	p := poly.New([]float64{3, -4, 1})
	params := DefaultParams()

	res := ITP(p, 5, 6, params)

	assert.Equal(t, Invalid, res.Outcome)
}
