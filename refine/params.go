// Package refine implements the bracket refiners of §4.8: Bisection and ITP
// (Interpolate-Truncate-Project), each narrowing a sign-change bracket
// [L, R] to a single x* within a target tolerance.
package refine

import "github.com/corvidlabs/intercept/poly"

// Evaluator selects which of poly's two Horner evaluators a refiner uses.
type Evaluator int

const (
	// NaiveHorner evaluates via poly.Horner.
	NaiveHorner Evaluator = iota
	// Compensated evaluates via poly.CompensatedHorner; the default, per §6.
	Compensated
)

func (e Evaluator) eval(p *poly.Polynomial, x float64) float64 {
	if e == NaiveHorner {
		return poly.Horner(p, x)
	}

	return poly.CompensatedHorner(p, x)
}

// Params holds the tunables §6 lists for bracket refinement, with the
// package defaults as its zero-friction path, mirroring the teacher's
// CodeParams/NewCodeParameters split between a plain value struct and a
// defaulting constructor.
type Params struct {
	Tolerance        float64
	BisectionMaxIter int
	ITPMaxIter       int
	ITPK1Coefficient float64 // k1 = ITPK1Coefficient / (R_initial - L_initial)
	ITPK2            float64
	ITPN0            float64
	Evaluator        Evaluator
}

// DefaultParams returns the §6 configuration defaults: tolerance 1e-5, 100
// bisection iterations, 50 ITP iterations, ITP k1=0.2/(width), k2=2, n0=1,
// compensated Horner evaluation.
func DefaultParams() Params {
	return Params{
		Tolerance:        1e-5,
		BisectionMaxIter: 100,
		ITPMaxIter:       50,
		ITPK1Coefficient: 0.2,
		ITPK2:            2,
		ITPN0:            1,
		Evaluator:        Compensated,
	}
}
