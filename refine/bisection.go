package refine

import "github.com/corvidlabs/intercept/poly"

// Bisection refines [l, r] to a single root of p under the classical
// bisection method, honoring params.Tolerance and params.BisectionMaxIter.
// It reports Invalid if the endpoints don't bracket a sign change (after
// checking for an exact zero at either endpoint), MaxIterExhausted if the
// iteration cap is hit first, and otherwise Converged at the bracket
// midpoint once |r-l| <= 2*Tolerance.
func Bisection(p *poly.Polynomial, l, r float64, params Params) Result {
	fl := params.Evaluator.eval(p, l)
	fr := params.Evaluator.eval(p, r)

	if fl == 0 {
		return converged(l)
	}
	if fr == 0 {
		return converged(r)
	}
	if sign(fl) == sign(fr) {
		return invalid("bracket does not change sign")
	}

	for i := 0; i < params.BisectionMaxIter; i++ {
		if r-l <= 2*params.Tolerance {
			return converged((l + r) / 2)
		}

		mid := (l + r) / 2
		fm := params.Evaluator.eval(p, mid)

		if fm == 0 {
			return converged(mid)
		}

		if sign(fm) == sign(fl) {
			l, fl = mid, fm
		} else {
			r, fr = mid, fm
		}
	}

	return maxIterExhausted()
}

func sign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
