package refine

import (
	"math"

	"github.com/corvidlabs/intercept/poly"
)

// ITP refines [l, r] to a single root of p via Interpolate-Truncate-Project
// (§4.8): a regula-falsi estimate is truncated toward the bisection
// midpoint and projected into a shrinking radius around it, guaranteeing
// the same worst-case iteration bound as Bisection with superlinear
// average-case convergence. params.ITPK1Coefficient is divided by the
// initial bracket width to produce the paper's k1 constant.
func ITP(p *poly.Polynomial, l, r float64, params Params) Result {
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

	width0 := r - l
	if width0 <= 0 {
		return invalid("degenerate bracket")
	}

	k1 := params.ITPK1Coefficient / width0
	k2 := params.ITPK2
	nMax := math.Ceil(math.Log2(width0/(2*params.Tolerance))) + params.ITPN0

	for k := 0; k < params.ITPMaxIter; k++ {
		if r-l <= 2*params.Tolerance {
			return converged((l + r) / 2)
		}

		xHalf := (l + r) / 2
		delta := k1 * math.Pow(r-l, k2)
		xF := (r*fl - l*fr) / (fl - fr)
		sigma := sign(xHalf - xF)

		var xT float64
		if math.Abs(xHalf-xF) >= delta {
			xT = xF + float64(sigma)*delta
		} else {
			xT = xHalf
		}

		radius := params.Tolerance*math.Pow(2, nMax-float64(k)) - (r-l)/2

		var xITP float64
		if math.Abs(xT-xHalf) <= radius {
			xITP = xT
		} else {
			xITP = xHalf - float64(sigma)*radius
		}

		fITP := params.Evaluator.eval(p, xITP)

		if fITP == 0 {
			return converged(xITP)
		}

		if sign(fITP) == sign(fl) {
			l, fl = xITP, fITP
		} else {
			r, fr = xITP, fITP
		}
	}

	return maxIterExhausted()
}
