package poly

import "math"

// Shift returns P(x+s), computed coefficient-by-coefficient via the
// binomial identity c'_k = sum_{i>=k} c_i * C(i,k) * s^(i-k).
func Shift(p *Polynomial, s float64) *Polynomial {
	d := len(p.inner) - 1
	out := make([]float64, d+1)

	for k := 0; k <= d; k++ {
		var sum float64
		for i := d; i >= k; i-- {
			if p.inner[i] == 0 {
				continue
			}

			sum += p.inner[i] * binomial(i, k) * math.Pow(s, float64(i-k))
		}

		out[k] = sum
	}

	return &Polynomial{inner: out}
}

// Scale returns P(s*x): c'_i = s^i * c_i.
func Scale(p *Polynomial, s float64) *Polynomial {
	out := make([]float64, len(p.inner))
	pow := 1.0

	for i, c := range p.inner {
		out[i] = c * pow
		pow *= s
	}

	return &Polynomial{inner: out}
}

// Reverse returns x^d * P(1/x), i.e. the coefficients in reverse order with
// respect to the true degree d of p (trailing zero coefficients of p do not
// become leading zeros of the result).
func Reverse(p *Polynomial) *Polynomial {
	t := p.Trim()
	d := t.Degree()

	if d < 0 {
		return Zero()
	}

	out := make([]float64, d+1)
	for i := 0; i <= d; i++ {
		out[i] = t.inner[d-i]
	}

	return &Polynomial{inner: out}
}

// LowerIntervalMap implements the composite map x <- s/(x+1), returning
// (x+1)^d * P(s/(x+1)) (§4.3). Of the two algebraically equivalent
// realizations the source exposed (see Design Notes §9), this implements
// "Scale then Reverse then Shift-by-1":
//
//	Scale(P, s) has coefficients c'_i = s^i * c_i, i.e. P(s*y) as a
//	polynomial in y = 1/(x+1). Reversing those coefficients against the true
//	degree d produces the polynomial in z = x+1 whose value at z is
//	(x+1)^d * P(s/(x+1)); shifting by 1 turns z back into x+1.
//
// The returned polynomial's constant term is its value at x=0, i.e. P(s): it
// is zero exactly when s is a root of p, whatever p's own constant term is.
// Callers that need to detect "this branch's constant term is exactly zero"
// (step 2 of the isolator) must inspect it explicitly rather than assume it
// propagates from the input's constant term.
func LowerIntervalMap(p *Polynomial, s float64) *Polynomial {
	return Shift(Reverse(Scale(p, s)), 1)
}

// StripLeadingZeroRoot divides p by x, dropping the constant term. Callers
// must only invoke this when p.At(0) == 0 (an explicit root at 0); the
// isolator checks this before calling.
func StripLeadingZeroRoot(p *Polynomial) *Polynomial {
	if len(p.inner) <= 1 {
		return Zero()
	}

	out := make([]float64, len(p.inner)-1)
	copy(out, p.inner[1:])

	return &Polynomial{inner: out}
}
