package poly

// Derivative returns P'. (P')_i = (i+1)*c_{i+1} for i = 0..d-1. A
// degree-zero (constant) input maps to the zero polynomial [0].
func Derivative(p *Polynomial) *Polynomial {
	d := p.Degree()
	if d <= 0 {
		return Zero()
	}

	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = float64(i+1) * p.inner[i+1]
	}

	return &Polynomial{inner: out}
}

// Divide performs classical polynomial long division in ascending-order
// coefficient buffers, following the same recurrence as Modern Computer
// Algebra's Algorithm 2.5 (the model the teacher's field.Polynomial.LongDiv
// and DensePolyRing.LongDiv both implement, adapted here from a field's
// modular inverse to a plain float reciprocal of the leading coefficient).
// Returns q, r such that num = q*den + r and deg(r) < deg(den). Division by
// the zero polynomial is fatal, per §7.
func Divide(num, den *Polynomial) (q, r *Polynomial) {
	den = den.Trim()
	if den.IsZero() {
		panic("poly: division by the zero polynomial")
	}

	n, m := num.Degree(), den.Degree()
	if n < m {
		return Zero(), num.Trim()
	}

	lead := den.LeadCoeff()
	rem := num.Copy()
	qInner := make([]float64, n-m+1)

	for i := n - m; i >= 0; i-- {
		if rem.Degree() == m+i {
			coeff := rem.LeadCoeff() / lead
			qInner[i] = coeff
			rem = subtract(rem, monomialMultiply(coeff, i, den))
		} else {
			qInner[i] = 0
		}
	}

	return (&Polynomial{inner: qInner}).Trim(), rem.Trim()
}

// monomialMultiply returns c * x^deg * p, used by Divide to subtract off
// the current quotient term times the divisor.
func monomialMultiply(c float64, deg int, p *Polynomial) *Polynomial {
	out := make([]float64, len(p.inner)+deg)
	for i, v := range p.inner {
		out[i+deg] = c * v
	}

	return &Polynomial{inner: out}
}

func subtract(a, b *Polynomial) *Polynomial {
	n := len(a.inner)
	if len(b.inner) > n {
		n = len(b.inner)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.At(i) - b.At(i)
	}

	return &Polynomial{inner: out}
}

// GCD computes gcd(P, Q) via the Euclidean loop on polynomial division,
// terminating when the remainder is the zero polynomial. The result is
// normalized to leading coefficient 1. Either argument being zero returns
// the other, normalized.
func GCD(p, q *Polynomial) *Polynomial {
	a, b := p.Trim(), q.Trim()

	if a.IsZero() {
		return b.Normalize()
	}

	if b.IsZero() {
		return a.Normalize()
	}

	for !b.IsZero() {
		_, r := Divide(a, b)
		a, b = b, r
	}

	return a.Normalize()
}

// Squarefree returns S = P / gcd(P, P'), which has the same root set as P
// but with every root reduced to multiplicity 1. If gcd(P, P') is a nonzero
// constant, P is already squarefree and is returned unchanged (trimmed).
//
// Numerical caveat (§4.2): this reduction is not always numerically stable
// for nearly-repeated roots. isolate.Isolate applies it to every input,
// including inputs already known to be squarefree; neither Isolate nor the
// physics adapter offers a way to skip it.
func Squarefree(p *Polynomial) *Polynomial {
	g := GCD(p, Derivative(p))
	if g.Degree() <= 0 {
		return p.Trim()
	}

	s, _ := Divide(p, g)

	return s
}
