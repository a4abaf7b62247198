package poly

import "math"

// LMQUpperBound returns the Local-Max-Quadratic upper bound on the positive
// real roots of p: every positive real root of p is strictly less than or
// equal to the returned value. Returns 0 if p has no negative coefficient
// (Descartes then guarantees no positive root).
//
// Each negative coefficient at degree i is paired against the positive
// coefficients at every higher degree j > i, walked down from the leading
// term (j = d, d-1, ..., i+1); t starts at 1 for the first such pairing and
// increments each time a positive c_j is found. The bound is the max over
// negative-coefficient degrees of the min over their pairings.
func LMQUpperBound(p *Polynomial) float64 {
	t := p.Trim()
	if t.LeadCoeff() < 0 {
		neg := make([]float64, len(t.inner))
		for i, c := range t.inner {
			neg[i] = -c
		}

		t = &Polynomial{inner: neg}
	}

	c := t.inner
	d := len(c) - 1

	bound := 0.0
	found := false

	for i := 0; i < d; i++ {
		if c[i] >= 0 {
			continue
		}

		m := math.Inf(1)
		tExp := 1

		for j := d; j > i; j-- {
			if c[j] <= 0 {
				continue
			}

			r := math.Pow((math.Pow(2, float64(tExp))*math.Abs(c[i]))/c[j], 1/float64(j-i))
			if r < m {
				m = r
			}

			tExp++
		}

		if m < math.Inf(1) {
			found = true
			if m > bound {
				bound = m
			}
		}
	}

	if !found {
		return 0
	}

	return bound
}

// LMQLowerBound returns the Local-Max-Quadratic lower bound on the positive
// real roots of p. The reversed polynomial x^d*p(1/x) has roots that are the
// reciprocals of p's nonzero roots, so the LMQ upper bound U of the reversed
// polynomial bounds 1/r from above for every positive root r of p; the
// lower bound on r is therefore 1/U, not U itself. Returns 0 when p has no
// positive root (reversed polynomial has no negative coefficient, so U is
// 0 and there is nothing to invert).
func LMQLowerBound(p *Polynomial) float64 {
	u := LMQUpperBound(Reverse(p))
	if u == 0 {
		return 0
	}

	return 1 / u
}
