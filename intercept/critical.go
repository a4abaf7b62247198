package intercept

import "github.com/corvidlabs/intercept/poly"

// criticalPolynomial builds the scalar degree-2n polynomial whose positive
// roots are candidate intercept times, per §4.9: the coefficient of T^k is
// sum_{j} (Δ[j]·Δ[k-j]) * (1-k+j) / (j! * (k-j)!), summed over j in
// [max(0,k-n), min(k,n)].
func criticalPolynomial(delta [][]float64) *poly.Polynomial {
	n := len(delta) - 1
	if n < 0 {
		panic("intercept: empty derivative-vector list")
	}

	degree := 2 * n
	coeffs := make([]float64, degree+1)

	for k := 0; k <= degree; k++ {
		jMin := 0
		if k-n > jMin {
			jMin = k - n
		}
		jMax := k
		if n < jMax {
			jMax = n
		}

		var sum float64
		for j := jMin; j <= jMax; j++ {
			d := dot(delta[j], delta[k-j])
			sum += d * (1 - float64(k) + float64(j)) / (factorial(j) * factorial(k-j))
		}

		coeffs[k] = sum
	}

	return poly.New(coeffs)
}

// positionPolynomials returns, one per spatial dimension, the scalar
// Taylor-coefficient polynomial c_k = Δ[k][dim]/k! whose evaluation at t
// gives the relative position's dim-th component at time t (§4.9's
// "Position function", evaluated per component by Horner's method rather
// than as a single vector-coefficient pass).
func positionPolynomials(delta [][]float64) []*poly.Polynomial {
	if len(delta) == 0 {
		return nil
	}

	dim := len(delta[0])
	polys := make([]*poly.Polynomial, dim)

	for d := 0; d < dim; d++ {
		coeffs := make([]float64, len(delta))
		for k, v := range delta {
			coeffs[k] = v[d] / factorial(k)
		}
		polys[d] = poly.New(coeffs)
	}

	return polys
}

// evaluatePosition returns the relative position vector at time t.
func evaluatePosition(polys []*poly.Polynomial, t float64) []float64 {
	out := make([]float64, len(polys))
	for d, p := range polys {
		out[d] = poly.CompensatedHorner(p, t)
	}

	return out
}
