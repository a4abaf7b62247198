// Package intercept implements the physics reduction adapter of §4.9: it
// turns target/shooter motion derivatives into the scalar critical
// polynomial the root engine isolates and refines, then recovers the
// intercept time and velocity from the winning root.
package intercept

// deltaCoefficients computes Δ[k] = target[k] - shooter[k] for k in
// [0, max(len(target), len(shooter))), treating a missing entry on either
// side as the zero vector. Every returned vector has the same spatial
// dimension as the longest input vector seen.
func deltaCoefficients(target, shooter [][]float64) [][]float64 {
	n := len(target)
	if len(shooter) > n {
		n = len(shooter)
	}

	dim := 0
	for _, v := range target {
		if len(v) > dim {
			dim = len(v)
		}
	}
	for _, v := range shooter {
		if len(v) > dim {
			dim = len(v)
		}
	}

	delta := make([][]float64, n)
	for k := 0; k < n; k++ {
		delta[k] = make([]float64, dim)

		if k < len(target) {
			copy(delta[k], target[k])
		}
		if k < len(shooter) {
			for i, s := range shooter[k] {
				delta[k][i] -= s
			}
		}
	}

	return delta
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}
