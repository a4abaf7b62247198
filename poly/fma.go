package poly

import "math"

// fma wraps math.FMA so twoProduct gets a correctly-rounded a*b+c in one
// step; on platforms without hardware FMA the standard library falls back
// to a software implementation that still rounds correctly, which is the
// property twoProduct depends on.
func fma(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}
