// Package mobius implements the rational linear (Möbius) transformation
// value type the root isolator uses to track, alongside each transformed
// polynomial, the map back to the original variable (§4.6). Per Design
// Notes §9, Mobius is a plain value type with arithmetic-style composition
// — not a class with identity — so the loop invariant in the isolator can
// be checked by value equality.
package mobius

import (
	"math"

	"github.com/corvidlabs/intercept/interval"
)

// Mobius represents M(x) = (Ax+B)/(Cx+D), with the invariant AD != BC
// preserved by every composition below.
type Mobius struct {
	A, B, C, D float64
}

// Identity returns the identity transformation x -> x.
func Identity() Mobius {
	return Mobius{A: 1, B: 0, C: 0, D: 1}
}

// Shift returns the Mobius tracking x <- x+s composed with m, i.e. the
// value such that Shift(s).Evaluate(x) == m.Evaluate(x+s).
func (m Mobius) Shift(s float64) Mobius {
	return Mobius{A: m.A, B: m.B + s*m.A, C: m.C, D: m.D + s*m.C}
}

// ScaleInput returns the Mobius tracking x <- s*x composed with m.
func (m Mobius) ScaleInput(s float64) Mobius {
	return Mobius{A: s * m.A, B: m.B, C: s * m.C, D: m.D}
}

// LowerInterval returns the Mobius tracking x <- s/(x+1) composed with m.
func (m Mobius) LowerInterval(s float64) Mobius {
	return Mobius{A: m.B, B: s*m.A + m.B, C: m.D, D: s*m.C + m.D}
}

// Invert returns the Mobius tracking x <- 1/x composed with m.
func (m Mobius) Invert() Mobius {
	return Mobius{A: m.B, B: m.A, C: m.D, D: m.C}
}

// Evaluate returns (Ax+B)/(Cx+D), with explicit +/-Inf handling when the
// denominator vanishes.
func (m Mobius) Evaluate(x float64) float64 {
	num := m.A*x + m.B
	den := m.C*x + m.D

	if den == 0 {
		if num == 0 {
			// Cannot occur while A*D != B*C holds, but report NaN rather
			// than an arbitrary sign.
			return math.NaN()
		}

		if num > 0 {
			return math.Inf(1)
		}

		return math.Inf(-1)
	}

	return num / den
}

// PositiveDomainImage returns the image of (0, +Inf) under m: the open
// interval with endpoints m.Evaluate(0) = B/D and the limit of m as
// x -> +Inf, which is A/C (or, when C == 0, +Inf, or -Inf if A < 0),
// sorted.
func (m Mobius) PositiveDomainImage() interval.Interval {
	at0 := m.B / m.D

	var atInf float64
	if m.C == 0 {
		atInf = math.Inf(1)
		if m.A < 0 {
			atInf = math.Inf(-1)
		}
	} else {
		atInf = m.A / m.C
	}

	return interval.New(at0, atInf)
}

// Equals reports exact componentwise equality.
func (m Mobius) Equals(other Mobius) bool {
	return m.A == other.A && m.B == other.B && m.C == other.C && m.D == other.D
}
