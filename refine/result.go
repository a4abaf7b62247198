package refine

// Outcome classifies a refiner Result, replacing the source's mutable
// "ref" output parameters with an ordinary return value (§ Design Notes).
type Outcome int

const (
	// Converged means X holds a refined root estimate within tolerance.
	Converged Outcome = iota
	// MaxIterExhausted means the iteration cap was hit before convergence.
	MaxIterExhausted
	// Invalid means the bracket itself was unusable; Reason explains why.
	Invalid
)

// Result is the { Converged(x), MaxIter, Invalid(reason) } variant §4.8
// specifies: exactly one of the three outcomes, carrying only the data
// that outcome needs.
type Result struct {
	Outcome Outcome
	X       float64
	Reason  string
}

func converged(x float64) Result {
	return Result{Outcome: Converged, X: x}
}

func maxIterExhausted() Result {
	return Result{Outcome: MaxIterExhausted}
}

func invalid(reason string) Result {
	return Result{Outcome: Invalid, Reason: reason}
}

// Ok reports whether the refinement converged.
func (r Result) Ok() bool {
	return r.Outcome == Converged
}
