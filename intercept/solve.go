package intercept

import (
	"github.com/corvidlabs/intercept/interval"
	"github.com/corvidlabs/intercept/isolate"
	"github.com/corvidlabs/intercept/poly"
	"github.com/corvidlabs/intercept/refine"
)

// Candidate is one refined intercept-time root together with the velocity
// and objective value it implies.
type Candidate struct {
	T            float64
	Velocity     []float64
	SpeedSquared float64
}

// Result is the outcome of Solve. Found is false when the isolator turned
// up no positive-T candidate at all, matching §6's "empty result (no
// positive-T intercept)". Candidates holds every refined root's data, not
// only the winner — the minimal calling protocol of §6 only requires the
// argmin, but returning the full list costs nothing extra once every
// candidate has already been refined and evaluated, and lets a caller
// inspect near-ties or degenerate multi-root scenarios.
type Result struct {
	Found        bool
	T            float64
	Velocity     []float64
	SpeedSquared float64
	Candidates   []Candidate
}

// Solve computes the intercept time and velocity per §4.9: target and
// shooter are ordered lists of position time-derivatives (index 0 is
// position, 1 is velocity, 2 is acceleration, ...), trailing entries may be
// omitted on either side and are treated as zero. params controls bracket
// refinement; pass refine.DefaultParams() for the §6 defaults.
func Solve(target, shooter [][]float64, params refine.Params) Result {
	delta := deltaCoefficients(target, shooter)
	if len(delta) == 0 {
		panic("intercept: empty derivative-vector list")
	}

	critical := criticalPolynomial(delta)
	if critical.IsZero() {
		// Every coefficient vanishing means the relative motion is
		// identically zero to the Taylor order supplied: target and shooter
		// coincide for every T, which is not a single intercept time.
		return Result{Found: false}
	}

	intervals := isolate.Isolate(critical, 0)
	if len(intervals) == 0 {
		return Result{Found: false}
	}

	positions := positionPolynomials(delta)

	var candidates []Candidate
	for _, iv := range intervals {
		t, ok := refineToRoot(critical, iv, params)
		if !ok || t <= 0 {
			continue
		}

		candidates = append(candidates, evaluateCandidate(positions, t))
	}

	if len(candidates) == 0 {
		return Result{Found: false}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.SpeedSquared < best.SpeedSquared {
			best = c
		}
	}

	return Result{
		Found:        true,
		T:            best.T,
		Velocity:     best.Velocity,
		SpeedSquared: best.SpeedSquared,
		Candidates:   candidates,
	}
}

// refineToRoot resolves a single isolator interval to a concrete root. A
// point interval (an explicit root the isolator found exactly, e.g. at 0)
// is returned as-is; a ranged interval is handed to ITP. Unbounded
// intervals are skipped: they only arise when the isolator's LMQ-upper-
// bound tightening found no negative coefficient to bound against, which
// does not happen for the critical polynomials this adapter constructs
// from a nonzero Δ, but the adapter stays defensive rather than assuming
// it.
func refineToRoot(critical *poly.Polynomial, iv interval.Interval, params refine.Params) (float64, bool) {
	if iv.L == iv.R {
		return iv.L, true
	}

	if iv.IsUnbounded() {
		return 0, false
	}

	res := refine.ITP(critical, iv.L, iv.R, params)
	if !res.Ok() {
		return 0, false
	}

	return res.X, true
}

func evaluateCandidate(positions []*poly.Polynomial, t float64) Candidate {
	pos := evaluatePosition(positions, t)

	velocity := make([]float64, len(pos))
	for i, x := range pos {
		velocity[i] = x / t
	}

	return Candidate{
		T:            t,
		Velocity:     velocity,
		SpeedSquared: dot(velocity, velocity),
	}
}
