// Package isolate implements the Vincent/continued-fraction positive-real-
// root isolator of §4.7: given a squarefree polynomial, it produces a list
// of disjoint open intervals, each containing exactly one positive real
// root.
package isolate

import (
	"math"

	"github.com/corvidlabs/intercept/interval"
	"github.com/corvidlabs/intercept/mobius"
	"github.com/corvidlabs/intercept/poly"
)

// DefaultMaxTasks bounds the isolator's work-queue processing as a defense
// against numerically-induced non-termination (§5) — e.g. a polynomial that
// float squarefree reduction left with near-duplicate roots, so Vincent's
// theorem's finite-step guarantee no longer applies in floating point.
const DefaultMaxTasks = 100_000

// task is the (P_current, M_current) pair the isolator's work queue holds,
// with the loop invariant (cx+d)^n * P_input(M(x)) = P_current(x) (§4.7).
type task struct {
	p *poly.Polynomial
	m mobius.Mobius
}

// Isolate returns disjoint open intervals, each containing exactly one
// positive real root of pInput, plus any root the recursion lands on exactly,
// such as 0 or 1 (reported as degenerate (x, x) intervals). pInput need not be squarefree; it is
// reduced internally. maxTasks caps the number of work-queue items
// processed; 0 selects DefaultMaxTasks.
func Isolate(pInput *poly.Polynomial, maxTasks int) []interval.Interval {
	if maxTasks <= 0 {
		maxTasks = DefaultMaxTasks
	}

	// All-positive-coefficient precondition (§4.7): Descartes guarantees no
	// positive root without doing any work.
	if allNonNegativeAndNotAllZero(pInput) {
		return nil
	}

	squarefree := poly.Squarefree(pInput)
	originalUpper := poly.LMQUpperBound(squarefree)

	queue := []task{{p: squarefree, m: mobius.Identity()}}
	var results []interval.Interval

	processed := 0
	for len(queue) > 0 && processed < maxTasks {
		processed++

		t := queue[0]
		queue = queue[1:]

		results, queue = step(t, originalUpper, results, queue)
	}

	return results
}

// step processes a single task, appending any intervals it resolves to
// results and any further work to queue, and returns both.
func step(t task, originalUpper float64, results []interval.Interval, queue []task) ([]interval.Interval, []task) {
	p := t.p
	m := t.m

	if p.IsZero() {
		// All nonnegative reals are roots; report the half-line. Does not
		// arise from a squarefree, nonzero input, but handled per §4.7.
		return insert(results, interval.New(0, math.Inf(1))), queue
	}

	if p.At(0) == 0 {
		results = insert(results, interval.Point(m.Evaluate(0)))
		p = poly.StripLeadingZeroRoot(p)

		if p.IsZero() {
			return results, queue
		}
	}

	if b := poly.LMQLowerBound(p); b >= 1 {
		// p <- Shift(Scale(p, b), 1) realizes x <- b*(x+1); m must track the
		// same substitution in the same order: scale first, then shift.
		p = poly.Shift(poly.Scale(p, b), 1)
		m = m.ScaleInput(b).Shift(1)
	}

	v := poly.SignVariations(p)

	switch {
	case v == 0:
		return results, queue
	case v == 1:
		return insert(results, tightenUnbounded(m.PositiveDomainImage(), originalUpper)), queue
	default:
		return split(p, m, v, originalUpper, results, queue)
	}
}

// split handles the v >= 2 branch: divide the positive half-line at x=1
// into the right half (x > 1) and left half (0 < x < 1), resolving each
// inline when its own sign-variation count permits.
func split(p *poly.Polynomial, m mobius.Mobius, v int, originalUpper float64, results []interval.Interval, queue []task) ([]interval.Interval, []task) {
	pr := poly.Shift(p, 1)
	mr := m.Shift(1)

	rootAtOne := false
	if pr.At(0) == 0 {
		rootAtOne = true
		results = insert(results, interval.Point(mr.Evaluate(0)))
		pr = poly.StripLeadingZeroRoot(pr)
	}

	vr := poly.SignVariations(pr)

	switch {
	case vr == 0:
		// nothing to enqueue on the right
	case vr == 1:
		results = insert(results, tightenUnbounded(mr.PositiveDomainImage(), originalUpper))
	default:
		queue = append(queue, task{p: pr, m: mr})
	}

	pl := poly.LowerIntervalMap(p, 1)
	ml := m.LowerInterval(1)

	if pl.At(0) == 0 {
		results = insert(results, interval.Point(ml.Evaluate(0)))
		pl = poly.StripLeadingZeroRoot(pl)
	}

	consumed := vr
	if rootAtOne {
		consumed++
	}

	vl := v - consumed
	if vl < 0 {
		vl = poly.SignVariations(pl)
	}

	switch {
	case vl == 0:
		// nothing to enqueue on the left
	case vl == 1:
		results = insert(results, tightenUnbounded(ml.PositiveDomainImage(), originalUpper))
	default:
		queue = append(queue, task{p: pl, m: ml})
	}

	return results, queue
}

// tightenUnbounded clips an unbounded-right interval to the original
// polynomial's LMQ upper bound, per §4.7's v==1 case.
func tightenUnbounded(iv interval.Interval, originalUpper float64) interval.Interval {
	if iv.IsUnbounded() && originalUpper > 0 && originalUpper < iv.R {
		return interval.New(iv.L, originalUpper)
	}

	return iv
}

// insert appends iv to results, rejecting exact duplicates and any interval
// that is a strict sub- or super-range of an existing one (keeping the
// tighter of the two), per §4.7's output-hygiene rule. Ranges are open, so a
// point root on a range's endpoint is disjoint from that range.
func insert(results []interval.Interval, iv interval.Interval) []interval.Interval {
	for i, existing := range results {
		if existing.Equals(iv) {
			return results
		}

		if (existing.L == existing.R) != (iv.L == iv.R) {
			pt, rng := existing, iv
			if iv.L == iv.R {
				pt, rng = iv, existing
			}
			if pt.L == rng.L || pt.L == rng.R {
				continue
			}
		}

		if existing.Subsumes(iv) {
			results[i] = iv
			return results
		}

		if iv.Subsumes(existing) {
			return results
		}
	}

	return append(results, iv)
}

func allNonNegativeAndNotAllZero(p *poly.Polynomial) bool {
	c := p.Coeffs()
	nonZero := false
	for _, v := range c {
		if v < 0 {
			return false
		}
		if v > 0 {
			nonZero = true
		}
	}

	return nonZero
}
