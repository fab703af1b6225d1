package schedule

import (
	"github.com/rcpsp-go/rcpsp/matrix"
	"github.com/rcpsp-go/rcpsp/project"
)

// Evaluate computes the makespan of perm under the serial SGS, with swap
// (if non-nil) applied virtually first. It is a thin wrapper over
// EvaluateWithStarts for callers that don't need the start-time vector.
func Evaluate(g *project.Graph, perm []int, swap *Swap) (int, error) {
	res, err := EvaluateWithStarts(g, perm, swap)
	if err != nil {
		return 0, err
	}

	return res.Makespan, nil
}

// EvaluateWithStarts runs the serial schedule generation scheme:
//  1. allocate per-resource usage profiles over a time horizon H = the sum
//     of all durations, always sufficient for a feasible schedule;
//  2. process activities in perm's order (with swap applied); for each,
//     compute the earliest precedence start e, then the smallest
//     resource-feasible start s >= e by linearly incrementing t from e and
//     testing every (resource, offset) pair with early exit on the first
//     violation;
//  3. commit activity a's usage into the grid and return the makespan.
//
// Evaluate does not mutate perm. It returns ErrNonTopological if the
// effective order fails project.Graph.ValidateOrder.
func EvaluateWithStarts(g *project.Graph, perm []int, swap *Swap) (Result, error) {
	order := applySwap(perm, swap)
	if !g.ValidateOrder(order) {
		return Result{}, ErrNonTopological
	}

	n, k := g.N(), g.K()
	horizon := g.DurationUpperBound()
	if horizon < 1 {
		horizon = 1
	}

	var usage *matrix.Dense[int]
	if k > 0 {
		var err error
		usage, err = matrix.NewDense[int](k, horizon)
		if err != nil {
			return Result{}, err
		}
	}

	starts := make([]int, n)
	for _, a := range order {
		e := 0
		for _, p := range g.Predecessors(a) {
			if finish := starts[p] + g.Duration(p); finish > e {
				e = finish
			}
		}

		duration := g.Duration(a)
		var s int
		if duration == 0 || k == 0 {
			s = e
		} else {
			s = earliestResourceFeasibleStart(g, usage, a, e, duration, k)
		}
		starts[a] = s

		if duration > 0 && k > 0 {
			commit(usage, g, a, s, duration, k)
		}
	}

	makespan := 0
	for a := 0; a < n; a++ {
		if finish := starts[a] + g.Duration(a); finish > makespan {
			makespan = finish
		}
	}

	return Result{Starts: starts, Makespan: makespan}, nil
}

// earliestResourceFeasibleStart finds the smallest t >= e such that, for
// every resource and every offset within the activity's duration, adding
// its demand would not exceed capacity. This is the hot loop of the
// evaluator: early exit on the first violating (resource, offset) pair.
func earliestResourceFeasibleStart(g *project.Graph, usage *matrix.Dense[int], a, e, duration, k int) int {
	for t := e; ; t++ {
		feasible := true
		for kk := 0; feasible && kk < k; kk++ {
			demand := g.Demand(a, kk)
			if demand == 0 {
				continue
			}
			capacity := g.Capacity(kk)
			for d := 0; d < duration; d++ {
				if usage.MustAt(kk, t+d)+demand > capacity {
					feasible = false
					break
				}
			}
		}
		if feasible {
			return t
		}
	}
}

// commit records activity a's resource usage into the grid over
// [s, s+duration).
func commit(usage *matrix.Dense[int], g *project.Graph, a, s, duration, k int) {
	for kk := 0; kk < k; kk++ {
		demand := g.Demand(a, kk)
		if demand == 0 {
			continue
		}
		for d := 0; d < duration; d++ {
			usage.MustSet(kk, s+d, usage.MustAt(kk, s+d)+demand)
		}
	}
}

// applySwap returns a copy of perm with the positions of activities I and J
// exchanged, or perm itself (unmodified) if swap is nil.
func applySwap(perm []int, swap *Swap) []int {
	if swap == nil {
		return perm
	}

	order := append([]int(nil), perm...)
	pi, pj := -1, -1
	for idx, a := range order {
		if a == swap.I {
			pi = idx
		}
		if a == swap.J {
			pj = idx
		}
	}
	if pi >= 0 && pj >= 0 {
		order[pi], order[pj] = order[pj], order[pi]
	}

	return order
}
