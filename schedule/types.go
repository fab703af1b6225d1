// Package schedule turns an activity permutation (optionally with one
// pairwise swap applied on the fly) into a feasible resource-respecting
// schedule and its makespan, via the serial schedule generation scheme.
package schedule

import "errors"

// ErrNonTopological is returned by Evaluate/EvaluateWithStarts when the
// permutation (with swap applied, if any) fails project.Graph.ValidateOrder.
// This is a programmer error: callers (the neighbourhood generator and the
// search driver) are responsible for only ever requesting feasible swaps,
// so this should never be observed under correct operation.
var ErrNonTopological = errors.New("schedule: permutation is not topologically valid")

// Swap names a single pairwise exchange of two activity ids' positions to
// apply virtually before evaluating, without mutating the caller's
// permutation.
type Swap struct {
	I, J int
}

// Result is the full output of a serial SGS run.
type Result struct {
	// Starts[a] is activity a's chosen start time.
	Starts []int
	// Makespan is max_a (Starts[a] + duration[a]).
	Makespan int
}
