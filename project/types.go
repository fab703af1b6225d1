// Package project owns the precedence graph and per-activity resource
// profile of an RCPSP instance: durations, demands, successor edges, and
// resource capacities, built once and never mutated after New returns.
package project

import (
	"errors"
	"fmt"
)

// ErrCycle is returned by New when the precedence relation contains a
// cycle. It wraps the offending activity id: the vertex on the cycle
// search's recursion stack that a back-edge led into.
type ErrCycle struct {
	ActivityID int
}

func (e *ErrCycle) Error() string {
	return fmt.Sprintf("project: precedence relation has a cycle involving activity %d", e.ActivityID)
}

// ErrCapacityExceeded is returned by New when some activity demands more of
// a resource than the resource's capacity, making the instance infeasible
// under any schedule.
type ErrCapacityExceeded struct {
	ActivityID, Resource, Demand, Capacity int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("project: activity %d demands %d of resource %d, exceeding capacity %d",
		e.ActivityID, e.Demand, e.Resource, e.Capacity)
}

// ErrEmptyGraph is returned by New when jobs is less than 2 (a graph needs
// at least a distinct source and sink).
var ErrEmptyGraph = errors.New("project: a graph needs at least 2 activities (source and sink)")

// ErrSuccessorOutOfRange is returned by New when a successor list names an
// activity id outside [0, N).
var ErrSuccessorOutOfRange = errors.New("project: successor id out of range")

// BuildInput is the raw, unvalidated description of an RCPSP instance.
// Activity 0 is always the source, activity N-1 is always the sink.
type BuildInput struct {
	// Durations has length N; Durations[a] is activity a's duration.
	Durations []int
	// Demands has length N, each entry of length K; Demands[a][k] is
	// activity a's demand on resource k.
	Demands [][]int
	// Successors has length N; Successors[a] lists the ids of activities
	// that may not start before a finishes.
	Successors [][]int
	// Capacities has length K; Capacities[k] is resource k's capacity.
	Capacities []int
}
