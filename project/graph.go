package project

import (
	"errors"
	"fmt"

	"github.com/rcpsp-go/rcpsp/bfs"
	"github.com/rcpsp-go/rcpsp/dfs"
	"github.com/rcpsp-go/rcpsp/matrix"
)

// Graph is the immutable precedence graph and resource profile of an RCPSP
// instance. It is built once by New and never mutated afterward; every
// method is safe for concurrent read-only use across walkers.
type Graph struct {
	n, k int

	duration     []int
	demand       [][]int
	capacity     []int
	successors   [][]int
	predecessors [][]int

	adjacency *matrix.Dense[bool]

	ranks          []int
	topoOrder      []int
	criticalLength int
}

// N returns the number of activities.
func (g *Graph) N() int { return g.n }

// K returns the number of renewable resources.
func (g *Graph) K() int { return g.k }

// Duration returns activity a's duration.
func (g *Graph) Duration(a int) int { return g.duration[a] }

// Demand returns activity a's demand on resource k.
func (g *Graph) Demand(a, k int) int { return g.demand[a][k] }

// Capacity returns resource k's capacity.
func (g *Graph) Capacity(k int) int { return g.capacity[k] }

// Successors returns the ids of activities that may not start before a
// finishes. The caller must not mutate the returned slice.
func (g *Graph) Successors(a int) []int { return g.successors[a] }

// Predecessors returns the ids of activities a may not start before. The
// caller must not mutate the returned slice.
func (g *Graph) Predecessors(a int) []int { return g.predecessors[a] }

// HasEdge reports whether u->v is a precedence edge, in O(1).
func (g *Graph) HasEdge(u, v int) bool {
	return g.adjacency.MustAt(u, v)
}

// Rank returns activity a's execution rank: the length, in edges, of the
// longest chain of predecessors leading to it.
func (g *Graph) Rank(a int) int { return g.ranks[a] }

// DurationUpperBound returns the sum of all activity durations, the time
// horizon H that schedule.Evaluate always has enough room within: summing
// all durations is always sufficient for a feasible serial schedule.
func (g *Graph) DurationUpperBound() int {
	total := 0
	for _, d := range g.duration {
		total += d
	}

	return total
}

// New validates input and builds a Graph. It returns *ErrCycle if the
// precedence relation has a cycle, *ErrCapacityExceeded if some activity's
// demand exceeds its resource's capacity, ErrEmptyGraph if there are fewer
// than 2 activities, or ErrSuccessorOutOfRange if a successor list names an
// id outside [0, N).
func New(input BuildInput) (*Graph, error) {
	n := len(input.Durations)
	if n < 2 {
		return nil, ErrEmptyGraph
	}
	if len(input.Demands) != n || len(input.Successors) != n {
		return nil, fmt.Errorf("project: Durations/Demands/Successors must all have length N=%d", n)
	}
	k := len(input.Capacities)

	for a := 0; a < n; a++ {
		if len(input.Demands[a]) != k {
			return nil, fmt.Errorf("project: activity %d has %d demand entries, want K=%d", a, len(input.Demands[a]), k)
		}
		for _, s := range input.Successors[a] {
			if s < 0 || s >= n {
				return nil, ErrSuccessorOutOfRange
			}
		}
		for kk := 0; kk < k; kk++ {
			if input.Demands[a][kk] > input.Capacities[kk] {
				return nil, &ErrCapacityExceeded{ActivityID: a, Resource: kk, Demand: input.Demands[a][kk], Capacity: input.Capacities[kk]}
			}
		}
	}

	adjacency, err := matrix.NewDense[bool](n, n)
	if err != nil {
		return nil, fmt.Errorf("project: building adjacency matrix: %w", err)
	}
	predecessors := make([][]int, n)
	for u := 0; u < n; u++ {
		for _, v := range input.Successors[u] {
			adjacency.MustSet(u, v, true)
			predecessors[v] = append(predecessors[v], u)
		}
	}
	for a := range predecessors {
		sortInts(predecessors[a])
	}

	successorsFn := dfs.Successors(func(u int) []int { return input.Successors[u] })
	topoOrder, err := dfs.TopologicalOrder(n, successorsFn)
	if err != nil {
		var cycleErr *dfs.CycleError
		if errors.As(err, &cycleErr) {
			return nil, &ErrCycle{ActivityID: cycleErr.Vertex}
		}

		return nil, &ErrCycle{ActivityID: -1}
	}

	ranks := bfs.Ranks(n, bfs.Successors(func(u int) []int { return input.Successors[u] }))

	g := &Graph{
		n:            n,
		k:            k,
		duration:     append([]int(nil), input.Durations...),
		demand:       cloneDemands(input.Demands),
		capacity:     append([]int(nil), input.Capacities...),
		successors:   cloneSuccessors(input.Successors),
		predecessors: predecessors,
		adjacency:    adjacency,
		ranks:        ranks,
		topoOrder:    topoOrder,
	}
	g.criticalLength = g.computeCriticalPathLength()

	return g, nil
}

func cloneDemands(d [][]int) [][]int {
	out := make([][]int, len(d))
	for i, row := range d {
		out[i] = append([]int(nil), row...)
	}

	return out
}

func cloneSuccessors(s [][]int) [][]int {
	out := make([][]int, len(s))
	for i, row := range s {
		sorted := append([]int(nil), row...)
		sortInts(sorted)
		out[i] = sorted
	}

	return out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
