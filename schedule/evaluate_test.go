package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcpsp-go/rcpsp/project"
)

// diamond: 0 -> {1,2} -> 3, one resource with capacity 2; activities 1 and
// 2 together demand 3 (2 and 1), more than the capacity, forcing them to
// take turns on the resource rather than overlap.
func diamond(t *testing.T) *project.Graph {
	t.Helper()
	g, err := project.New(project.BuildInput{
		Durations:  []int{0, 3, 2, 0},
		Demands:    [][]int{{0}, {2}, {1}, {0}},
		Successors: [][]int{{1, 2}, {3}, {3}, {}},
		Capacities: []int{2},
	})
	require.NoError(t, err)

	return g
}

func TestEvaluateDiamondNoSwap(t *testing.T) {
	g := diamond(t)
	perm := g.InitialOrder()

	res, err := EvaluateWithStarts(g, perm, nil)
	require.NoError(t, err)
	require.Equal(t, 0, res.Starts[0])
	// Activities 1 (demand 2) and 2 (demand 1) together exceed capacity 2,
	// so they cannot run concurrently from t=0; one must wait.
	require.True(t, res.Starts[1] == 0 || res.Starts[2] == 0)
	require.NotEqual(t, res.Starts[1], res.Starts[2])
	// Sink starts exactly when both predecessors have finished.
	require.Equal(t, maxInt(res.Starts[1]+3, res.Starts[2]+2), res.Starts[3])
	require.Equal(t, res.Makespan, res.Starts[3])
}

func TestEvaluateZeroDurationActivityInheritsEarliestStart(t *testing.T) {
	g, err := project.New(project.BuildInput{
		Durations:  []int{0, 0, 0},
		Demands:    [][]int{{0}, {0}, {0}},
		Successors: [][]int{{1}, {2}, {}},
		Capacities: []int{1},
	})
	require.NoError(t, err)

	res, err := EvaluateWithStarts(g, g.InitialOrder(), nil)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, res.Starts)
	require.Equal(t, 0, res.Makespan)
}

func TestEvaluateAppliesVirtualSwapWithoutMutatingInput(t *testing.T) {
	g := diamond(t)
	perm := g.InitialOrder()
	original := append([]int(nil), perm...)

	_, err := EvaluateWithStarts(g, perm, &Swap{I: perm[1], J: perm[2]})
	require.NoError(t, err)
	require.Equal(t, original, perm, "Evaluate must not mutate the caller's permutation")
}

func TestEvaluateRejectsNonTopologicalSwap(t *testing.T) {
	g := diamond(t)
	perm := g.InitialOrder()
	// Swapping the source (position 0) into a later slot breaks every
	// precedence edge out of it.
	_, err := EvaluateWithStarts(g, perm, &Swap{I: perm[0], J: perm[len(perm)-1]})
	require.ErrorIs(t, err, ErrNonTopological)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	g := diamond(t)
	perm := g.InitialOrder()

	m1, err := Evaluate(g, perm, nil)
	require.NoError(t, err)
	m2, err := Evaluate(g, perm, nil)
	require.NoError(t, err)
	require.Equal(t, m1, m2)
}

func TestEvaluateChainMakespan(t *testing.T) {
	// src(0) -> A(1, dur=5, demand=1) -> sink(2); capacity 1.
	g, err := project.New(project.BuildInput{
		Durations:  []int{0, 5, 0},
		Demands:    [][]int{{0}, {1}, {0}},
		Successors: [][]int{{1}, {2}, {}},
		Capacities: []int{1},
	})
	require.NoError(t, err)

	m, err := Evaluate(g, g.InitialOrder(), nil)
	require.NoError(t, err)
	require.Equal(t, 5, m)
}

func TestEvaluateParallelCapacityConstrained(t *testing.T) {
	// src -> {A(dur=3), B(dur=3)} -> sink, both demanding the full capacity
	// of 1, so A and B must run one after the other.
	g, err := project.New(project.BuildInput{
		Durations:  []int{0, 3, 3, 0},
		Demands:    [][]int{{0}, {1}, {1}, {0}},
		Successors: [][]int{{1, 2}, {3}, {3}, {}},
		Capacities: []int{1},
	})
	require.NoError(t, err)

	m, err := Evaluate(g, g.InitialOrder(), nil)
	require.NoError(t, err)
	require.Equal(t, 6, m)
}

func TestEvaluateParallelWithSlack(t *testing.T) {
	// Same activities as the capacity-constrained case, but capacity 2 lets
	// A and B run concurrently.
	g, err := project.New(project.BuildInput{
		Durations:  []int{0, 3, 3, 0},
		Demands:    [][]int{{0}, {1}, {1}, {0}},
		Successors: [][]int{{1, 2}, {3}, {3}, {}},
		Capacities: []int{2},
	})
	require.NoError(t, err)

	m, err := Evaluate(g, g.InitialOrder(), nil)
	require.NoError(t, err)
	require.Equal(t, 3, m)
}

func TestEvaluateDiamondMakespan(t *testing.T) {
	// src -> {A(dur=2), B(dur=2)} -> C(dur=3, demand=2) -> sink; capacity 2.
	g, err := project.New(project.BuildInput{
		Durations:  []int{0, 2, 2, 3, 0},
		Demands:    [][]int{{0}, {1}, {1}, {2}, {0}},
		Successors: [][]int{{1, 2}, {3}, {3}, {4}, {}},
		Capacities: []int{2},
	})
	require.NoError(t, err)

	m, err := Evaluate(g, g.InitialOrder(), nil)
	require.NoError(t, err)
	require.Equal(t, 5, m)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
