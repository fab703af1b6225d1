package project

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// diamond builds: 0 -> {1,2} -> 3, a 4-activity diamond with a single
// renewable resource, activity 0 as source and activity 3 as sink.
func diamond(t *testing.T) BuildInput {
	t.Helper()

	return BuildInput{
		Durations:  []int{0, 3, 2, 0},
		Demands:    [][]int{{0}, {2}, {1}, {0}},
		Successors: [][]int{{1, 2}, {3}, {3}, {}},
		Capacities: []int{2},
	}
}

func TestNewBuildsValidGraph(t *testing.T) {
	g, err := New(diamond(t))
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 1, g.K())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(2, 3))
	require.False(t, g.HasEdge(0, 3))
	require.Equal(t, []int{1, 2}, g.Predecessors(3))
}

func TestNewRejectsTooFewActivities(t *testing.T) {
	_, err := New(BuildInput{Durations: []int{0}, Demands: [][]int{{}}, Successors: [][]int{{}}, Capacities: []int{}})
	require.ErrorIs(t, err, ErrEmptyGraph)
}

func TestNewRejectsCycle(t *testing.T) {
	input := BuildInput{
		Durations:  []int{0, 1, 1, 0},
		Demands:    [][]int{{0}, {0}, {0}, {0}},
		Successors: [][]int{{1}, {2}, {1}, {}}, // 1 -> 2 -> 1 cycle
		Capacities: []int{1},
	}
	_, err := New(input)
	var cycleErr *ErrCycle
	require.ErrorAs(t, err, &cycleErr)
}

func TestNewRejectsCapacityExceeded(t *testing.T) {
	input := diamond(t)
	input.Capacities = []int{1} // activity 1 demands 2 > capacity 1
	_, err := New(input)
	var capErr *ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 1, capErr.ActivityID)
}

func TestNewRejectsSuccessorOutOfRange(t *testing.T) {
	input := diamond(t)
	input.Successors[0] = []int{99}
	_, err := New(input)
	require.ErrorIs(t, err, ErrSuccessorOutOfRange)
}

func TestInitialOrderIsTopologicallyValid(t *testing.T) {
	g, err := New(diamond(t))
	require.NoError(t, err)

	order := g.InitialOrder()
	require.True(t, g.ValidateOrder(order))
	require.Equal(t, 0, order[0])
	require.Equal(t, 3, order[3])
}

func TestDiversifiedOrderStaysValid(t *testing.T) {
	g, err := New(diamond(t))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		order := g.DiversifiedOrder(rng)
		require.True(t, g.ValidateOrder(order), "diversified order must remain topologically valid")
	}
}

func TestValidateOrderRejectsViolations(t *testing.T) {
	g, err := New(diamond(t))
	require.NoError(t, err)

	require.False(t, g.ValidateOrder([]int{3, 0, 1, 2}))
	require.False(t, g.ValidateOrder([]int{0, 1, 2}))
	require.False(t, g.ValidateOrder([]int{0, 1, 1, 3}))
}

func TestCriticalPathLowerBound(t *testing.T) {
	g, err := New(diamond(t))
	require.NoError(t, err)
	// Longest chain: 0 -> 1 -> 3, durations 0+3+0=3, vs 0 -> 2 -> 3 = 0+2+0=2.
	require.Equal(t, 3, g.CriticalPathLowerBound())
}

func TestDurationUpperBound(t *testing.T) {
	g, err := New(diamond(t))
	require.NoError(t, err)
	require.Equal(t, 5, g.DurationUpperBound())
}
