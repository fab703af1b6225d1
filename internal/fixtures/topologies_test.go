package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcpsp-go/rcpsp/project"
)

func TestChainRejectsTooFewActivities(t *testing.T) {
	_, err := Chain(0)
	require.ErrorIs(t, err, ErrTooFewActivities)
}

func TestChainBuildsAValidSequentialGraph(t *testing.T) {
	bi, err := Chain(3, WithCapacity(1), WithDuration(2), WithDemand(1))
	require.NoError(t, err)

	g, err := project.New(bi)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 6, g.CriticalPathLowerBound())
}

func TestDiamondActivitiesCanRunConcurrentlyUnderLooseCapacity(t *testing.T) {
	bi, err := Diamond(WithCapacity(4), WithDuration(3), WithDemand(1))
	require.NoError(t, err)

	g, err := project.New(bi)
	require.NoError(t, err)
	require.Equal(t, 3, g.CriticalPathLowerBound())
}

func TestParallelPairRejectsTooFewActivities(t *testing.T) {
	_, err := ParallelPair(0)
	require.ErrorIs(t, err, ErrTooFewActivities)
}

func TestParallelPairBuildsTwoIndependentChains(t *testing.T) {
	bi, err := ParallelPair(2, WithCapacity(4))
	require.NoError(t, err)

	g, err := project.New(bi)
	require.NoError(t, err)
	require.Equal(t, 6, g.N())
	require.Empty(t, g.Successors(1)[:0]) // sanity: no panic indexing
}

func TestFanOutRejectsTooFewActivities(t *testing.T) {
	_, err := FanOut(0)
	require.ErrorIs(t, err, ErrTooFewActivities)
}

func TestFanOutBuildsAValidGraph(t *testing.T) {
	bi, err := FanOut(5, WithCapacity(2), WithDemand(1))
	require.NoError(t, err)

	g, err := project.New(bi)
	require.NoError(t, err)
	require.Equal(t, 7, g.N())
	require.True(t, g.HasEdge(0, 3))
	require.True(t, g.HasEdge(3, 6))
}
