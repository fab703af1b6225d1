package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcpsp-go/rcpsp/project"
)

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

func TestWriteProducesValidDotSyntax(t *testing.T) {
	g := diamond(t)

	var buf strings.Builder
	require.NoError(t, Write(&buf, g, "demo"))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `digraph "demo" {`))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	require.Contains(t, out, `N1 [label="1 (3)"]`)
	require.Contains(t, out, "N0 -> N1;")
	require.Contains(t, out, "N2 -> N3;")
}

func TestWriteGroupsActivitiesByRank(t *testing.T) {
	g := diamond(t)

	var buf strings.Builder
	require.NoError(t, Write(&buf, g, "demo"))

	out := buf.String()
	require.Contains(t, out, `label="rank 0"`)
	require.Contains(t, out, `label="rank 1"`)
	require.Contains(t, out, `label="rank 2"`)
}

func TestWriteEveryEdgeAppearsExactlyOnce(t *testing.T) {
	g := diamond(t)

	var buf strings.Builder
	require.NoError(t, Write(&buf, g, "demo"))

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "N0 -> N1;"))
	require.Equal(t, 1, strings.Count(out, "N0 -> N2;"))
	require.Equal(t, 1, strings.Count(out, "N1 -> N3;"))
	require.Equal(t, 1, strings.Count(out, "N2 -> N3;"))
}
