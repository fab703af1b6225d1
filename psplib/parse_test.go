package psplib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sample is a minimal four-activity instance (source -> {2,3} -> sink) in
// the standard PSPLIB ".sm" layout: every REQUESTS/DURATIONS and
// RESOURCEAVAILABILITIES row always carries all four resource columns,
// regardless of how many of them RESOURCES reports as renewable.
const sample = `************************************************************************
file with basedata            : c15.bas
initial value random generator: 24342
************************************************************************
projects                      :  1
jobs (incl. supersource/sink ):  4
horizon                       :  10
RESOURCES
  - renewable                 :  1   R
  - nonrenewable               :  0   N
  - doubly constrained        :  0   D
************************************************************************
PROJECT INFORMATION:
pronr.  #jobs rel.date duedate tardcost  MPM-Time
    1        4      0       10    0       10
************************************************************************
PRECEDENCE RELATIONS:
jobnr.    #modes  #successors   successors
   1        1          2           2   3
   2        1          1           4
   3        1          1           4
   4        1          0
************************************************************************
REQUESTS/DURATIONS:
jobnr. mode duration  R 1  R 2  R 3  R 4
------------------------------------------------------------------------
  1      1     0       0    0    0    0
  2      1     3       2    0    0    0
  3      1     2       1    0    0    0
  4      1     0       0    0    0    0
************************************************************************
RESOURCEAVAILABILITIES:
  R 1  R 2  R 3  R 4
   2    0    0    0
************************************************************************
`

func TestParseReadsAllSections(t *testing.T) {
	p, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.Equal(t, "c15.bas", p.FileWithBasedata)
	require.Equal(t, 24342, p.InitialRNG)
	require.Equal(t, 1, p.Projects)
	require.Equal(t, 4, p.Jobs)
	require.Equal(t, 10, p.Horizon)
	require.Equal(t, ResourceCounts{Renewable: 1, Nonrenewable: 0, DoublyConstrained: 0}, p.Resources)

	require.Len(t, p.ProjectInfo, 1)
	require.Equal(t, 4, p.ProjectInfo[0].Jobs)

	require.Len(t, p.PrecedenceRelations, 4)
	require.Equal(t, []int{2, 3}, p.PrecedenceRelations[0].Successors)
	require.Equal(t, []int{4}, p.PrecedenceRelations[1].Successors)
	require.Empty(t, p.PrecedenceRelations[3].Successors)

	require.Len(t, p.RequestDurations, 4)
	require.Equal(t, 3, p.RequestDurations[1].Duration)
	require.Equal(t, 2, p.RequestDurations[1].R1)

	require.Equal(t, ResourceAvailability{R1: 2, R2: 0, R3: 0, R4: 0}, p.ResourceAvailabilities)
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	_, err := Parse(strings.NewReader("file with basedata            : c15.bas\n"))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseRejectsMissingSectionHeader(t *testing.T) {
	broken := strings.Replace(sample, "PRECEDENCE RELATIONS:", "PRECEDENCE WRONG:", 1)
	_, err := Parse(strings.NewReader(broken))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestToBuildInputConvertsOneIndexedToZeroIndexed(t *testing.T) {
	p, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	bi, err := p.ToBuildInput()
	require.NoError(t, err)

	require.Equal(t, []int{0, 3, 2, 0}, bi.Durations)
	require.Equal(t, [][]int{{0}, {2}, {1}, {0}}, bi.Demands)
	require.Equal(t, [][]int{{1, 2}, {3}, {3}, {}}, bi.Successors)
	require.Equal(t, []int{2}, bi.Capacities)
}

func TestToBuildInputUsesOnlyFirstModePerJob(t *testing.T) {
	withSecondMode := strings.Replace(sample,
		"  2      1     3       2    0    0    0\n",
		"  2      1     3       2    0    0    0\n  2      2     5       1    0    0    0\n",
		1)
	p, err := Parse(strings.NewReader(withSecondMode))
	require.NoError(t, err)

	bi, err := p.ToBuildInput()
	require.NoError(t, err)
	require.Equal(t, 3, bi.Durations[1], "second mode row for job 2 must be ignored")
}

func TestToBuildInputRejectsTooFewJobs(t *testing.T) {
	p := Problem{Jobs: 1}
	_, err := p.ToBuildInput()
	require.ErrorIs(t, err, ErrMalformed)
}
