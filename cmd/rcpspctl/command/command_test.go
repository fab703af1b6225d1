package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

const sampleInstance = `************************************************************************
file with basedata            : sample.bas
initial value random generator: 1
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

func writeSampleInstance(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.sm")
	require.NoError(t, os.WriteFile(path, []byte(sampleInstance), 0o644))

	return path
}

func TestGraphCommandWritesDotFile(t *testing.T) {
	input := writeSampleInstance(t)
	output := filepath.Join(t.TempDir(), "out.dot")

	cmd := &GraphCommand{Logger: hclog.NewNullLogger()}
	code := cmd.Run([]string{input, output})
	require.Equal(t, 0, code)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(contents), "digraph")
}

func TestGraphCommandRejectsWrongArgCount(t *testing.T) {
	cmd := &GraphCommand{Logger: hclog.NewNullLogger()}
	require.Equal(t, 1, cmd.Run([]string{"only-one-arg"}))
}

func TestScheduleCommandSchedulesInstance(t *testing.T) {
	input := writeSampleInstance(t)

	cmd := &ScheduleCommand{Logger: hclog.NewNullLogger()}
	code := cmd.Run([]string{"-iterations=50", input})
	require.Equal(t, 0, code)
}

func TestBenchmarkCommandWritesCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sm"), []byte(sampleInstance), 0o644))

	output := filepath.Join(t.TempDir(), "results.csv")
	cmd := &BenchmarkCommand{Logger: hclog.NewNullLogger()}
	code := cmd.Run([]string{"-iterations=50", "-output=" + output, dir})
	require.Equal(t, 0, code)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(contents), "file,makespan,elapsed_ms,error")
}
