// Package bench runs the tabu search driver over a directory of PSPLIB
// instance files and summarizes makespan/runtime results: read every file
// in a folder, schedule each, and report elapsed wall time alongside the
// makespan found.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/rcpsp-go/rcpsp/project"
	"github.com/rcpsp-go/rcpsp/psplib"
	"github.com/rcpsp-go/rcpsp/search"
)

// Result is one instance's outcome: the file it came from, the makespan
// found, and how long the search took.
type Result struct {
	File     string
	Makespan int
	Elapsed  time.Duration
	Err      error
}

// Run schedules every regular file in dir using opts, returning one Result
// per file in directory order. A per-file parse or schedule failure is
// recorded on that Result's Err rather than aborting the run, so one bad
// instance file doesn't blank out results for the rest of the folder.
func Run(dir string, opts search.Options) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("bench: read dir: %w", err)
	}

	var results []Result
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		results = append(results, runOne(path, opts))
	}

	return results, nil
}

func runOne(path string, opts search.Options) Result {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return Result{File: path, Err: fmt.Errorf("bench: open: %w", err)}
	}
	defer f.Close()

	problem, err := psplib.Parse(f)
	if err != nil {
		return Result{File: path, Err: fmt.Errorf("bench: parse: %w", err)}
	}

	buildInput, err := problem.ToBuildInput()
	if err != nil {
		return Result{File: path, Err: fmt.Errorf("bench: convert: %w", err)}
	}

	g, err := project.New(buildInput)
	if err != nil {
		return Result{File: path, Err: fmt.Errorf("bench: build graph: %w", err)}
	}

	res, err := search.Schedule(g, opts)
	if err != nil {
		return Result{File: path, Err: fmt.Errorf("bench: schedule: %w", err)}
	}

	return Result{File: path, Makespan: res.Makespan, Elapsed: time.Since(start)}
}

// WriteCSV writes a "file,makespan,elapsed_ms,error" header and then one
// row per result; the error column is empty for results that succeeded.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"file", "makespan", "elapsed_ms", "error"}); err != nil {
		return err
	}
	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		row := []string{
			r.File,
			fmt.Sprintf("%d", r.Makespan),
			fmt.Sprintf("%d", r.Elapsed.Milliseconds()),
			errText,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// Summary is the aggregate makespan/runtime statistics across a run's
// successful results.
type Summary struct {
	Count           int
	MeanMakespan    float64
	StdDevMakespan  float64
	MeanElapsedMS   float64
	StdDevElapsedMS float64
}

// Summarize computes mean and sample standard deviation of makespan and
// elapsed time across results that did not error. An empty or all-errored
// slice yields a zero-value Summary.
func Summarize(results []Result) Summary {
	var makespans, elapsedMS []float64
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		makespans = append(makespans, float64(r.Makespan))
		elapsedMS = append(elapsedMS, float64(r.Elapsed.Milliseconds()))
	}
	if len(makespans) == 0 {
		return Summary{}
	}

	meanM, stdM := stat.MeanStdDev(makespans, nil)
	meanE, stdE := stat.MeanStdDev(elapsedMS, nil)

	return Summary{
		Count:           len(makespans),
		MeanMakespan:    meanM,
		StdDevMakespan:  stdM,
		MeanElapsedMS:   meanE,
		StdDevElapsedMS: stdE,
	}
}
