package psplib

import (
	"fmt"
	"sort"

	"github.com/rcpsp-go/rcpsp/project"
)

// ToBuildInput converts a parsed Problem into project.BuildInput.
//
// PSPLIB job numbers are 1-indexed; the resulting activities are
// 0-indexed in the same relative order, so job N maps to activity N-1.
// Per the single-mode non-goal, only the first-encountered
// RequestDuration row for a job is used even if the file names further
// modes. Only the first Resources.Renewable resource columns (R1, R2, ...
// in that order) become scheduling resources: nonrenewable and doubly
// constrained columns are parsed and retained on Problem for
// round-tripping but play no part in schedule feasibility, consistent
// with the renewable-only resource model this package's consumers use.
func (p Problem) ToBuildInput() (project.BuildInput, error) {
	n := p.Jobs
	if n < 2 {
		return project.BuildInput{}, fmt.Errorf("%w: jobs must be >= 2, got %d", ErrMalformed, n)
	}

	durations := make([]int, n)
	demands := make([][]int, n)
	seenJob := make([]bool, n)

	k := p.Resources.Renewable
	for _, rd := range p.RequestDurations {
		a := rd.JobNumber - 1
		if a < 0 || a >= n {
			return project.BuildInput{}, fmt.Errorf("%w: job number %d out of range", ErrMalformed, rd.JobNumber)
		}
		if seenJob[a] {
			continue
		}
		seenJob[a] = true

		durations[a] = rd.Duration
		all := [4]int{rd.R1, rd.R2, rd.R3, rd.R4}
		demands[a] = append([]int(nil), all[:k]...)
	}
	for a := 0; a < n; a++ {
		if !seenJob[a] {
			return project.BuildInput{}, fmt.Errorf("%w: job %d has no REQUESTS/DURATIONS row", ErrMalformed, a+1)
		}
	}

	successors := make([][]int, n)
	for _, pr := range p.PrecedenceRelations {
		u := pr.JobNumber - 1
		if u < 0 || u >= n {
			return project.BuildInput{}, fmt.Errorf("%w: job number %d out of range", ErrMalformed, pr.JobNumber)
		}
		succ := make([]int, 0, len(pr.Successors))
		for _, s := range pr.Successors {
			v := s - 1
			if v < 0 || v >= n {
				return project.BuildInput{}, fmt.Errorf("%w: successor job number %d out of range", ErrMalformed, s)
			}
			succ = append(succ, v)
		}
		sort.Ints(succ)
		successors[u] = succ
	}

	availability := [4]int{
		p.ResourceAvailabilities.R1, p.ResourceAvailabilities.R2,
		p.ResourceAvailabilities.R3, p.ResourceAvailabilities.R4,
	}
	capacities := append([]int(nil), availability[:k]...)

	return project.BuildInput{
		Durations:  durations,
		Demands:    demands,
		Successors: successors,
		Capacities: capacities,
	}, nil
}
