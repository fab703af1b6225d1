package search

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rcpsp-go/rcpsp/neighborhood"
	"github.com/rcpsp-go/rcpsp/project"
	"github.com/rcpsp-go/rcpsp/schedule"
)

type scoredMove struct {
	move  neighborhood.Move
	value int
}

// evaluateMoves scores each move's makespan under the virtual swap it
// represents. When parallel is true, evaluation runs on a worker pool
// bounded by GOMAXPROCS via errgroup, but results are written into a
// preallocated slice indexed by enumeration position, so the returned
// order always matches moves' order regardless of goroutine completion
// order.
func evaluateMoves(g *project.Graph, perm []int, moves []neighborhood.Move, parallel bool) []scoredMove {
	scored := make([]scoredMove, len(moves))

	evalOne := func(i int) {
		m := moves[i]
		v, err := schedule.Evaluate(g, perm, &schedule.Swap{I: m.I, J: m.J})
		if err != nil {
			// The neighbourhood generator only ever proposes feasible swaps;
			// a non-topological swap reaching here is a bug in that generator.
			panic(err)
		}
		scored[i] = scoredMove{move: m, value: v}
	}

	if !parallel || len(moves) < 2 {
		for i := range moves {
			evalOne(i)
		}

		return scored
	}

	var eg errgroup.Group
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i := range moves {
		sem <- struct{}{}
		eg.Go(func() error {
			defer func() { <-sem }()
			evalOne(i)

			return nil
		})
	}
	_ = eg.Wait() // evalOne panics rather than returning an error

	return scored
}

// selectBest picks the retained move with the smallest value, ties broken
// by enumeration order (the first occurrence wins). A move is retained iff
// it is not tabu, or its value beats globalBest: the aspiration criterion
// that lets a tabu move through when it would set a new overall best.
func selectBest(scored []scoredMove, tabu tabuContains, globalBest int) (neighborhood.Move, int, bool) {
	found := false
	var bestMove neighborhood.Move
	bestVal := 0

	for _, sm := range scored {
		admissible := sm.value < globalBest || !tabu.Contains(sm.move.I, sm.move.J)
		if !admissible {
			continue
		}
		if !found || sm.value < bestVal {
			found = true
			bestMove = sm.move
			bestVal = sm.value
		}
	}

	return bestMove, bestVal, found
}

// tabuContains is the subset of *tabulist.List that selectBest needs,
// named so tests can substitute a stub.
type tabuContains interface {
	Contains(i, j int) bool
}

// applyMove swaps the positions of mv.I and mv.J within perm in place.
func applyMove(perm []int, mv neighborhood.Move) {
	pi, pj := -1, -1
	for idx, a := range perm {
		if a == mv.I {
			pi = idx
		}
		if a == mv.J {
			pj = idx
		}
	}
	perm[pi], perm[pj] = perm[pj], perm[pi]
}
