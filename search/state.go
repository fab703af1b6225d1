package search

import (
	"math/rand"

	"github.com/rcpsp-go/rcpsp/neighborhood"
	"github.com/rcpsp-go/rcpsp/project"
	"github.com/rcpsp-go/rcpsp/schedule"
	"github.com/rcpsp-go/rcpsp/tabulist"
)

// walkerState is one walker's mutable search state: its current
// permutation, tabu memory, and best-known snapshot. Single-walker search
// has exactly one of these; multi-walker search has Options.WalkerCount.
type walkerState struct {
	perm []int
	tabu *tabulist.List

	bestPerm     []int
	bestM        int
	bestTabuSnap tabulist.Snapshot

	iterSinceBest int
	resetCounter  int
}

func newWalkerState(g *project.Graph, opts Options, initialPerm []int, rng *rand.Rand) (*walkerState, error) {
	tabu, err := tabulist.New(g.N(), opts.TabuListSize)
	if err != nil {
		return nil, err
	}
	tabu.Reseed(rng)

	m, err := schedule.Evaluate(g, initialPerm, nil)
	if err != nil {
		return nil, err
	}

	st := &walkerState{
		perm:     append([]int(nil), initialPerm...),
		tabu:     tabu,
		bestPerm: append([]int(nil), initialPerm...),
		bestM:    m,
	}
	st.bestTabuSnap = tabu.Snapshot()

	return st, nil
}

// runLoop executes up to maxIterations steps of the tabu search inner loop
// against st, starting the aspiration baseline at globalBest (the best
// makespan known across all walkers as of the start of this call). It
// returns the lower of globalBest and the makespans of the moves this walker
// applied during the call, for the caller to fold back into its own
// cross-walker global best.
//
// Counter increments happen exactly once per iteration whether or not a
// move is applied.
func runLoop(g *project.Graph, opts Options, st *walkerState, maxIterations, maxIterSinceBest, resetEvery, globalBest int) int {
	criticalPath := g.CriticalPathLowerBound()

	for iter := 0; iter < maxIterations; iter++ {
		if st.iterSinceBest >= maxIterSinceBest {
			break
		}
		if resetEvery > 0 && st.resetCounter >= resetEvery {
			st.perm = append([]int(nil), st.bestPerm...)
			st.tabu.Restore(st.bestTabuSnap)
			st.resetCounter = 0
		}

		moves := neighborhood.Moves(g, st.perm, opts.SwapRange)
		scored := evaluateMoves(g, st.perm, moves, opts.Parallel)
		chosen, value, found := selectBest(scored, st.tabu, globalBest)
		if !found {
			st.iterSinceBest++
			st.resetCounter++

			continue
		}

		applyMove(st.perm, chosen)
		st.tabu.Insert(chosen.I, chosen.J)

		if value < globalBest {
			globalBest = value
		}

		if value < st.bestM {
			st.bestM = value
			st.bestPerm = append([]int(nil), st.perm...)
			st.bestTabuSnap = st.tabu.Snapshot()
			st.iterSinceBest = 0
			st.resetCounter = 0
		} else {
			st.iterSinceBest++
			st.resetCounter++
		}

		if st.bestM == criticalPath {
			break
		}
	}

	return globalBest
}
