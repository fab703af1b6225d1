package search

import (
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rcpsp-go/rcpsp/neighborhood"
	"github.com/rcpsp-go/rcpsp/project"
	"github.com/rcpsp-go/rcpsp/schedule"
)

// Phase-budget derivation: the iteration cap splits into one initial phase
// worth twice an improvement phase, followed by
// improvementPartition-initialIterationMultiplier more improvement
// phases, each preceded by worse-half diversification.
const (
	improvementPartition       = 10
	initialIterationMultiplier = 2
	diversificationIterations  = 20
)

// runMultiWalker advances walkerCount independent permutations through
// phases of a fixed iteration budget, synchronized at barriers where the
// worse half is replaced by a diversified copy of a distinct better
// walker.
func runMultiWalker(g *project.Graph, opts Options, rng *rand.Rand) (Result, error) {
	walkerCount := opts.WalkerCount

	improvementIterations := opts.MaxIterations / (walkerCount * improvementPartition)
	if improvementIterations < 1 {
		improvementIterations = 1
	}
	initialIterations := improvementIterations * initialIterationMultiplier
	improvements := improvementPartition - initialIterationMultiplier
	maxIterSinceBest := initialIterations

	states := make([]*walkerState, walkerCount)
	var err error
	states[0], err = newWalkerState(g, opts, g.InitialOrder(), deriveRNG(rng, 0))
	if err != nil {
		return Result{}, err
	}
	for w := 1; w < walkerCount; w++ {
		walkerRNG := deriveRNG(rng, uint64(w))
		states[w], err = newWalkerState(g, opts, g.DiversifiedOrder(walkerRNG), walkerRNG)
		if err != nil {
			return Result{}, err
		}
	}

	globalBest := states[0].bestM
	for _, st := range states {
		if st.bestM < globalBest {
			globalBest = st.bestM
		}
	}

	logger := opts.logger()
	logger.Debug("multi-walker phase plan", "walkers", walkerCount, "initial_iterations", initialIterations,
		"improvement_iterations", improvementIterations, "improvement_phases", improvements, "max_iter_since_best", maxIterSinceBest)

	runPhase := func(iterations int) error {
		newBests := make([]int, walkerCount)
		var eg errgroup.Group
		for w := range states {
			eg.Go(func() error {
				newBests[w] = runLoop(g, opts, states[w], iterations, maxIterSinceBest, opts.IterSinceBestReset, globalBest)

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		for _, st := range states {
			if st.bestM < globalBest {
				globalBest = st.bestM
			}
		}
		for _, nb := range newBests {
			if nb < globalBest {
				globalBest = nb
			}
		}

		return nil
	}

	if err := runPhase(initialIterations); err != nil {
		return Result{}, err
	}
	logger.Debug("initial phase done", "global_best", globalBest)

	criticalPath := g.CriticalPathLowerBound()
	for p := 0; p < improvements; p++ {
		if globalBest == criticalPath {
			logger.Debug("critical path lower bound reached, stopping", "global_best", globalBest)

			break
		}

		diversifyWorseHalf(g, opts, states, deriveRNG(rng, uint64(1000+p)))

		if err := runPhase(improvementIterations); err != nil {
			return Result{}, err
		}
		logger.Debug("improvement phase done", "phase", p, "global_best", globalBest)
	}

	bestIdx := 0
	for i, st := range states {
		if st.bestM < states[bestIdx].bestM {
			bestIdx = i
		}
	}

	return Result{Order: states[bestIdx].bestPerm, Makespan: states[bestIdx].bestM}, nil
}

// diversifyWorseHalf ranks walkers by current best makespan and replaces
// each of the worse half with a diversified copy of a distinct better
// walker: diversificationIterations random feasible moves applied to the
// source's best permutation, keeping the source's tabu snapshot but pruned
// to shed some of that inherited memory before the new walker resumes. The
// top half is left untouched.
func diversifyWorseHalf(g *project.Graph, opts Options, states []*walkerState, rng *rand.Rand) {
	walkerCount := len(states)
	indices := make([]int, walkerCount)
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool { return states[indices[i]].bestM < states[indices[j]].bestM })

	for i := 0; i < walkerCount/2; i++ {
		from := indices[i]
		to := indices[walkerCount-1-i]

		diversified := diversifySchedule(g, states[from].bestPerm, opts.SwapRange, diversificationIterations, rng)
		m, err := schedule.Evaluate(g, diversified, nil)
		if err != nil {
			panic(err)
		}

		states[to].perm = diversified
		states[to].bestPerm = append([]int(nil), diversified...)
		states[to].bestM = m
		states[to].tabu.Restore(states[from].tabu.Snapshot())
		states[to].tabu.Prune()
		states[to].bestTabuSnap = states[to].tabu.Snapshot()
		states[to].iterSinceBest = 0
		states[to].resetCounter = 0
	}
}

// diversifySchedule applies iterations random feasible moves, chosen
// uniformly from the neighbourhood generator's output at each step, to a
// copy of perm.
func diversifySchedule(g *project.Graph, perm []int, swapRange, iterations int, rng *rand.Rand) []int {
	out := append([]int(nil), perm...)

	for i := 0; i < iterations; i++ {
		moves := neighborhood.Moves(g, out, swapRange)
		if len(moves) == 0 {
			break
		}
		applyMove(out, moves[rng.Intn(len(moves))])
	}

	return out
}
