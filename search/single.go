package search

import (
	"math/rand"

	"github.com/rcpsp-go/rcpsp/project"
)

// runSingleWalker runs one walker over the full iteration budget as a
// single uninterrupted loop, its own best makespan serving as the
// aspiration baseline throughout.
func runSingleWalker(g *project.Graph, opts Options, rng *rand.Rand) (Result, error) {
	st, err := newWalkerState(g, opts, g.InitialOrder(), rng)
	if err != nil {
		return Result{}, err
	}

	runLoop(g, opts, st, opts.MaxIterations, opts.MaxIterSinceBest, opts.IterSinceBestReset, st.bestM)

	return Result{Order: st.bestPerm, Makespan: st.bestM}, nil
}
