package search

import "github.com/rcpsp-go/rcpsp/project"

// Schedule runs tabu search over g and returns the best permutation found
// and its makespan. Options is validated before any work starts;
// WalkerCount selects the single-walker loop (== 1) or the multi-walker
// loop (>= 2).
//
// Schedule never fails functionally once Options is valid: it always
// returns the best permutation found, even if it equals the initial one.
func Schedule(g *project.Graph, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	if opts.WalkerCount == 1 {
		return runSingleWalker(g, opts, rng)
	}

	return runMultiWalker(g, opts, rng)
}
