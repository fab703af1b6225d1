// Package search is the tabu search driver: single- and multi-walker loops
// that repeatedly generate candidate moves, evaluate them, filter by tabu
// admissibility with aspiration, and step to the best admissible move,
// tracking the global best schedule.
package search

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// ErrWalkerCount is returned by Schedule when Options.WalkerCount < 1.
var ErrWalkerCount = errors.New("search: walker count must be >= 1")

// ErrSwapRange is returned by Schedule when Options.SwapRange < 2.
var ErrSwapRange = errors.New("search: swap range must be >= 2")

// ErrTabuListSize is returned by Schedule when Options.TabuListSize < 1.
var ErrTabuListSize = errors.New("search: tabu list size must be >= 1")

// Options configures a Schedule run. All fields are required in the sense
// that a zero Options fails validation (construct via DefaultOptions and
// override selectively).
type Options struct {
	// MaxIterations is the hard cap on main-loop iterations (per walker, in
	// the multi-walker case the cap that phase budgets are derived from).
	MaxIterations int
	// MaxIterSinceBest stops the single-walker search once this many
	// consecutive iterations fail to improve the best makespan. The
	// multi-walker loop does not read it: there each walker's cap is the
	// initial phase's iteration count, with its counter carried across phases.
	MaxIterSinceBest int
	// IterSinceBestReset, if > 0, restores the permutation and tabu memory
	// to the best-known snapshot after this many consecutive non-improving
	// iterations. 0 disables the reset.
	IterSinceBestReset int
	// TabuListSize is the tabu list's fixed capacity L.
	TabuListSize int
	// SwapRange is the neighbourhood generator's maximum positional
	// distance between swap partners, w.
	SwapRange int
	// Parallel enables move-parallel evaluation of each phase's candidate
	// moves via a bounded worker pool.
	Parallel bool
	// WalkerCount is the number of independent permutations searched
	// concurrently. 1 selects the single-walker loop; >=2 selects the
	// multi-walker loop with periodic diversification.
	WalkerCount int
	// Seed seeds the search's deterministic RNG (tabu pruning, diversified
	// initial permutations, diversification moves). 0 uses a fixed default
	// seed.
	Seed int64
	// Logger receives the multi-walker loop's phase progress at debug level;
	// individual iterations are not logged. Nil is treated as a no-op logger.
	Logger hclog.Logger
}

func (o Options) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}

	return o.Logger
}

// DefaultOptions returns sensible defaults: a single walker, sequential
// evaluation, and a 4000-iteration cap.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      4000,
		MaxIterSinceBest:   4000,
		IterSinceBestReset: 0,
		TabuListSize:       40,
		SwapRange:          10,
		Parallel:           false,
		WalkerCount:        1,
		Seed:               0,
		Logger:             hclog.NewNullLogger(),
	}
}

func (o Options) validate() error {
	if o.WalkerCount < 1 {
		return ErrWalkerCount
	}
	if o.SwapRange < 2 {
		return ErrSwapRange
	}
	if o.TabuListSize < 1 {
		return ErrTabuListSize
	}

	return nil
}

// Result is the output of a Schedule run: the best permutation found and
// its makespan.
type Result struct {
	Order    []int
	Makespan int
}
