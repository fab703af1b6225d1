package fixtures

import "github.com/rcpsp-go/rcpsp/project"

// Chain builds a source -> a1 -> a2 -> ... -> an -> sink fixture: n body
// activities run strictly in sequence, each competing for the same single
// resource. Requires n >= 1.
func Chain(n int, opts ...Option) (project.BuildInput, error) {
	if n < 1 {
		return project.BuildInput{}, ErrTooFewActivities
	}
	cfg := resolve(opts...)

	total := n + 2
	durations := make([]int, total)
	demands := make([][]int, total)
	successors := make([][]int, total)

	for a := 1; a <= n; a++ {
		durations[a] = cfg.duration
		demands[a] = []int{cfg.demand}
		successors[a] = []int{a + 1}
	}
	demands[0] = []int{0}
	demands[total-1] = []int{0}
	successors[0] = []int{1}
	successors[total-1] = []int{}

	return project.BuildInput{
		Durations:  durations,
		Demands:    demands,
		Successors: successors,
		Capacities: []int{cfg.capacity},
	}, nil
}

// Diamond builds the canonical source -> {a1, a2} -> sink fixture: two
// parallel activities that may run concurrently only if the resolved
// capacity allows both demands at once.
func Diamond(opts ...Option) (project.BuildInput, error) {
	cfg := resolve(opts...)

	return project.BuildInput{
		Durations:  []int{0, cfg.duration, cfg.duration, 0},
		Demands:    [][]int{{0}, {cfg.demand}, {cfg.demand}, {0}},
		Successors: [][]int{{1, 2}, {3}, {3}, {}},
		Capacities: []int{cfg.capacity},
	}, nil
}

// ParallelPair builds two independent chains of length n, both rooted at a
// shared source and rejoining at a shared sink, so the two chains only
// interact through resource contention, never through precedence. Requires
// n >= 1.
func ParallelPair(n int, opts ...Option) (project.BuildInput, error) {
	if n < 1 {
		return project.BuildInput{}, ErrTooFewActivities
	}
	cfg := resolve(opts...)

	total := 2*n + 2
	sink := total - 1
	durations := make([]int, total)
	demands := make([][]int, total)
	successors := make([][]int, total)

	chain := func(first int) {
		for i := 0; i < n; i++ {
			a := first + i
			durations[a] = cfg.duration
			demands[a] = []int{cfg.demand}
			if i == n-1 {
				successors[a] = []int{sink}
			} else {
				successors[a] = []int{a + 1}
			}
		}
	}
	chain(1)
	chain(1 + n)

	demands[0] = []int{0}
	demands[sink] = []int{0}
	successors[0] = []int{1, 1 + n}
	successors[sink] = []int{}

	return project.BuildInput{
		Durations:  durations,
		Demands:    demands,
		Successors: successors,
		Capacities: []int{cfg.capacity},
	}, nil
}

// FanOut builds a source -> {a1, ..., aw} -> sink fixture: width mutually
// independent activities, all contending for the same resource. Requires
// width >= 1.
func FanOut(width int, opts ...Option) (project.BuildInput, error) {
	if width < 1 {
		return project.BuildInput{}, ErrTooFewActivities
	}
	cfg := resolve(opts...)

	total := width + 2
	sink := total - 1
	durations := make([]int, total)
	demands := make([][]int, total)
	successors := make([][]int, total)

	sourceSuccessors := make([]int, width)
	for a := 1; a <= width; a++ {
		durations[a] = cfg.duration
		demands[a] = []int{cfg.demand}
		successors[a] = []int{sink}
		sourceSuccessors[a-1] = a
	}
	demands[0] = []int{0}
	demands[sink] = []int{0}
	successors[0] = sourceSuccessors
	successors[sink] = []int{}

	return project.BuildInput{
		Durations:  durations,
		Demands:    demands,
		Successors: successors,
		Capacities: []int{cfg.capacity},
	}, nil
}
