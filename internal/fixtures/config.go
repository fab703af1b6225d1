// Package fixtures builds small, deterministic project.BuildInput values
// (chain, diamond, parallel-pair, fan-out) for use by this module's own
// package tests. Nothing outside this repository's _test.go files should
// import it: random synthetic problem generation as a public feature is
// explicitly out of scope, so these constructors stay internal.
package fixtures

// Option customizes a fixture's resource profile before it is built. Each
// fixture has a single renewable resource by default; Option lets a test
// tighten or loosen it, or change per-activity durations/demands.
type Option func(*config)

type config struct {
	capacity int
	duration int
	demand   int
}

func defaultConfig() config {
	return config{capacity: 2, duration: 1, demand: 1}
}

// WithCapacity overrides the single resource's capacity (default 2).
func WithCapacity(c int) Option {
	return func(cfg *config) { cfg.capacity = c }
}

// WithDuration overrides every non-milestone activity's duration (default 1).
func WithDuration(d int) Option {
	return func(cfg *config) { cfg.duration = d }
}

// WithDemand overrides every non-milestone activity's resource demand
// (default 1).
func WithDemand(d int) Option {
	return func(cfg *config) { cfg.demand = d }
}

func resolve(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
