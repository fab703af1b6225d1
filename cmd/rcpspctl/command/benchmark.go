package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/rcpsp-go/rcpsp/bench"
	"github.com/rcpsp-go/rcpsp/search"
)

// BenchmarkCommand schedules every instance file in a directory and
// reports a CSV of per-instance results plus a summary line.
type BenchmarkCommand struct {
	Logger hclog.Logger
}

var _ cli.Command = (*BenchmarkCommand)(nil)

func (c *BenchmarkCommand) Help() string {
	return strings.TrimSpace(`
Usage: rcpspctl benchmark [options] <psp-problem-file-folder>

  Schedules every instance file in the given folder and writes a CSV
  of results to -output, followed by a mean/stddev summary line.

Options:
  -output=<path>        CSV output path (default results.csv)
  -config=<path>        YAML file overriding search options
  -iterations=<n>       Maximum search iterations (default 4000)
  -walkers=<n>          Number of parallel walkers (default 1)
  -parallel             Evaluate candidate moves concurrently
`)
}

func (c *BenchmarkCommand) Synopsis() string {
	return "Schedule every PSPLIB instance in a folder and summarize results"
}

// benchmarkConfig is the optional -config YAML shape: a subset of
// search.Options a user may want to pin across a whole benchmark run
// instead of repeating flags.
type benchmarkConfig struct {
	Iterations       int  `yaml:"iterations"`
	MaxIterSinceBest int  `yaml:"max_iter_since_best"`
	TabuListSize     int  `yaml:"tabu_list_size"`
	SwapRange        int  `yaml:"swap_range"`
	Walkers          int  `yaml:"walkers"`
	Parallel         bool `yaml:"parallel"`
}

func (c *BenchmarkCommand) Run(args []string) int {
	opts := search.DefaultOptions()
	opts.Logger = c.Logger

	flags := newFlagSet("benchmark")
	output := flags.String("output", "results.csv", "csv output path")
	configPath := flags.String("config", "", "yaml file overriding search options")
	flags.IntVar(&opts.MaxIterations, "iterations", opts.MaxIterations, "maximum search iterations")
	flags.IntVar(&opts.WalkerCount, "walkers", opts.WalkerCount, "number of parallel walkers")
	flags.BoolVar(&opts.Parallel, "parallel", opts.Parallel, "evaluate candidate moves concurrently")
	if err := flags.Parse(args); err != nil {
		return fail(err)
	}

	if *configPath != "" {
		if err := applyConfigFile(*configPath, &opts); err != nil {
			return fail(err)
		}
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, c.Help())

		return 1
	}

	results, err := bench.Run(flags.Arg(0), opts)
	if err != nil {
		return fail(err)
	}

	out, err := os.Create(*output)
	if err != nil {
		return fail(err)
	}
	defer out.Close()

	if err := bench.WriteCSV(out, results); err != nil {
		return fail(fmt.Errorf("write csv: %w", err))
	}

	summary := bench.Summarize(results)
	color.Green("scheduled %d instances: mean makespan %.2f (stddev %.2f), mean elapsed %.2fms (stddev %.2f)",
		summary.Count, summary.MeanMakespan, summary.StdDevMakespan, summary.MeanElapsedMS, summary.StdDevElapsedMS)

	return 0
}

func applyConfigFile(path string, opts *search.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg benchmarkConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if cfg.Iterations > 0 {
		opts.MaxIterations = cfg.Iterations
	}
	if cfg.MaxIterSinceBest > 0 {
		opts.MaxIterSinceBest = cfg.MaxIterSinceBest
	}
	if cfg.TabuListSize > 0 {
		opts.TabuListSize = cfg.TabuListSize
	}
	if cfg.SwapRange > 0 {
		opts.SwapRange = cfg.SwapRange
	}
	if cfg.Walkers > 0 {
		opts.WalkerCount = cfg.Walkers
	}
	opts.Parallel = opts.Parallel || cfg.Parallel

	return nil
}
