package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/rcpsp-go/rcpsp/project"
	"github.com/rcpsp-go/rcpsp/psplib"
	"github.com/rcpsp-go/rcpsp/search"
)

// ScheduleCommand runs the tabu search driver over a single PSPLIB
// instance file and prints the makespan found.
type ScheduleCommand struct {
	Logger hclog.Logger
}

var _ cli.Command = (*ScheduleCommand)(nil)

func (c *ScheduleCommand) Help() string {
	return strings.TrimSpace(`
Usage: rcpspctl schedule [options] <psp-problem-file>

  Parses a PSPLIB instance file and searches for a low-makespan
  schedule, printing the makespan and activity order found.

Options:
  -iterations=<n>       Maximum search iterations (default 4000)
  -walkers=<n>          Number of parallel walkers (default 1)
  -parallel             Evaluate candidate moves concurrently
  -seed=<n>             RNG seed (default 0)
`)
}

func (c *ScheduleCommand) Synopsis() string {
	return "Search for a low-makespan schedule for a PSPLIB instance"
}

func (c *ScheduleCommand) Run(args []string) int {
	opts := search.DefaultOptions()
	opts.Logger = c.Logger

	flags := newFlagSet("schedule")
	flags.IntVar(&opts.MaxIterations, "iterations", opts.MaxIterations, "maximum search iterations")
	flags.IntVar(&opts.WalkerCount, "walkers", opts.WalkerCount, "number of parallel walkers")
	flags.BoolVar(&opts.Parallel, "parallel", opts.Parallel, "evaluate candidate moves concurrently")
	seed := flags.Int64("seed", opts.Seed, "rng seed")
	if err := flags.Parse(args); err != nil {
		return fail(err)
	}
	opts.Seed = *seed

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, c.Help())

		return 1
	}

	f, err := os.Open(flags.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	problem, err := psplib.Parse(f)
	if err != nil {
		return fail(fmt.Errorf("parse psplib file: %w", err))
	}

	buildInput, err := problem.ToBuildInput()
	if err != nil {
		return fail(fmt.Errorf("convert to build input: %w", err))
	}

	g, err := project.New(buildInput)
	if err != nil {
		return fail(fmt.Errorf("build graph: %w", err))
	}

	res, err := search.Schedule(g, opts)
	if err != nil {
		return fail(fmt.Errorf("schedule: %w", err))
	}

	color.Green("makespan: %d", res.Makespan)
	fmt.Printf("order: %v\n", res.Order)

	return 0
}
