// Command rcpspctl is the project's CLI: graph/schedule/benchmark
// subcommands over PSPLIB instance files.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	rcpspcmd "github.com/rcpsp-go/rcpsp/cmd/rcpspctl/command"
)

const appName = "rcpspctl"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  appName,
		Level: hclog.LevelFromString(os.Getenv("RCPSPCTL_LOG_LEVEL")),
	})

	c := cli.NewCLI(appName, version())
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"graph":     func() (cli.Command, error) { return &rcpspcmd.GraphCommand{Logger: logger}, nil },
		"schedule":  func() (cli.Command, error) { return &rcpspcmd.ScheduleCommand{Logger: logger}, nil },
		"benchmark": func() (cli.Command, error) { return &rcpspcmd.BenchmarkCommand{Logger: logger}, nil },
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	return exitStatus
}

func version() string {
	return "0.1.0"
}
