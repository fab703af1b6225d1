package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/rcpsp-go/rcpsp/dot"
	"github.com/rcpsp-go/rcpsp/project"
	"github.com/rcpsp-go/rcpsp/psplib"
)

// GraphCommand renders a PSPLIB instance's precedence graph as Graphviz
// DOT source.
type GraphCommand struct {
	Logger hclog.Logger
}

var _ cli.Command = (*GraphCommand)(nil)

func (c *GraphCommand) Help() string {
	return strings.TrimSpace(`
Usage: rcpspctl graph <psp-problem-file> <output-file>

  Parses a PSPLIB instance file and writes its precedence graph as
  Graphviz DOT source to output-file.
`)
}

func (c *GraphCommand) Synopsis() string {
	return "Render a PSPLIB instance's precedence graph as Graphviz DOT"
}

func (c *GraphCommand) Run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, c.Help())

		return 1
	}
	inputPath, outputPath := args[0], args[1]

	c.Logger.Debug("creating graph", "input", inputPath, "output", outputPath)

	f, err := os.Open(inputPath)
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

	out, err := os.Create(outputPath)
	if err != nil {
		return fail(err)
	}
	defer out.Close()

	name := strings.ReplaceAll(problem.FileWithBasedata, ".", "_")
	if err := dot.Write(out, g, name); err != nil {
		return fail(fmt.Errorf("write dot file: %w", err))
	}

	color.Green("wrote graphviz dot file to: %s", outputPath)

	return 0
}

func fail(err error) int {
	color.Red("an error occurred: %v", err)

	return 1
}
