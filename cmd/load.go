package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/etnz/wealthplan/renderer"
	"github.com/google/subcommands"
)

type loadCmd struct {
	name string
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "replace the current plan with a saved one" }
func (*loadCmd) Usage() string {
	return `wpl load -name <name>

  Replaces the current plan with a previously saved one. The current plan is
  overwritten, save it first if it matters.
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the saved plan to load.")
}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	info, err := wealthplan.FindPlan(*plansDir, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, err := wealthplan.LoadPlan(info.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	fmt.Printf("Loaded plan %q\n", c.name)
	printMarkdown(renderer.Overview(p))
	return subcommands.ExitSuccess
}
