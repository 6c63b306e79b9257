package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/google/subcommands"
)

type saveCmd struct {
	name  string
	force bool
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save the current plan under a name" }
func (*saveCmd) Usage() string {
	return `wpl save -name <name> [-f]

  Saves a copy of the current plan into the plans folder, so it can be
  restored later with 'wpl load'. Refuses to overwrite an existing plan
  unless -f is given.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name to save the plan under.")
	f.BoolVar(&c.force, "f", false, "Overwrite an existing plan with the same name.")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	path, err := wealthplan.SavePlan(*plansDir, c.name, p, c.force)
	if errors.Is(err, wealthplan.ErrPlanExists) {
		fmt.Fprintf(os.Stderr, "Error: plan %q already exists, use -f to overwrite it.\n", c.name)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved plan %q to %s\n", c.name, path)
	return subcommands.ExitSuccess
}
