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

type plansCmd struct{}

func (*plansCmd) Name() string     { return "plans" }
func (*plansCmd) Synopsis() string { return "list the saved plans" }
func (*plansCmd) Usage() string {
	return `wpl plans

  Lists the saved plans, most recently saved first.
`
}

func (c *plansCmd) SetFlags(f *flag.FlagSet) {}

func (c *plansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plans, err := wealthplan.ListPlans(*plansDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Plans(plans))
	return subcommands.ExitSuccess
}
