package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/google/subcommands"
)

type rmPlanCmd struct {
	name string
}

func (*rmPlanCmd) Name() string     { return "rm-plan" }
func (*rmPlanCmd) Synopsis() string { return "delete a saved plan" }
func (*rmPlanCmd) Usage() string {
	return `wpl rm-plan -name <name>

  Deletes a saved plan from the plans folder. The current plan is unaffected.
`
}

func (c *rmPlanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the saved plan to delete.")
}

func (c *rmPlanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	info, err := wealthplan.FindPlan(*plansDir, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := wealthplan.DeletePlan(info.Path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted plan %q\n", c.name)
	return subcommands.ExitSuccess
}
