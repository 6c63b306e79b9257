package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wealthplan"
	"github.com/etnz/wealthplan/renderer"
	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "replace the current plan with the default one" }
func (*resetCmd) Usage() string {
	return `wpl reset

  Replaces the current plan with the built-in starter plan (Stocks, Bonds,
  Gold and Cash). The current plan is overwritten, save it first if it
  matters.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := wealthplan.DefaultPortfolio()
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	fmt.Println("Plan reset to the starter plan.")
	printMarkdown(renderer.Overview(p))
	return subcommands.ExitSuccess
}
