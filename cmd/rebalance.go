package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan/renderer"
	"github.com/google/subcommands"
)

type rebalanceCmd struct {
	apply bool
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "suggest trades that bring the portfolio back on plan" }
func (*rebalanceCmd) Usage() string {
	return `wpl rebalance [-apply]

  Lists the buy and sell operations that would bring every asset back to its
  planned amount. With -apply, records the planned amounts as the new actual
  values, as if every suggested trade had been executed.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.apply, "apply", false, "Record planned amounts as the new actual values.")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	suggestions := p.RebalanceSuggestions()
	printMarkdown(renderer.Rebalance(suggestions))

	if !c.apply {
		return subcommands.ExitSuccess
	}

	p.ApplyRebalance()
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Applied %d suggestions, actual values now match the plan.\n", len(suggestions))
	return subcommands.ExitSuccess
}
