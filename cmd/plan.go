package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/google/subcommands"
)

type planCmd struct {
	id      int64
	percent float64
	amount  float64
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "set the planned allocation of an asset" }
func (*planCmd) Usage() string {
	return `wpl plan -id <id> [-percent <value> | -amount <value>]

  Sets the planned allocation of an asset, as a percentage of the total
  investment or as an absolute amount depending on the flag used. The flag
  must match the asset's planning mode (see 'wpl mode').

  Values that would push the plan above the total investment are clamped to
  the remaining headroom, with a warning.

Usage Examples:
$ wpl plan -id 1 -percent 40
$ wpl plan -id 3 -amount 57000
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the asset to plan.")
	f.Float64Var(&c.percent, "percent", -1, "Planned share of the total investment, in percent.")
	f.Float64Var(&c.amount, "amount", -1, "Planned absolute amount.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	hasPercent, hasAmount := c.percent >= 0, c.amount >= 0
	if hasPercent == hasAmount {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -percent or -amount is required.")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	a, ok := p.Asset(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no asset with id %d\n", c.id)
		return subcommands.ExitFailure
	}

	var adjusted bool
	if hasPercent {
		if a.Mode() != wealthplan.Percentage {
			fmt.Fprintf(os.Stderr, "Error: asset %q is planned by amount, use -amount or switch its mode first.\n", a.Name())
			return subcommands.ExitUsageError
		}
		adjusted, err = p.SetPlannedPercentage(c.id, c.percent)
	} else {
		if a.Mode() != wealthplan.Amount {
			fmt.Fprintf(os.Stderr, "Error: asset %q is planned by percentage, use -percent or switch its mode first.\n", a.Name())
			return subcommands.ExitUsageError
		}
		adjusted, err = p.SetPlannedAmount(c.id, c.amount)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	a, _ = p.Asset(c.id)
	if adjusted {
		fmt.Fprintf(os.Stderr, "Warning: value clamped to the remaining headroom.\n")
	}
	fmt.Printf("Asset %q planned at %s (%s of total)\n", a.Name(), p.PlannedAmount(a), p.PlannedPercent(a))
	return subcommands.ExitSuccess
}
