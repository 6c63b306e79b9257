package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/google/subcommands"
)

type actualCmd struct {
	id    int64
	value float64
}

func (*actualCmd) Name() string     { return "actual" }
func (*actualCmd) Synopsis() string { return "record the actual value held in an asset" }
func (*actualCmd) Usage() string {
	return `wpl actual -id <id> -value <value>

  Records the value actually held in an asset class. Actual values are free
  form, they are not constrained by the total investment.
`
}

func (c *actualCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the asset to update.")
	f.Float64Var(&c.value, "value", 0, "Actual value held.")
}

func (c *actualCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := p.SetActualValue(c.id, c.value); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	a, _ := p.Asset(c.id)
	if action, amount := p.Advise(a); action == wealthplan.Hold {
		fmt.Printf("Asset %q actual value set to %s, on plan\n", a.Name(), p.ActualValue(a))
	} else {
		fmt.Printf("Asset %q actual value set to %s, advice: %s %s\n", a.Name(), p.ActualValue(a), action, amount)
	}
	return subcommands.ExitSuccess
}
