package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/google/subcommands"
)

type modeCmd struct {
	id int64
}

func (*modeCmd) Name() string     { return "mode" }
func (*modeCmd) Synopsis() string { return "switch an asset between percentage and amount planning" }
func (*modeCmd) Usage() string {
	return `wpl mode -id <id> percentage|amount

  Switches the planning mode of an asset. The planned amount is preserved
  across the switch, only its unit of expression changes.
`
}

func (c *modeCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the asset to switch.")
}

func (c *modeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: mode expects exactly one argument, 'percentage' or 'amount'.")
		return subcommands.ExitUsageError
	}
	mode, err := wealthplan.ParseMode(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := p.SetAssetMode(c.id, mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	a, _ := p.Asset(c.id)
	fmt.Printf("Asset %q now planned by %s\n", a.Name(), mode)
	return subcommands.ExitSuccess
}
