package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type configCmd struct {
	currency  string
	threshold float64
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change portfolio settings" }
func (*configCmd) Usage() string {
	return `wpl config [-currency CNY|USD|EUR] [-threshold <pct>]

  Without flags, prints the current settings. With flags, updates the display
  currency or the overall deviation threshold.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Display currency for all amounts.")
	f.Float64Var(&c.threshold, "threshold", -1, "Overall deviation threshold, in percent.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.currency == "" && c.threshold < 0 {
		fmt.Printf("currency: %s\n", p.Currency())
		fmt.Printf("deviation threshold: %s\n", p.DeviationThreshold())
		return subcommands.ExitSuccess
	}

	if c.currency != "" {
		if err := p.SetCurrency(c.currency); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if c.threshold >= 0 {
		if err := p.SetDeviationThreshold(c.threshold); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	fmt.Printf("Settings updated: currency %s, deviation threshold %s\n", p.Currency(), p.DeviationThreshold())
	return subcommands.ExitSuccess
}
