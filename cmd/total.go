package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/wealthplan/renderer"
	"github.com/google/subcommands"
)

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "set the total investment amount" }
func (*totalCmd) Usage() string {
	return `wpl total <amount>

  Sets the total investment amount that planned percentages are computed against.

Usage Examples:
$ wpl total 380000
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: total expects exactly one amount argument.")
		return subcommands.ExitUsageError
	}
	value, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := p.SetTotalInvestment(value); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	printMarkdown(renderer.Overview(p))
	return subcommands.ExitSuccess
}
