package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan/renderer"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the allocation plan" }
func (*showCmd) Usage() string {
	return `wpl show

  Displays the full allocation plan: total investment, every asset with its
  planned and actual allocation, and advice on the assets that drifted off plan.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Planning(p))
	return subcommands.ExitSuccess
}
