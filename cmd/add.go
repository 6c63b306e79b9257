package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	name string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new asset class to the plan" }
func (*addCmd) Usage() string {
	return `wpl add [-name <name>]

  Adds a new asset class with a zero allocation. Without -name the asset gets
  a unique placeholder name that can be changed later with 'wpl rename'.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the new asset class.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	a := p.AddAsset()
	if c.name != "" {
		if err := p.RenameAsset(a.ID(), c.name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	a, _ = p.Asset(a.ID())
	fmt.Printf("Added asset %q with id %d\n", a.Name(), a.ID())
	return subcommands.ExitSuccess
}
