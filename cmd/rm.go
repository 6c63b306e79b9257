package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id int64
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an asset class from the plan" }
func (*rmCmd) Usage() string {
	return `wpl rm -id <id>

  Removes an asset class. Use 'wpl show' to find asset ids.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the asset to remove.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := p.DeleteAsset(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	fmt.Printf("Removed asset %q\n", a.Name())
	return subcommands.ExitSuccess
}
