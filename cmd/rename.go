package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type renameCmd struct {
	id   int64
	name string
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename an asset class" }
func (*renameCmd) Usage() string {
	return `wpl rename -id <id> -name <name>

  Renames an asset class. Names must be unique within the plan.
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the asset to rename.")
	f.StringVar(&c.name, "name", "", "New name for the asset.")
}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := p.RenameAsset(c.id, c.name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	fmt.Printf("Renamed asset %d to %q\n", c.id, c.name)
	return subcommands.ExitSuccess
}
