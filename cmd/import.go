package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/etnz/wealthplan/renderer"
	"github.com/google/subcommands"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the current plan with one read from a file" }
func (*importCmd) Usage() string {
	return `wpl import -i <file>

  Reads a plan snapshot produced by 'wpl export' and makes it the current
  plan. The snapshot is validated before anything is overwritten, a corrupt
  file leaves the current plan untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Snapshot file to import.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}

	r, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	p, err := wealthplan.DecodePortfolio(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	if st := save(p); st != subcommands.ExitSuccess {
		return st
	}

	fmt.Printf("Imported plan from %s\n", c.input)
	printMarkdown(renderer.Overview(p))
	return subcommands.ExitSuccess
}
