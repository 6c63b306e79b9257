package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the current plan to a file or stdout" }
func (*exportCmd) Usage() string {
	return `wpl export [-o <file>]

  Writes the current plan as JSON, to stdout by default. The output is a
  complete snapshot that 'wpl import' accepts back.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.output != "" {
		w, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	if err := wealthplan.EncodePortfolio(w, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported plan to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
