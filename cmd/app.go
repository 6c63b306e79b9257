// Package cmd implements the CLI application to manage an allocation plan.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/wealthplan"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "planning")
	c.Register(&totalCmd{}, "planning")
	c.Register(&addCmd{}, "planning")
	c.Register(&rmCmd{}, "planning")
	c.Register(&renameCmd{}, "planning")
	c.Register(&modeCmd{}, "planning")
	c.Register(&planCmd{}, "planning")
	c.Register(&actualCmd{}, "planning")

	c.Register(&rebalanceCmd{}, "rebalancing")

	c.Register(&saveCmd{}, "plans")
	c.Register(&plansCmd{}, "plans")
	c.Register(&loadCmd{}, "plans")
	c.Register(&rmPlanCmd{}, "plans")

	c.Register(&configCmd{}, "settings")
	c.Register(&resetCmd{}, "settings")
	c.Register(&exportCmd{}, "settings")
	c.Register(&importCmd{}, "settings")

	c.Register(&topicCmd{}, "documentation")
}

// CommandNames returns the name of every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{
		"show", "total", "add", "rm", "rename", "mode", "plan", "actual",
		"rebalance",
		"save", "plans", "load", "rm-plan",
		"config", "reset", "export", "import",
		"topic",
		"help", "flags", "commands",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state-file", "wealthplan.json", "Path to the portfolio state file")
var plansDir = flag.String("plans-dir", "plans", "Path to the folder holding saved plans")

// DecodePortfolio loads the portfolio state from the app state file.
func DecodePortfolio() (p *wealthplan.Portfolio, err error) {
	f, err := os.Open(*stateFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, state file does not exist, starting from the default portfolio instead")
		return wealthplan.DefaultPortfolio(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wealthplan.DecodePortfolio(f)
}

// EncodePortfolio writes the portfolio state back to the app state file.
// Every mutating command calls it on success, so the state file is always current.
func EncodePortfolio(p *wealthplan.Portfolio) error {
	f, err := os.Create(*stateFile)
	if err != nil {
		return fmt.Errorf("cannot create state file %q: %w", *stateFile, err)
	}
	defer f.Close()
	return wealthplan.EncodePortfolio(f, p)
}

// save persists the portfolio and reports failures on stderr.
func save(p *wealthplan.Portfolio) subcommands.ExitStatus {
	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving state file %q: %v\n", *stateFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
