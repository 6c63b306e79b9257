package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wealthplan/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion runs before flag parsing and exits on its own when the
	// shell is asking for completions.
	sub := make(map[string]*complete.Command)
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("wpl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
