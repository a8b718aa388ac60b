package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/netbook/cmd"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

var verbose = flag.Bool("v", false, "enable verbose diagnostics")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	os.Exit(int(commander.Execute(context.Background())))
}
