package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fundpool/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completer describes the CLI for shell completion. It must run before
// flag.Parse, complete short-circuits the process when invoked by the
// shell.
func completer() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"fund-file": predict.Files("*.jsonl"),
			"v":         predict.Nothing,
		},
	}
}

func main() {
	completer().Complete("pfc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
