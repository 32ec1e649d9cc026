package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the pool value time series" }
func (*historyCmd) Usage() string {
	return `pfc history

  Lists every recorded snapshot of the pool value, oldest first.
`
}

func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.History(state))
	return subcommands.ExitSuccess
}
