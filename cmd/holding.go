package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the mark-to-market holdings" }
func (*holdingCmd) Usage() string {
	return `pfc holding

  Displays every open position with its average cost, current price,
  market value and unrealized gain. Prices flagged (cost) have no
  market quote and are valued at break-even.
`
}

func (*holdingCmd) SetFlags(*flag.FlagSet) {}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Holdings(state))
	return subcommands.ExitSuccess
}
