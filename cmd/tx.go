package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool"
	"github.com/etnz/fundpool/renderer"
	"github.com/google/subcommands"
)

// txCmd lists the raw records: contributions and trades.
type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list contributions and trades" }
func (*txCmd) Usage() string {
	return `pfc tx [-head <n>] [-tail <n>]

  Lists every contribution with its resolved issue price and units, and
  every trade, with options for limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N trades.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	records, state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	trades := make([]fundpool.Trade, len(records.Trades))
	copy(trades, records.Trades)
	if c.head > 0 && len(trades) > c.head {
		trades = trades[:c.head]
	}
	if c.tail > 0 && len(trades) > c.tail {
		trades = trades[len(trades)-c.tail:]
	}

	printMarkdown(renderer.Contributions(state) + "\n" + renderer.Trades(trades))
	return subcommands.ExitSuccess
}
