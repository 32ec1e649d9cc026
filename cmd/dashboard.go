package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the pool overview" }
func (*dashboardCmd) Usage() string {
	return `pfc dashboard

  Shows the pool summary: total value, cash, NAV per unit, partner
  equity and asset allocation.
`
}

func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Dashboard(state))
	return subcommands.ExitSuccess
}
