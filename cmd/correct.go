package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool"
	"github.com/google/subcommands"
)

// correctCmd pins the issue price of a past contribution.
type correctCmd struct {
	id    string
	price string
}

func (*correctCmd) Name() string     { return "correct" }
func (*correctCmd) Synopsis() string { return "correct the issue price of a contribution" }
func (*correctCmd) Usage() string {
	return `pfc correct -c <contribution-id> -p <issue-price>

  Pins the NAV-per-unit a past contribution was issued at. The recorded
  price becomes authoritative; the unit count re-derives from it.
`
}

func (c *correctCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "c", "", "Id of the contribution to correct.")
	f.StringVar(&c.price, "p", "", "Corrected issue price per unit, in TWD.")
}

func (c *correctCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -c is required.")
		return subcommands.ExitUsageError
	}
	price, err := parseAmount("p", c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := Store().CorrectIssuePrice(c.id, fundpool.M(price, fundpool.PoolCurrency)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Corrected issue price of %s to %s\n", c.id, price)
	return subcommands.ExitSuccess
}
