package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd removes a contribution or a trade by id.
type deleteCmd struct {
	contribution string
	trade        string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a contribution or a trade by id" }
func (*deleteCmd) Usage() string {
	return `pfc delete [-c <contribution-id> | -t <trade-id>]

  Removes a record from the pool. Every derived figure (cash, units,
  equity) is recomputed from the remaining records.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.contribution, "c", "", "Id of the contribution to delete.")
	f.StringVar(&c.trade, "t", "", "Id of the trade to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.contribution == "") == (c.trade == "") {
		fmt.Fprintln(os.Stderr, "Error: pass exactly one of -c or -t.")
		return subcommands.ExitUsageError
	}

	var err error
	if c.contribution != "" {
		err = Store().DeleteContribution(c.contribution)
	} else {
		err = Store().DeleteTrade(c.trade)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted.")
	return subcommands.ExitSuccess
}
