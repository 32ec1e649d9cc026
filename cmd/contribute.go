package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool"
	"github.com/etnz/fundpool/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// contributeCmd holds the flags for the 'contribute' subcommand.
type contributeCmd struct {
	date    string
	partner string
	amount  string
	price   string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record a partner's cash contribution" }
func (*contributeCmd) Usage() string {
	return `pfc contribute -i <partner> -a <amount> [-d <date>] [-p <issue-price>]

  Records a cash contribution to the pool. Units are issued at the
  NAV-per-unit of the contribution date; pass -p to pin the issue price
  explicitly instead of deriving it.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the contribution (YYYY-MM-DD).")
	f.StringVar(&c.partner, "i", "", "Contributing partner, must be on the roster.")
	f.StringVar(&c.amount, "a", "", "Amount contributed, in TWD.")
	f.StringVar(&c.price, "p", "", "Issue price per unit, derived from history when omitted.")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	contribution := fundpool.Contribution{
		ID:      uuid.NewString(),
		Date:    on,
		Partner: c.partner,
		Amount:  fundpool.M(amount, fundpool.PoolCurrency),
	}
	if c.price != "" {
		price, err := parseAmount("p", c.price)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		contribution.IssuePrice = fundpool.M(price, fundpool.PoolCurrency)
	}

	if err := Store().AddContribution(contribution); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded contribution %s: %s from %s\n", contribution.ID, contribution.Amount, contribution.Partner)
	return subcommands.ExitSuccess
}
