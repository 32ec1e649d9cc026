package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool"
	"github.com/google/subcommands"
)

// priceCmd maintains the manual price overrides and the exchange rate.
type priceCmd struct {
	symbol string
	price  string
	rate   string
}

func (*priceCmd) Name() string { return "price" }
func (*priceCmd) Synopsis() string {
	return "set the current price of an instrument or the USD/TWD rate"
}
func (*priceCmd) Usage() string {
	return `pfc price [-s <symbol> -p <price>] [-r <rate>]

  Sets the current market price of an instrument, in its native
  currency, or the USD/TWD exchange rate with -r. Without a price an
  instrument is valued at break-even.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol to price.")
	f.StringVar(&c.price, "p", "", "Current price in the instrument's native currency.")
	f.StringVar(&c.rate, "r", "", "USD/TWD exchange rate.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	overrides := make(fundpool.PriceOverrides)

	if c.symbol != "" {
		if c.symbol == fundpool.FXTicker {
			fmt.Fprintf(os.Stderr, "Error: use -r to set the exchange rate.\n")
			return subcommands.ExitUsageError
		}
		price, err := parseAmount("p", c.price)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		overrides[c.symbol] = price
	}
	if c.rate != "" {
		rate, err := parseAmount("r", c.rate)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		overrides[fundpool.FXTicker] = rate
	}
	if len(overrides) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to set, pass -s/-p or -r.")
		return subcommands.ExitUsageError
	}

	if err := Store().SetPrices(overrides); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Prices updated.")
	return subcommands.ExitSuccess
}
