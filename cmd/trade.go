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

// tradeCmd carries the flags shared by 'buy' and 'sell'.
type tradeCmd struct {
	side     fundpool.Side
	date     string
	symbol   string
	price    string
	quantity string
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the trade (YYYY-MM-DD).")
	f.StringVar(&c.symbol, "s", "", "Instrument symbol. Uppercase tickers trade in USD, anything else in TWD.")
	f.StringVar(&c.price, "p", "", "Unit price in the instrument's native currency.")
	f.StringVar(&c.quantity, "q", "", "Quantity traded.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := parseAmount("p", c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	quantity, err := parseAmount("q", c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	trade := fundpool.Trade{
		ID:       uuid.NewString(),
		Date:     on,
		Symbol:   c.symbol,
		Side:     c.side,
		Price:    fundpool.M(price, fundpool.TradeCurrency(c.symbol)),
		Quantity: fundpool.Q(quantity),
	}
	if err := Store().AddTrade(trade); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s: %s x %s\n", trade.Side, trade.Symbol, trade.Quantity, trade.Price)
	return subcommands.ExitSuccess
}

type buyCmd struct{ tradeCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy of an instrument" }
func (*buyCmd) Usage() string {
	return `pfc buy -s <symbol> -p <price> -q <quantity> [-d <date>]

  Records a buy. The notional (price x quantity, converted for USD
  instruments) is taken from the pool cash.
`
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.side = fundpool.Buy
	return c.tradeCmd.Execute(ctx, f, args...)
}

type sellCmd struct{ tradeCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell of an instrument" }
func (*sellCmd) Usage() string {
	return `pfc sell -s <symbol> -p <price> -q <quantity> [-d <date>]

  Records a sell. Proceeds return to the pool cash; the cost basis is
  relieved at the position's average cost.
`
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.side = fundpool.Sell
	return c.tradeCmd.Execute(ctx, f, args...)
}
