// Package cmd implements the CLI application to manage the fund pool.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/fundpool"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Environment variables picked up by the application and passed down to
// extensions.
const (
	EnvFundFile = "PFC_FUND_FILE"
	EnvVerbose  = "PFC_VERBOSE"
)

// Commands lists every subcommand; the main package registers them all.
var Commands = []subcommands.Command{
	&partnersCmd{},
	&contributeCmd{},
	&buyCmd{},
	&sellCmd{},
	&deleteCmd{},
	&correctCmd{},
	&priceCmd{},
	&dashboardCmd{},
	&holdingCmd{},
	&txCmd{},
	&snapshotCmd{},
	&historyCmd{},
	&importCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var fundFile = flag.String("fund-file", defaultFundFile(), "Path to the fund records file (JSONL format)")
var Verbose = flag.Bool("v", os.Getenv(EnvVerbose) == "true", "Enable verbose logging")

func defaultFundFile() string {
	if v := os.Getenv(EnvFundFile); v != "" {
		return v
	}
	return "fund.jsonl"
}

// logf reports progress on stderr, only in verbose mode.
func logf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// Store opens the record store on the app fund file.
func Store() *fundpool.FileStore {
	return fundpool.NewFileStore(*fundFile)
}

// LoadState loads the records and computes the derived state in one go.
func LoadState() (*fundpool.Records, *fundpool.State, error) {
	records, err := Store().Load()
	if err != nil {
		return nil, nil, err
	}
	logf("loaded %d partners, %d contributions, %d trades from %s",
		len(records.Partners), len(records.Contributions), len(records.Trades), *fundFile)
	return records, fundpool.Compute(records), nil
}

// parseAmount parses a strictly positive decimal command line argument.
func parseAmount(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("flag -%s is required", name)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("flag -%s: %q is not a number", name, value)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("flag -%s must be positive, got %s", name, d)
	}
	return d, nil
}
