package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool"
	"github.com/google/subcommands"
)

// fmtCmd rewrites the fund file in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the fund file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pfc fmt

  Reads the whole fund file and writes it back in canonical order with
  a fixed field order per line, so that rewrites diff cleanly.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	records, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(*fundFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := fundpool.EncodeRecords(out, records); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %s\n", *fundFile)
	return subcommands.ExitSuccess
}
