package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool"
	"github.com/google/subcommands"
)

// importCmd converts a legacy web app export into the fund file.
type importCmd struct {
	file  string
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy web app export" }
func (*importCmd) Usage() string {
	return `pfc import -f <export.json> [-force]

  Reads a JSON export of the old web app (the browser local storage
  dump) and writes it as the fund file. Refuses to overwrite an
  existing fund file unless -force is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path of the legacy export to import.")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing fund file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -f is required.")
		return subcommands.ExitUsageError
	}
	if !c.force {
		if _, err := os.Stat(*fundFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %q already exists, use -force to overwrite.\n", *fundFile)
			return subcommands.ExitFailure
		}
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	records, err := fundpool.ImportLegacy(in)
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

	fmt.Printf("Imported %d partners, %d contributions, %d trades into %s\n",
		len(records.Partners), len(records.Contributions), len(records.Trades), *fundFile)
	return subcommands.ExitSuccess
}
