package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

// snapshotCmd freezes the current pool value into the history.
type snapshotCmd struct {
	clear bool
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record the current pool value in the history" }
func (*snapshotCmd) Usage() string {
	return `pfc snapshot [-clear]

  Appends a snapshot of the current total pool value and per-partner
  equity to the history. Snapshots anchor the NAV-per-unit used for
  contributions recorded without a price. -clear wipes the history.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Delete the whole snapshot history.")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.clear {
		if err := Store().ClearSnapshots(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println("History cleared.")
		return subcommands.ExitSuccess
	}

	_, state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snapshot := state.SnapshotNow(time.Now())
	if err := Store().AppendSnapshot(snapshot); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded snapshot on %s: %s\n", snapshot.Date, snapshot.Total)
	return subcommands.ExitSuccess
}
