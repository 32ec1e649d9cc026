package cmd

import (
	"bytes"
	"context"
	"flag"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run executes a subcommand with the given arguments, the way the
// commander would.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func useTempFund(t *testing.T) {
	t.Helper()
	old := *fundFile
	*fundFile = filepath.Join(t.TempDir(), "fund.jsonl")
	t.Cleanup(func() { *fundFile = old })
}

func TestContributeAndTradeFlow(t *testing.T) {
	useTempFund(t)

	if got := run(t, &partnersCmd{}, "-add", "alice"); got != subcommands.ExitSuccess {
		t.Fatalf("partners -add = %v", got)
	}
	if got := run(t, &contributeCmd{}, "-i", "alice", "-a", "100000", "-d", "2024-01-02"); got != subcommands.ExitSuccess {
		t.Fatalf("contribute = %v", got)
	}
	if got := run(t, &buyCmd{}, "-s", "0050", "-p", "150", "-q", "100", "-d", "2024-01-10"); got != subcommands.ExitSuccess {
		t.Fatalf("buy = %v", got)
	}
	if got := run(t, &priceCmd{}, "-s", "0050", "-p", "180"); got != subcommands.ExitSuccess {
		t.Fatalf("price = %v", got)
	}
	if got := run(t, &priceCmd{}, "-r", "32"); got != subcommands.ExitSuccess {
		t.Fatalf("price -r = %v", got)
	}

	_, state, err := LoadState()
	if err != nil {
		t.Fatal(err)
	}
	// 100000 - 15000 cash, 18000 market value.
	if want := "NT$103,000.00"; state.TotalValue.String() != want {
		t.Errorf("TotalValue = %v, want %v", state.TotalValue, want)
	}
}

func TestVerboseLogging(t *testing.T) {
	useTempFund(t)
	if got := run(t, &partnersCmd{}, "-add", "alice"); got != subcommands.ExitSuccess {
		t.Fatal("partners -add failed")
	}

	var buf bytes.Buffer
	oldOut := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(oldOut) })

	old := *Verbose
	t.Cleanup(func() { *Verbose = old })

	*Verbose = false
	if _, _, err := LoadState(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet mode still logged: %q", buf.String())
	}

	*Verbose = true
	if _, _, err := LoadState(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1 partners") {
		t.Errorf("verbose mode logged nothing useful: %q", buf.String())
	}
}

func TestContributeRejectsBadAmount(t *testing.T) {
	useTempFund(t)
	if got := run(t, &contributeCmd{}, "-i", "alice", "-a", "nope"); got != subcommands.ExitUsageError {
		t.Errorf("contribute with a bad amount = %v, want usage error", got)
	}
	if got := run(t, &contributeCmd{}, "-i", "alice", "-a", "-5"); got != subcommands.ExitUsageError {
		t.Errorf("contribute with a negative amount = %v, want usage error", got)
	}
}

func TestDeleteRequiresExactlyOneId(t *testing.T) {
	useTempFund(t)
	if got := run(t, &deleteCmd{}); got != subcommands.ExitUsageError {
		t.Errorf("delete with no id = %v, want usage error", got)
	}
	if got := run(t, &deleteCmd{}, "-c", "a", "-t", "b"); got != subcommands.ExitUsageError {
		t.Errorf("delete with both ids = %v, want usage error", got)
	}
}

func TestSnapshotAndHistory(t *testing.T) {
	useTempFund(t)
	if got := run(t, &partnersCmd{}, "-add", "alice"); got != subcommands.ExitSuccess {
		t.Fatal("partners -add failed")
	}
	if got := run(t, &contributeCmd{}, "-i", "alice", "-a", "100000"); got != subcommands.ExitSuccess {
		t.Fatal("contribute failed")
	}
	if got := run(t, &snapshotCmd{}); got != subcommands.ExitSuccess {
		t.Fatal("snapshot failed")
	}

	records, _, err := LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if len(records.History) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(records.History))
	}
	if got := run(t, &snapshotCmd{}, "-clear"); got != subcommands.ExitSuccess {
		t.Fatal("snapshot -clear failed")
	}
	records, _, err = LoadState()
	if err != nil {
		t.Fatal(err)
	}
	if len(records.History) != 0 {
		t.Errorf("got %d snapshots after clear, want none", len(records.History))
	}
}
