package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundpool"
	"github.com/etnz/fundpool/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd starts the interactive AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `pfc assist [initial question]

  Starts an interactive session with the AI assistant. The assistant
  can read the pool's reports to answer questions about partner equity,
  holdings and history.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	load := func() (*fundpool.State, error) {
		records, err := Store().Load()
		if err != nil {
			return nil, err
		}
		return fundpool.Compute(records), nil
	}
	analyst := agent.NewAnalyst()
	accountant := agent.NewAccountant(load)
	a := agent.New(os.Stdout, os.Stdin, analyst, accountant)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
