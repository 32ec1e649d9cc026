package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundpool/renderer"
	"github.com/google/subcommands"
)

// partnersCmd lists the partner equity report, or declares a partner.
type partnersCmd struct {
	add string
}

func (*partnersCmd) Name() string     { return "partners" }
func (*partnersCmd) Synopsis() string { return "show partner equity, or declare a new partner" }
func (*partnersCmd) Usage() string {
	return `pfc partners [-add <name>]

  Without flags, shows each partner's contributed capital, units, equity
  and profit. With -add, declares a new partner on the roster.
  Contributions from names not on the roster are ignored.
`
}

func (c *partnersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Declare a new partner with this name.")
}

func (c *partnersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.add != "" {
		if err := Store().AddPartner(c.add); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Declared partner %q\n", c.add)
		return subcommands.ExitSuccess
	}

	_, state, err := LoadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Partners(state))
	return subcommands.ExitSuccess
}
