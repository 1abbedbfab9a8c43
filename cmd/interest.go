package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
)

type interestCmd struct {
	all bool
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "show central bank interest rates" }
func (*interestCmd) Usage() string {
	return `fxd interest [-all] [<base> <quote> | <pair>]

  Shows the policy rate of both central banks of a pair, their last decision
  and the interest rate differential.

  With -all, lists every central bank known to the backend instead.

Usage Examples:
$ fxd interest EUR USD
$ fxd interest -all
`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List all central banks")
}

func (c *interestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.all {
		banks, err := a.backend.AllInterestRates(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching interest rates: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.RenderBanks(renderer.NewBanksView(banks)))
		return subcommands.ExitSuccess
	}

	pair, err := pairArgs(f.Args())
	if err != nil {
		return usagePair(err)
	}
	rates, err := a.backend.InterestRates(ctx, pair)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching interest rates of %s: %v\n", pair, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderInterest(renderer.InterestView{Pair: pair, Rates: rates}))
	return subcommands.ExitSuccess
}
