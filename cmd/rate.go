package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show the current rate of a currency pair" }
func (*rateCmd) Usage() string {
	return `fxd rate [<base> <quote> | <pair>]

  Shows the current rate of a pair, from the backend or from the Frankfurter
  API if the backend is unavailable.

  Without argument, the preferred pair is used.

Usage Examples:
$ fxd rate EUR USD
$ fxd rate gbp/jpy
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := pairArgs(f.Args())
	if err != nil {
		return usagePair(err)
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	q, err := a.rate(ctx, pair)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rate of %s: %v\n", pair, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderRate(renderer.RateView{Quote: q}))
	return subcommands.ExitSuccess
}
