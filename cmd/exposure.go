package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
)

type tradesCmd struct{}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list the trades booked on a currency pair" }
func (*tradesCmd) Usage() string {
	return `fxd trades [<base> <quote> | <pair>]

  Lists the forward trades booked on a pair or on its inverse. Trades on the
  inverse pair are shown flipped, in the requested quoting order.

Usage Examples:
$ fxd trades EUR USD
$ fxd trades USD EUR
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {}

func (c *tradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := pairArgs(f.Args())
	if err != nil {
		return usagePair(err)
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderTrades(a.exposure(ctx, pair)))
	return subcommands.ExitSuccess
}

type exposureCmd struct{}

func (*exposureCmd) Name() string     { return "exposure" }
func (*exposureCmd) Synopsis() string { return "show the portfolio exposure on a currency pair" }
func (*exposureCmd) Usage() string {
	return `fxd exposure [<base> <quote> | <pair>]

  Shows the net exposure of the trades booked on a pair, the position
  (long, short, flat or no trades), and the portfolio net position in each
  currency of the pair.

Usage Examples:
$ fxd exposure EUR USD
`
}

func (c *exposureCmd) SetFlags(f *flag.FlagSet) {}

func (c *exposureCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := pairArgs(f.Args())
	if err != nil {
		return usagePair(err)
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderExposure(a.exposure(ctx, pair)))
	return subcommands.ExitSuccess
}
