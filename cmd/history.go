package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fxdash/date"
	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	days int
	from string
	to   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the rate history of a currency pair" }
func (*historyCmd) Usage() string {
	return `fxd history [-days <n>] [-from <date>] [-to <date>] [<base> <quote> | <pair>]

  Shows how the rate changed over the last day and over the last months,
  with statistics on the long window: min, max, mean, standard deviation,
  SMA 20 and RSI 14.

  -from and -to narrow the long window, within the fetched days. Dates are
  YYYY-MM-DD or relative to today: -2w, -1m.

Usage Examples:
$ fxd history EUR USD
$ fxd history -days 30 USD/JPY
$ fxd history -from -1m EUR/USD
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 0, "Length of the long window in days (default from the config)")
	f.StringVar(&c.from, "from", "", "First day of the statistics window")
	f.StringVar(&c.to, "to", "", "Last day of the statistics window")
}

// window returns the range given by -from and -to, open where unset.
func (c *historyCmd) window() (r date.Range, err error) {
	if c.from != "" {
		if r.From, err = date.Parse(c.from); err != nil {
			return r, err
		}
	}
	if c.to != "" {
		if r.To, err = date.Parse(c.to); err != nil {
			return r, err
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, fmt.Errorf("empty window %s", r)
	}
	return r, nil
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := pairArgs(f.Args())
	if err != nil {
		return usagePair(err)
	}
	window, err := c.window()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	days := c.days
	if days <= 0 {
		days = a.cfg.Dashboard.HistoryDays
	}

	h, err := a.backend.History(ctx, pair, days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history of %s: %v\n", pair, err)
		return subcommands.ExitFailure
	}
	if c.from != "" || c.to != "" {
		h = h.Between(window)
	}
	printMarkdown(renderer.RenderHistory(renderer.NewHistoryView(pair, h)))
	return subcommands.ExitSuccess
}
