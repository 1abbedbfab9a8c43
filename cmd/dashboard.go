package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/etnz/fxdash"
	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type dashboardCmd struct {
	presetFlags
	days     int
	analysis bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show every panel of a currency pair" }
func (*dashboardCmd) Usage() string {
	return `fxd dashboard [-days <n>] [-analysis [analysis flags]] [<base> <quote> | <pair>]

  Shows the rate, history, interest rates and exposure of a pair, and with
  -analysis its AI analysis. A panel that cannot be fetched is replaced by a
  note.

Usage Examples:
$ fxd dashboard
$ fxd dashboard -analysis GBP USD
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.presetFlags.SetFlags(f)
	f.IntVar(&c.days, "days", 0, "Length of the history window in days (default from the config)")
	f.BoolVar(&c.analysis, "analysis", false, "Include the AI analysis")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := pairArgs(f.Args())
	if err != nil {
		return usagePair(err)
	}
	var preset *fxdash.AnalysisPreset
	if c.analysis {
		p, err := c.resolve(LoadPreferences(), f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		preset = &p
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := a.backend.Health(ctx); err != nil {
		log.Warn().Err(err).Msg("backend is unhealthy, panels may be unavailable")
	}
	d := a.dashboard(ctx, pair, c.days, preset, c.local)
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}

// dashboard fetches the panels of pair concurrently. The analysis is fetched
// only when a preset is given.
func (a *app) dashboard(ctx context.Context, pair fxdash.Pair, days int, preset *fxdash.AnalysisPreset, local bool) renderer.Dashboard {
	if days <= 0 {
		days = a.cfg.Dashboard.HistoryDays
	}
	d := renderer.Dashboard{Pair: pair}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		q, err := a.rate(ctx, pair)
		d.Rate, d.RateErr = &renderer.RateView{Quote: q}, err
	}()
	go func() {
		defer wg.Done()
		h, err := a.backend.History(ctx, pair, days)
		v := renderer.NewHistoryView(pair, h)
		d.History, d.HistoryErr = &v, err
	}()
	go func() {
		defer wg.Done()
		r, err := a.backend.InterestRates(ctx, pair)
		d.Interest, d.InterestErr = &renderer.InterestView{Pair: pair, Rates: r}, err
	}()
	go func() {
		defer wg.Done()
		v := a.exposure(ctx, pair)
		d.Exposure = &v
	}()
	if preset != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			an, err := a.analyze(ctx, pair, *preset, local)
			d.Analysis, d.AnalysisErr = &renderer.AnalysisView{Pair: pair, Analysis: an}, err
		}()
	}
	wg.Wait()
	return d
}
