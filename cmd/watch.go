package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/fxdash"
	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type watchCmd struct {
	presetFlags
	every     time.Duration
	days      int
	analysis  bool
	watchlist bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "render the dashboard on a schedule" }
func (*watchCmd) Usage() string {
	return `fxd watch [-every <duration>] [-watchlist] [dashboard flags] [<base> <quote> | <pair>]

  Renders the dashboard of a pair, then again on every tick, until
  interrupted. The portfolio is refreshed at each tick.

  With -watchlist, renders the dashboard of every pair of the watchlist.

Usage Examples:
$ fxd watch -every 1m EUR USD
$ fxd watch -watchlist
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	c.presetFlags.SetFlags(f)
	f.DurationVar(&c.every, "every", 0, "Refresh period (default from the config)")
	f.IntVar(&c.days, "days", 0, "Length of the history window in days (default from the config)")
	f.BoolVar(&c.analysis, "analysis", false, "Include the AI analysis")
	f.BoolVar(&c.watchlist, "watchlist", false, "Watch every pair of the watchlist")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prefs := LoadPreferences()
	pairs := prefs.Watchlist
	if !c.watchlist || len(pairs) == 0 {
		pair, err := pairArgs(f.Args())
		if err != nil {
			return usagePair(err)
		}
		pairs = []fxdash.Pair{pair}
	}
	var preset *fxdash.AnalysisPreset
	if c.analysis {
		p, err := c.resolve(prefs, f)
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
	every := c.every
	if every <= 0 {
		every = a.cfg.Dashboard.WatchEvery.Duration
	}
	if every < time.Second {
		fmt.Fprintf(os.Stderr, "Error: -every must be at least 1s, got %v\n", every)
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	tick := func() {
		for _, doc := range a.tick(ctx, pairs, c.days, preset, c.local) {
			printMarkdown(doc)
		}
		log.Info().Time("next", time.Now().Add(every)).Msg("dashboard rendered")
	}

	tick()
	sched := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{})))
	if _, err := sched.AddFunc("@every "+every.String(), tick); err != nil {
		fmt.Fprintf(os.Stderr, "Error scheduling refresh: %v\n", err)
		return subcommands.ExitFailure
	}
	sched.Start()
	<-ctx.Done()
	<-sched.Stop().Done()
	return subcommands.ExitSuccess
}

// tick refreshes the portfolio snapshot, and returns the rendered dashboard
// of each pair.
func (a *app) tick(ctx context.Context, pairs []fxdash.Pair, days int, preset *fxdash.AnalysisPreset, local bool) []string {
	// refresh errors are logged by the store.
	_ = a.store.Refresh(ctx)
	docs := make([]string, len(pairs))
	for i, pair := range pairs {
		docs[i] = renderer.RenderDashboard(a.dashboard(ctx, pair, days, preset, local))
	}
	return docs
}

// cronLogger logs the scheduler events.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
