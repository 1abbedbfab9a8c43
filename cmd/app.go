// Package cmd implements the fxd command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/etnz/fxdash"
	"github.com/etnz/fxdash/agent"
	"github.com/etnz/fxdash/backend"
	"github.com/etnz/fxdash/config"
	"github.com/etnz/fxdash/portfolio"
	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Commands lists every fxd subcommand, by group.
var Commands = map[string][]subcommands.Command{
	"market": {
		&rateCmd{},
		&historyCmd{},
		&interestCmd{},
	},
	"portfolio": {
		&tradesCmd{},
		&exposureCmd{},
	},
	"analysis": {
		&analyzeCmd{},
		&prefsCmd{},
	},
	"dashboard": {
		&dashboardCmd{},
		&watchCmd{},
	},
	"help": {
		&topicCmd{},
	},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range Commands {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", config.DefaultPath, "Path to the configuration file")
var prefsPath = flag.String("prefs", "", "Path to the preferences file (default in the user config folder)")
var verbose = flag.Bool("v", false, "Verbose logs")

var cfg *config.Config

// Config loads the configuration file, once.
func Config() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}

// PreferencesPath returns the path of the preferences file.
func PreferencesPath() string {
	if *prefsPath != "" {
		return *prefsPath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "fxd", "preferences.json")
}

// LoadPreferences loads the user preferences. A corrupted file is reported
// and replaced by the defaults. Until preferences are saved, the default pair
// comes from the configuration, if any.
func LoadPreferences() fxdash.Preferences {
	path := PreferencesPath()
	p, err := fxdash.LoadPreferences(path)
	if err != nil {
		log.Warn().Err(err).Msg("using default preferences")
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if c, err := Config(); err == nil {
			if pair, ok := c.DefaultPair(); ok {
				p.DefaultPair = pair
			}
		}
	}
	return p
}

// httpClient returns the client used for the backend and the rate fallback.
func httpClient(c *config.Config) *http.Client {
	if c.Cache.Disabled {
		return &http.Client{Timeout: c.Backend.Timeout.Duration}
	}
	return backend.NewCachingClient(c.Cache.Dir, c.Backend.Timeout.Duration)
}

// app holds the clients of the external services.
type app struct {
	cfg         *config.Config
	backend     *backend.Client
	frankfurter *backend.Frankfurter
	store       *portfolio.Store
}

// newApp loads the configuration and creates the clients.
func newApp() (*app, error) {
	c, err := Config()
	if err != nil {
		return nil, err
	}
	client := httpClient(c)
	feed := portfolio.NewClient(c.Portfolio.URL, &http.Client{Timeout: c.Portfolio.Timeout.Duration})
	return &app{
		cfg:         c,
		backend:     backend.New(c.Backend.URL, client),
		frankfurter: backend.NewFrankfurter(client),
		store:       portfolio.NewStore(feed),
	}, nil
}

// rate returns the current rate from the backend, or from Frankfurter.
func (a *app) rate(ctx context.Context, pair fxdash.Pair) (fxdash.Quote, error) {
	return backend.RateWithFallback(ctx, pair, a.backend, a.frankfurter)
}

// exposure returns the exposure view of pair, loading the portfolio once.
func (a *app) exposure(ctx context.Context, pair fxdash.Pair) renderer.ExposureView {
	// errors are logged by the store, and degrade to empty collections.
	_ = a.store.Load(ctx)
	return renderer.NewExposureView(pair, a.store.Trades(), a.store.Exposure())
}

// marketContext gathers what the local analyst needs. Missing data is left
// zero.
func (a *app) marketContext(ctx context.Context, pair fxdash.Pair) fxdash.MarketContext {
	m := fxdash.MarketContext{Pair: pair}
	if q, err := a.rate(ctx, pair); err == nil {
		m.Rate = q.Rate
	}
	if r, err := a.backend.InterestRates(ctx, pair); err == nil {
		m.BaseInterestRate, m.QuoteInterestRate = r.Base.Rate, r.Quote.Rate
	} else {
		log.Warn().Err(err).Msg("analysis without interest rates")
	}
	return m
}

// analyze returns an analysis of pair from the backend, unless local is set,
// then from the local analyst, then the demo analysis.
func (a *app) analyze(ctx context.Context, pair fxdash.Pair, preset fxdash.AnalysisPreset, local bool) (fxdash.Analysis, error) {
	if !local {
		an, err := a.backend.Analyze(ctx, pair, preset)
		if err == nil {
			return an, nil
		}
		log.Warn().Err(err).Msg("backend analysis failed, analyzing locally")
	}
	if err := ctx.Err(); err != nil {
		return fxdash.Analysis{}, err
	}

	analyst, err := agent.NewAnalyst(ctx, a.cfg.APIKey(), a.cfg.Agent.Model)
	if errors.Is(err, agent.ErrNoAPIKey) {
		log.Warn().Str("env", a.cfg.Agent.APIKeyEnv).Msg("no API key, showing the demo analysis")
		return agent.DemoAnalysis(), nil
	}
	if err != nil {
		return fxdash.Analysis{}, err
	}
	an, err := analyst.Analyze(ctx, a.marketContext(ctx, pair), preset)
	if err != nil {
		log.Error().Err(err).Msg("local analysis failed, showing the demo analysis")
		return agent.DemoAnalysis(), nil
	}
	return an, nil
}

// pairArgs returns the pair given as command arguments: "EUR USD", "EUR/USD"
// or nothing for the preferred pair.
func pairArgs(args []string) (fxdash.Pair, error) {
	switch len(args) {
	case 0:
		p := LoadPreferences().DefaultPair
		if p.IsZero() {
			return fxdash.Pair{}, errors.New("no currency pair given and no default pair")
		}
		return p, nil
	case 1:
		return fxdash.ParsePair(args[0])
	case 2:
		return fxdash.NewPair(args[0], args[1])
	default:
		return fxdash.Pair{}, fmt.Errorf("too many arguments %q, want BASE QUOTE", args)
	}
}

// usagePair reports a pair argument error, and returns the exit status.
func usagePair(err error) subcommands.ExitStatus {
	var perr *fxdash.InvalidPairError
	if errors.As(err, &perr) {
		printMarkdown(renderer.RenderInvalidPair(perr))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return subcommands.ExitUsageError
}
