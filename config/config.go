// Package config loads the fxd configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/etnz/fxdash"
	"github.com/joho/godotenv"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "fxd.toml"

// Environment variables overriding the configuration file.
const (
	EnvBackendURL   = "FXD_BACKEND_URL"
	EnvPortfolioURL = "FXD_PORTFOLIO_URL"
	EnvVerbose      = "FXD_VERBOSE"
)

// Duration is a time.Duration read from a TOML string like "30s".
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

type Config struct {
	Backend struct {
		URL     string   `toml:"url"`
		Timeout Duration `toml:"timeout"`
	} `toml:"backend"`

	Portfolio struct {
		URL     string   `toml:"url"`
		Timeout Duration `toml:"timeout"`
	} `toml:"portfolio"`

	Cache struct {
		Dir      string `toml:"dir"`
		Disabled bool   `toml:"disabled"`
	} `toml:"cache"`

	Agent struct {
		Model     string `toml:"model"`
		APIKeyEnv string `toml:"api_key_env"`
	} `toml:"agent"`

	Dashboard struct {
		DefaultPair string   `toml:"default_pair"`
		HistoryDays int      `toml:"history_days"`
		WatchEvery  Duration `toml:"watch_every"`
	} `toml:"dashboard"`
}

// Load reads the configuration at path, a missing file being an empty one,
// then applies the environment (including a .env file in the current
// folder), the defaults, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load config %q: %w", path, err)
	}
	// .env is optional.
	_ = godotenv.Load()
	applyEnv(&cfg)
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvBackendURL); v != "" {
		cfg.Backend.URL = v
	}
	if v := os.Getenv(EnvPortfolioURL); v != "" {
		cfg.Portfolio.URL = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Backend.URL == "" {
		cfg.Backend.URL = "http://localhost:8000"
	}
	if cfg.Backend.Timeout.Duration <= 0 {
		cfg.Backend.Timeout.Duration = 30 * time.Second
	}
	if cfg.Portfolio.URL == "" {
		cfg.Portfolio.URL = cfg.Backend.URL + "/api/portfolio"
	}
	if cfg.Portfolio.Timeout.Duration <= 0 {
		cfg.Portfolio.Timeout.Duration = 10 * time.Second
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = defaultCacheDir()
	}
	if cfg.Agent.Model == "" {
		cfg.Agent.Model = "gemini-2.5-flash"
	}
	if cfg.Agent.APIKeyEnv == "" {
		cfg.Agent.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.Dashboard.HistoryDays <= 0 {
		cfg.Dashboard.HistoryDays = 90
	}
	if cfg.Dashboard.WatchEvery.Duration <= 0 {
		cfg.Dashboard.WatchEvery.Duration = 5 * time.Minute
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "fxd")
	}
	return filepath.Join(os.TempDir(), "fxd")
}

func validate(cfg *Config) error {
	for name, addr := range map[string]string{"backend.url": cfg.Backend.URL, "portfolio.url": cfg.Portfolio.URL} {
		u, err := url.Parse(addr)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s %q: want an http or https URL", name, addr)
		}
	}
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")
	cfg.Portfolio.URL = strings.TrimRight(cfg.Portfolio.URL, "/")

	if cfg.Dashboard.DefaultPair != "" {
		if _, err := fxdash.ParsePair(cfg.Dashboard.DefaultPair); err != nil {
			return fmt.Errorf("dashboard.default_pair: %w", err)
		}
	}
	if cfg.Dashboard.WatchEvery.Duration < time.Second {
		return errors.New("dashboard.watch_every must be at least 1s")
	}
	return nil
}

// APIKey returns the Gemini API key, or "" if none is set.
func (c *Config) APIKey() string { return os.Getenv(c.Agent.APIKeyEnv) }

// DefaultPair returns the configured default pair, if any.
func (c *Config) DefaultPair() (fxdash.Pair, bool) {
	p, err := fxdash.ParsePair(c.Dashboard.DefaultPair)
	return p, err == nil
}

// Verbose reports whether debug logs are requested by the environment.
func Verbose() bool {
	switch strings.ToLower(os.Getenv(EnvVerbose)) {
	case "", "0", "false", "no":
		return false
	}
	return true
}
