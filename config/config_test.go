package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// write writes a config file in a temporary folder, and makes it the current folder
// so that no .env file is picked up.
func write(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "fxd.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvPortfolioURL, "")

	cfg, err := Load("missing.toml")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, "http://localhost:8000/api/portfolio", cfg.Portfolio.URL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout.Duration)
	assert.Equal(t, "gemini-2.5-flash", cfg.Agent.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.Agent.APIKeyEnv)
	assert.Equal(t, 90, cfg.Dashboard.HistoryDays)
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.WatchEvery.Duration)
	assert.NotEmpty(t, cfg.Cache.Dir)
	_, ok := cfg.DefaultPair()
	assert.False(t, ok)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvPortfolioURL, "")
	path := write(t, `
[backend]
url = "https://fx.example.com/"
timeout = "5s"

[portfolio]
url = "https://book.example.com"

[cache]
disabled = true

[agent]
api_key_env = "MY_GEMINI_KEY"

[dashboard]
default_pair = "gbp/usd"
watch_every = "1m"
`)
	t.Setenv("MY_GEMINI_KEY", "secret")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://fx.example.com", cfg.Backend.URL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout.Duration)
	assert.Equal(t, "https://book.example.com", cfg.Portfolio.URL)
	assert.True(t, cfg.Cache.Disabled)
	assert.Equal(t, "secret", cfg.APIKey())
	assert.Equal(t, time.Minute, cfg.Dashboard.WatchEvery.Duration)
	pair, ok := cfg.DefaultPair()
	require.True(t, ok)
	assert.Equal(t, "GBP/USD", pair.String())
}

func TestLoad_Env(t *testing.T) {
	path := write(t, `[backend]
url = "https://fx.example.com"
`)
	require.NoError(t, os.WriteFile(".env", []byte("FXD_PORTFOLIO_URL=http://from-dotenv:9000\n"), 0o644))
	t.Setenv(EnvBackendURL, "http://override:8000")
	// godotenv does not override variables already set.
	t.Setenv(EnvPortfolioURL, "")
	os.Unsetenv(EnvPortfolioURL)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://override:8000", cfg.Backend.URL)
	assert.Equal(t, "http://from-dotenv:9000", cfg.Portfolio.URL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvPortfolioURL, "")
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `[backend`},
		{"scheme", "[backend]\nurl = \"ftp://fx.example.com\""},
		{"duration", "[backend]\ntimeout = \"soon\""},
		{"pair", "[dashboard]\ndefault_pair = \"EUR/EUR\""},
		{"watch", "[dashboard]\nwatch_every = \"10ms\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestVerbose(t *testing.T) {
	for v, want := range map[string]bool{"": false, "0": false, "false": false, "1": true, "yes": true} {
		t.Setenv(EnvVerbose, v)
		assert.Equal(t, want, Verbose(), "FXD_VERBOSE=%q", v)
	}
}
