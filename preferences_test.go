package fxdash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreferences_Missing(t *testing.T) {
	p, err := LoadPreferences(filepath.Join(t.TempDir(), "prefs.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestLoadPreferences_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"style":"technical","defaultPair":"GBP/USD"}`), 0o644))

	p, err := LoadPreferences(path)

	require.NoError(t, err)
	assert.Equal(t, StyleTechnical, p.Style)
	assert.Equal(t, DepthStandard, p.Depth)
	assert.Equal(t, AllSources, p.Sources)
	assert.Equal(t, GBPUSD, p.DefaultPair)
}

func TestLoadPreferences_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"style":`), 0o644))

	p, err := LoadPreferences(path)

	assert.Error(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestSavePreferences_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	p := DefaultPreferences()
	require.NoError(t, p.Set("depth", "detailed"))
	require.NoError(t, p.Set("watchlist", "eur/usd, gbpusd"))
	p.SavePreset("deep")
	require.NoError(t, p.Set("depth", "brief"))

	require.NoError(t, SavePreferences(path, p))
	got, err := LoadPreferences(path)

	require.NoError(t, err)
	assert.Equal(t, DepthBrief, got.Depth)
	assert.Equal(t, []Pair{EURUSD, GBPUSD}, got.Watchlist)
	assert.Equal(t, []string{"deep"}, got.PresetNames())
	deep, err := got.Preset("deep")
	require.NoError(t, err)
	assert.Equal(t, DepthDetailed, deep.Depth)
}

func TestPreferences_Preset(t *testing.T) {
	p := DefaultPreferences()

	base, err := p.Preset("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPreset(), base)

	_, err = p.Preset("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreferences_Set(t *testing.T) {
	p := DefaultPreferences()

	assert.NoError(t, p.Set("style", "FUNDAMENTAL"))
	assert.Equal(t, StyleFundamental, p.Style)
	assert.NoError(t, p.Set("web", "true"))
	assert.True(t, p.WebSearch)
	assert.NoError(t, p.Set("short", "  NFP  "))
	assert.Equal(t, "NFP", p.ShortTermFocus)

	assert.Error(t, p.Set("style", "poetic"))
	assert.Error(t, p.Set("web", "maybe"))
	assert.ErrorIs(t, p.Set("pair", "EUR/EUR"), ErrInvalidPair)
	assert.Error(t, p.Set("colour", "blue"))
}
