package fxdash

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a named item does not exist.
var ErrNotFound = errors.New("not found")

// Preferences are the user's dashboard settings, persisted as a single JSON
// object.
//
// The embedded preset is the one used when no named preset is requested.
type Preferences struct {
	AnalysisPreset
	Presets     map[string]AnalysisPreset `json:"presets,omitempty"`
	DefaultPair Pair                      `json:"defaultPair"`
	Watchlist   []Pair                    `json:"watchlist,omitempty"`
}

// DefaultPreferences returns the preferences of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		AnalysisPreset: DefaultPreset(),
		DefaultPair:    MustPair("EUR", "USD"),
	}
}

// LoadPreferences reads preferences from path. Missing keys keep their default
// value, and a missing file gives the default preferences.
func LoadPreferences(path string) (Preferences, error) {
	p := DefaultPreferences()
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("could not read preferences %q: %w", path, err)
	}
	if err := json.Unmarshal(content, &p); err != nil {
		return DefaultPreferences(), fmt.Errorf("could not decode preferences %q: %w", path, err)
	}
	p.AnalysisPreset = p.AnalysisPreset.Normalize()
	return p, nil
}

// SavePreferences writes p to path, atomically.
func SavePreferences(path string, p Preferences) error {
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create preferences folder %q: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return err
	}
	if _, err := f.Write(append(content, '\n')); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}

// Preset returns the named preset, or the base preset for an empty name.
func (p Preferences) Preset(name string) (AnalysisPreset, error) {
	if name == "" {
		return p.AnalysisPreset.Normalize(), nil
	}
	preset, ok := p.Presets[name]
	if !ok {
		return AnalysisPreset{}, fmt.Errorf("preset %q: %w", name, ErrNotFound)
	}
	return preset.Normalize(), nil
}

// SavePreset stores the base preset under name.
func (p *Preferences) SavePreset(name string) {
	if p.Presets == nil {
		p.Presets = make(map[string]AnalysisPreset)
	}
	p.Presets[name] = p.AnalysisPreset.Normalize()
}

// PresetNames returns the sorted names of the saved presets.
func (p Preferences) PresetNames() []string {
	names := make([]string, 0, len(p.Presets))
	for name := range p.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PreferenceKeys lists the keys accepted by Set.
var PreferenceKeys = []string{"style", "depth", "sources", "short", "long", "web", "pair", "watchlist"}

// Set updates a single preference from its textual value.
func (p *Preferences) Set(key, value string) error {
	switch key {
	case "style":
		s := Style(strings.ToLower(value))
		if _, ok := styleInstructions[s]; !ok {
			return fmt.Errorf("unknown style %q", value)
		}
		p.Style = s
	case "depth":
		d := Depth(strings.ToLower(value))
		if _, ok := depthInstructions[d]; !ok {
			return fmt.Errorf("unknown depth %q", value)
		}
		p.Depth = d
	case "sources":
		p.Sources = ParseSources(value)
	case "short":
		p.ShortTermFocus = strings.TrimSpace(value)
	case "long":
		p.LongTermFocus = strings.TrimSpace(value)
	case "web":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for web: %w", err)
		}
		p.WebSearch = b
	case "pair":
		pair, err := ParsePair(value)
		if err != nil {
			return err
		}
		p.DefaultPair = pair
	case "watchlist":
		var list []Pair
		for _, s := range strings.Split(value, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}
			pair, err := ParsePair(s)
			if err != nil {
				return err
			}
			list = append(list, pair)
		}
		p.Watchlist = list
	default:
		return fmt.Errorf("unknown preference %q, want one of %s", key, strings.Join(PreferenceKeys, ", "))
	}
	return nil
}
