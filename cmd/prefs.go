package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fxdash"
	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
)

// settings collects repeated key=value flags.
type settings []string

func (s *settings) String() string { return strings.Join(*s, ",") }
func (s *settings) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("invalid setting %q, want key=value", v)
	}
	*s = append(*s, v)
	return nil
}

type prefsCmd struct {
	set    settings
	save   string
	delete string
	reset  bool
}

func (*prefsCmd) Name() string     { return "prefs" }
func (*prefsCmd) Synopsis() string { return "show or change the preferences" }
func (*prefsCmd) Usage() string {
	return `fxd prefs [-reset] [-set <key>=<value>]... [-save <name>] [-delete <name>]

  Shows the preferences: the preferred pair, the watchlist, the analysis
  settings and the named presets.

  -set changes a setting, one of: ` + strings.Join(fxdash.PreferenceKeys, ", ") + `.
  -save stores the current analysis settings as a named preset.

Usage Examples:
$ fxd prefs -set pair=GBP/USD
$ fxd prefs -set style=risk -set sources=interest_rates,central_banks
$ fxd prefs -save cautious
`
}

func (c *prefsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.set, "set", "Change a setting, as key=value. Can be repeated")
	f.StringVar(&c.save, "save", "", "Save the analysis settings as a named preset")
	f.StringVar(&c.delete, "delete", "", "Delete a named preset")
	f.BoolVar(&c.reset, "reset", false, "Reset the preferences to their defaults, keeping the presets")
}

func (c *prefsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	path := PreferencesPath()
	prefs := LoadPreferences()

	changed, err := c.apply(&prefs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if changed {
		if err := fxdash.SavePreferences(path, prefs); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving preferences: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.RenderPreferences(renderer.PreferencesView{Path: path, Preferences: prefs}))
	return subcommands.ExitSuccess
}

// apply the flags to prefs, and reports whether anything changed.
func (c *prefsCmd) apply(prefs *fxdash.Preferences) (bool, error) {
	changed := false
	if c.reset {
		presets := prefs.Presets
		*prefs = fxdash.DefaultPreferences()
		prefs.Presets = presets
		changed = true
	}
	for _, kv := range c.set {
		key, value, _ := strings.Cut(kv, "=")
		if err := prefs.Set(strings.TrimSpace(key), value); err != nil {
			return false, err
		}
		changed = true
	}
	if c.delete != "" {
		if _, ok := prefs.Presets[c.delete]; !ok {
			return false, fmt.Errorf("preset %q: %w", c.delete, fxdash.ErrNotFound)
		}
		delete(prefs.Presets, c.delete)
		changed = true
	}
	if c.save != "" {
		prefs.SavePreset(c.save)
		changed = true
	}
	return changed, nil
}
