package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fxdash/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	presetFlags
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "AI analysis of a currency pair" }
func (*analyzeCmd) Usage() string {
	return `fxd analyze [-preset <name>] [-style <style>] [-depth <depth>] [-sources <list>] [-short <text>] [-long <text>] [-web] [-local] [<base> <quote> | <pair>]

  Shows a short term and a long term outlook of a pair.

  The analysis is asked to the backend. With -local, or when the backend
  fails, it is generated with Gemini when an API key is configured. Without
  API key, a demo analysis is shown.

  Settings come from the preferences, or from a named preset, and can be
  overridden by flags. See 'fxd topic presets'.

Usage Examples:
$ fxd analyze EUR USD
$ fxd analyze -preset cautious GBP USD
$ fxd analyze -style technical -web -local USD JPY
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) { c.presetFlags.SetFlags(f) }

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := pairArgs(f.Args())
	if err != nil {
		return usagePair(err)
	}
	preset, err := c.resolve(LoadPreferences(), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	analysis, err := a.analyze(ctx, pair, preset, c.local)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %s: %v\n", pair, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderAnalysis(renderer.AnalysisView{Pair: pair, Analysis: analysis}))
	return subcommands.ExitSuccess
}
