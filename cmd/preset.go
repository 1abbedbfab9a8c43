package cmd

import (
	"errors"
	"flag"
	"slices"

	"github.com/etnz/fxdash"
)

// presetFlags select the analysis preset of a command, and override its
// settings.
type presetFlags struct {
	name    string
	style   string
	depth   string
	sources string
	short   string
	long    string
	web     bool
	local   bool
}

var presetKeys = []string{"style", "depth", "sources", "short", "long", "web"}

func (p *presetFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "preset", "", "Named preset to analyze with (default the preferred settings)")
	f.StringVar(&p.style, "style", "", "Analysis style: balanced, technical, fundamental, risk or brief")
	f.StringVar(&p.depth, "depth", "", "Analysis depth: standard, detailed or brief")
	f.StringVar(&p.sources, "sources", "", "Comma separated sources: interest_rates, central_banks, economic, technical")
	f.StringVar(&p.short, "short", "", "Short term focus")
	f.StringVar(&p.long, "long", "", "Long term focus")
	f.BoolVar(&p.web, "web", false, "Let the model search the web")
	f.BoolVar(&p.local, "local", false, "Analyze locally instead of asking the backend")
}

// resolve returns the selected preset with the flags set on the command line
// applied over it.
func (p *presetFlags) resolve(prefs fxdash.Preferences, f *flag.FlagSet) (fxdash.AnalysisPreset, error) {
	base, err := prefs.Preset(p.name)
	if err != nil {
		return fxdash.AnalysisPreset{}, err
	}
	prefs.AnalysisPreset = base
	var errs []error
	f.Visit(func(fl *flag.Flag) {
		if slices.Contains(presetKeys, fl.Name) {
			errs = append(errs, prefs.Set(fl.Name, fl.Value.String()))
		}
	})
	if err := errors.Join(errs...); err != nil {
		return fxdash.AnalysisPreset{}, err
	}
	return prefs.AnalysisPreset.Normalize(), nil
}
