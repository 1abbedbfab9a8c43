// Package renderer renders the dashboard panels as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderRate renders the current rate panel.
func RenderRate(v RateView) string {
	return renderTemplate("rate", "rate.md", nil, v)
}

// RenderHistory renders the rate history panel.
func RenderHistory(v HistoryView) string {
	return renderTemplate("history", "history.md", nil, v)
}

// RenderInterest renders the central banks of a pair.
func RenderInterest(v InterestView) string {
	return renderTemplate("interest", "interest.md", nil, v)
}

// RenderBanks renders the table of all known central banks.
func RenderBanks(v BanksView) string {
	return renderTemplate("banks", "banks.md", nil, v)
}

// RenderTrades renders the trades of a pair, in the pair's quoting order.
func RenderTrades(v ExposureView) string {
	partials := map[string]string{"trades_table": "trades_table.md"}
	return renderTemplate("trades", "trades.md", partials, v)
}

// RenderExposure renders the exposure panel.
func RenderExposure(v ExposureView) string {
	partials := map[string]string{"trades_table": "trades_table.md"}
	return renderTemplate("exposure", "exposure.md", partials, v)
}

// RenderAnalysis renders an AI analysis.
func RenderAnalysis(v AnalysisView) string {
	partials := map[string]string{"outlook": "outlook.md"}
	return renderTemplate("analysis", "analysis.md", partials, v)
}

// RenderPreferences renders the user preferences.
func RenderPreferences(v PreferencesView) string {
	partials := map[string]string{"preset": "preset.md"}
	return renderTemplate("preferences", "preferences.md", partials, v)
}

// RenderInvalidPair renders the message shown instead of the pair panels.
func RenderInvalidPair(err error) string {
	return renderTemplate("invalid_pair", "invalid_pair.md", nil, err.Error())
}

// RenderUnavailable renders the one line note of a panel that failed.
func RenderUnavailable(panel string, err error) string {
	return renderTemplate("unavailable", "unavailable.md", nil, struct {
		Panel string
		Err   error
	}{panel, err})
}

// RenderDashboard renders every panel of d, in order. Missing panels render
// as an unavailable note.
func RenderDashboard(d Dashboard) string {
	if d.InvalidPair != nil {
		return RenderInvalidPair(d.InvalidPair)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Pair)
	section := func(name string, err error, render func() string) {
		if err != nil {
			b.WriteString(RenderUnavailable(name, err))
		} else {
			b.WriteString(render())
		}
		b.WriteString("\n")
	}
	if d.Rate != nil || d.RateErr != nil {
		section("Rate", d.RateErr, func() string { return RenderRate(*d.Rate) })
	}
	if d.History != nil || d.HistoryErr != nil {
		section("History", d.HistoryErr, func() string { return RenderHistory(*d.History) })
	}
	if d.Interest != nil || d.InterestErr != nil {
		section("Interest rates", d.InterestErr, func() string { return RenderInterest(*d.Interest) })
	}
	if d.Exposure != nil {
		section("Exposure", nil, func() string { return RenderExposure(*d.Exposure) })
	}
	if d.Analysis != nil || d.AnalysisErr != nil {
		section("Analysis", d.AnalysisErr, func() string { return RenderAnalysis(*d.Analysis) })
	}
	return b.String()
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
