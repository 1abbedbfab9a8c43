package fxdash

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Style is the angle of an AI analysis.
type Style string

const (
	StyleBalanced    Style = "balanced"
	StyleTechnical   Style = "technical"
	StyleFundamental Style = "fundamental"
	StyleRisk        Style = "risk"
	StyleBrief       Style = "brief"
)

var styleInstructions = map[Style]string{
	StyleBalanced:    "Provide a balanced analysis considering both technical and fundamental factors.",
	StyleTechnical:   "Focus heavily on technical analysis, chart patterns, support/resistance levels, and momentum indicators.",
	StyleFundamental: "Focus on fundamental factors: economic data, central bank policies, trade balances, and macroeconomic trends.",
	StyleRisk:        "Focus on risk assessment, potential volatility, key risk events, and hedging considerations.",
	StyleBrief:       "Keep your analysis concise and to the point. Prioritize actionable insights.",
}

// Depth is the level of detail of an AI analysis.
type Depth string

const (
	DepthStandard Depth = "standard"
	DepthDetailed Depth = "detailed"
	DepthBrief    Depth = "brief"
)

var depthInstructions = map[Depth]string{
	DepthStandard: "Provide key insights with moderate detail.",
	DepthDetailed: "Provide comprehensive analysis with extensive reasoning and multiple factors.",
	DepthBrief:    "Keep responses short and focused on the most critical points only.",
}

// Source is a family of factors the analysis must consider.
type Source string

const (
	SourceInterestRates Source = "interest_rates"
	SourceCentralBanks  Source = "central_banks"
	SourceEconomic      Source = "economic"
	SourceTechnical     Source = "technical"
)

// AllSources in their canonical order.
var AllSources = []Source{SourceInterestRates, SourceCentralBanks, SourceEconomic, SourceTechnical}

var sourceInstructions = map[Source]string{
	SourceInterestRates: "Interest rate differentials and carry trade dynamics",
	SourceCentralBanks:  "Central bank policies and monetary policy outlook",
	SourceEconomic:      "Economic conditions and growth differentials",
	SourceTechnical:     "Technical factors and market sentiment",
}

// AnalysisPreset holds everything that parametrizes an AI analysis request.
type AnalysisPreset struct {
	Style          Style    `json:"style"`
	Depth          Depth    `json:"depth"`
	Sources        []Source `json:"sources"`
	ShortTermFocus string   `json:"shortTermFocus,omitempty"`
	LongTermFocus  string   `json:"longTermFocus,omitempty"`
	WebSearch      bool     `json:"useWebSearch,omitempty"`
}

// DefaultPreset is a balanced, standard analysis over all sources.
func DefaultPreset() AnalysisPreset {
	return AnalysisPreset{Style: StyleBalanced, Depth: DepthStandard, Sources: slices.Clone(AllSources)}
}

// ParseSources parses a comma separated list of sources, ignoring unknown ones.
func ParseSources(s string) []Source {
	var sources []Source
	for _, part := range strings.Split(s, ",") {
		sources = append(sources, Source(strings.ToLower(strings.TrimSpace(part))))
	}
	return canonicalSources(sources)
}

// canonicalSources keeps known sources, once, in canonical order.
func canonicalSources(in []Source) []Source {
	out := make([]Source, 0, len(AllSources))
	for _, s := range AllSources {
		if slices.Contains(in, s) {
			out = append(out, s)
		}
	}
	return out
}

// Normalize returns a copy of p where unknown style and depth are replaced by
// their defaults, unknown sources are dropped, and focus texts are trimmed.
//
// An empty source list is kept empty: the analysis then relies on general
// market factors.
func (p AnalysisPreset) Normalize() AnalysisPreset {
	if _, ok := styleInstructions[p.Style]; !ok {
		p.Style = StyleBalanced
	}
	if _, ok := depthInstructions[p.Depth]; !ok {
		p.Depth = DepthStandard
	}
	p.Sources = canonicalSources(p.Sources)
	p.ShortTermFocus = strings.TrimSpace(p.ShortTermFocus)
	p.LongTermFocus = strings.TrimSpace(p.LongTermFocus)
	return p
}

// Query returns the query parameters of the analysis endpoint for p.
func (p AnalysisPreset) Query() url.Values {
	p = p.Normalize()
	q := url.Values{}
	q.Set("style", string(p.Style))
	q.Set("depth", string(p.Depth))
	names := make([]string, len(p.Sources))
	for i, s := range p.Sources {
		names[i] = string(s)
	}
	q.Set("sources", strings.Join(names, ","))
	if p.ShortTermFocus != "" {
		q.Set("short_term_focus", p.ShortTermFocus)
	}
	if p.LongTermFocus != "" {
		q.Set("long_term_focus", p.LongTermFocus)
	}
	q.Set("use_web_search", strconv.FormatBool(p.WebSearch))
	return q
}

// MarketContext is the market data an analysis is grounded on.
type MarketContext struct {
	Pair Pair
	// Rate is the current rate, zero when unknown.
	Rate              decimal.Decimal
	BaseInterestRate  decimal.Decimal
	QuoteInterestRate decimal.Decimal
}

// Differential returns the base minus quote interest rate.
func (m MarketContext) Differential() decimal.Decimal {
	return m.BaseInterestRate.Sub(m.QuoteInterestRate)
}

// Prompt returns the analyst prompt for p in the given market context.
func (p AnalysisPreset) Prompt(m MarketContext) string {
	p = p.Normalize()

	var sources strings.Builder
	for _, s := range p.Sources {
		fmt.Fprintf(&sources, "- %s\n", sourceInstructions[s])
	}
	if len(p.Sources) == 0 {
		sources.WriteString("- General market factors\n")
	}

	rate := "unavailable"
	if !m.Rate.IsZero() {
		rate = FormatRate(m.Rate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional FX analyst. Analyze the %s currency pair.", m.Pair)
	if p.WebSearch {
		b.WriteString(" Search the web for recent analyst forecasts, price targets and market sentiment first.")
	}
	b.WriteString("\n\nCurrent Market Data:\n")
	fmt.Fprintf(&b, "- Currency Pair: %s\n", m.Pair)
	fmt.Fprintf(&b, "- Current Rate: %s\n", rate)
	fmt.Fprintf(&b, "- %s Interest Rate: %s%%\n", m.Pair.Base, m.BaseInterestRate.StringFixed(2))
	fmt.Fprintf(&b, "- %s Interest Rate: %s%%\n", m.Pair.Quote, m.QuoteInterestRate.StringFixed(2))
	fmt.Fprintf(&b, "- Interest Rate Differential: %s%%\n\n", m.Differential().StringFixed(2))
	fmt.Fprintf(&b, "Analysis Style: %s\n", styleInstructions[p.Style])
	fmt.Fprintf(&b, "Detail Level: %s\n\n", depthInstructions[p.Depth])
	fmt.Fprintf(&b, "Base your analysis on:\n%s", sources.String())
	if p.ShortTermFocus != "" {
		fmt.Fprintf(&b, "\nAdditional short-term focus: %s\n", p.ShortTermFocus)
	}
	if p.LongTermFocus != "" {
		fmt.Fprintf(&b, "\nAdditional long-term focus: %s\n", p.LongTermFocus)
	}
	b.WriteString(analysisFormat)
	if p.WebSearch {
		b.WriteString("Use REAL sources from your research, do not make up URLs. Cite price targets and institutions when available.\n")
	} else {
		b.WriteString("Provide relevant financial news sources (Reuters, Bloomberg, FXStreet, etc.).\n")
	}
	b.WriteString("\nReturn ONLY valid JSON.")
	return b.String()
}

const analysisFormat = `
Provide analysis in this JSON format:
{
    "shortTerm": {
        "trend": "Bullish" | "Bearish" | "Neutral",
        "summary": "1-2 sentence short-term (1-7 day) outlook",
        "details": "Detailed paragraph with reasoning",
        "sources": [{"name": "Source", "url": "https://..."}]
    },
    "longTerm": {
        "trend": "Bullish" | "Bearish" | "Neutral",
        "summary": "1-2 sentence mid/long-term (1-3 month) outlook",
        "details": "Detailed paragraph with reasoning",
        "sources": [{"name": "Source", "url": "https://..."}]
    }
}

`
