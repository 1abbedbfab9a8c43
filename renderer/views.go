package renderer

import (
	"sort"

	"github.com/etnz/fxdash"
)

// RateView is the current rate of a pair.
type RateView struct {
	fxdash.Quote
}

// HistoryView is the rate history of a pair with its statistics.
type HistoryView struct {
	Pair    fxdash.Pair
	History fxdash.RateHistory
	Summary fxdash.HistorySummary
}

// NewHistoryView computes the statistics over the long window of h.
func NewHistoryView(pair fxdash.Pair, h fxdash.RateHistory) HistoryView {
	return HistoryView{Pair: pair, History: h, Summary: fxdash.SummarizeHistory(h.ThreeMonth.Data)}
}

// InterestView is the central banks of a pair.
type InterestView struct {
	Pair  fxdash.Pair
	Rates fxdash.PairInterestRates
}

// BanksView lists central banks by currency code.
type BanksView struct {
	Banks []fxdash.CentralBank
}

// NewBanksView sorts banks by currency code.
func NewBanksView(banks map[fxdash.Currency]fxdash.CentralBank) BanksView {
	v := BanksView{Banks: make([]fxdash.CentralBank, 0, len(banks))}
	for _, b := range banks {
		v.Banks = append(v.Banks, b)
	}
	sort.Slice(v.Banks, func(i, j int) bool { return v.Banks[i].Currency < v.Banks[j].Currency })
	return v
}

// CurrencyExposure is the portfolio net position in a currency, if any.
type CurrencyExposure struct {
	Currency fxdash.Currency
	Entry    fxdash.ExposureEntry
	Found    bool
}

// String formats the net position, or "n/a".
func (c CurrencyExposure) String() string {
	if !c.Found {
		return "n/a"
	}
	return fxdash.FormatSignedMagnitude(c.Entry.Net)
}

// ExposureView is the portfolio position on a pair.
type ExposureView struct {
	Pair     fxdash.Pair
	Exposure fxdash.PairExposure
	Base     CurrencyExposure
	Quote    CurrencyExposure
}

// NewExposureView matches trades against pair and looks up the currency
// exposure of both currencies.
func NewExposureView(pair fxdash.Pair, trades []fxdash.Trade, entries []fxdash.ExposureEntry) ExposureView {
	lookup := func(c fxdash.Currency) CurrencyExposure {
		e, found := fxdash.LookupExposure(entries, c)
		return CurrencyExposure{Currency: c, Entry: e, Found: found}
	}
	return ExposureView{
		Pair:     pair,
		Exposure: fxdash.NewPairExposure(trades, pair),
		Base:     lookup(pair.Base),
		Quote:    lookup(pair.Quote),
	}
}

// AnalysisView is an AI analysis of a pair.
type AnalysisView struct {
	Pair     fxdash.Pair
	Analysis fxdash.Analysis
}

// PreferencesView are the user preferences and where they are stored.
type PreferencesView struct {
	Path        string
	Preferences fxdash.Preferences
}

// Dashboard gathers the panels of a pair. A nil panel with a nil error is
// skipped.
type Dashboard struct {
	Pair fxdash.Pair
	// InvalidPair replaces every panel when set.
	InvalidPair error

	Rate        *RateView
	RateErr     error
	History     *HistoryView
	HistoryErr  error
	Interest    *InterestView
	InterestErr error
	Exposure    *ExposureView
	Analysis    *AnalysisView
	AnalysisErr error
}
