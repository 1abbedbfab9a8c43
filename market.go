package fxdash

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/fxdash/date"
	"github.com/shopspring/decimal"
)

// Quote is the current rate of a pair.
type Quote struct {
	Base      Currency        `json:"base"`
	Quote     Currency        `json:"quote"`
	Rate      decimal.Decimal `json:"rate"`
	Timestamp time.Time       `json:"timestamp"`
	// Source names the provider that served the quote.
	Source string `json:"-"`
}

// Pair returns the quoted pair.
func (q Quote) Pair() Pair { return Pair{Base: q.Base, Quote: q.Quote} }

// timestampLayouts are tried in order; zoneless timestamps are taken as UTC.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999"}

// UnmarshalJSON decodes a quote whose timestamp may lack a time zone.
func (q *Quote) UnmarshalJSON(b []byte) error {
	var raw struct {
		Base      Currency        `json:"base"`
		Quote     Currency        `json:"quote"`
		Rate      decimal.Decimal `json:"rate"`
		Timestamp string          `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*q = Quote{Base: raw.Base, Quote: raw.Quote, Rate: raw.Rate}
	if raw.Timestamp == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw.Timestamp); err == nil {
			q.Timestamp = t
			return nil
		}
	}
	return fmt.Errorf("invalid quote timestamp %q", raw.Timestamp)
}

// RatePoint is one observation of a rate history.
type RatePoint struct {
	Date date.Date       `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// UnmarshalJSON accepts the day under either "date" or "time".
func (p *RatePoint) UnmarshalJSON(b []byte) error {
	var raw struct {
		Date *date.Date      `json:"date"`
		Time *date.Date      `json:"time"`
		Rate decimal.Decimal `json:"rate"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Rate = raw.Rate
	switch {
	case raw.Date != nil:
		p.Date = *raw.Date
	case raw.Time != nil:
		p.Date = *raw.Time
	}
	return nil
}

// RatePeriod is a window of a rate history.
type RatePeriod struct {
	Open  decimal.Decimal `json:"open"`
	Close decimal.Decimal `json:"close"`
	Data  []RatePoint     `json:"data"`
}

// Change returns the absolute and relative (in percent) change from open to close.
// The relative change is zero when open is zero.
func (p RatePeriod) Change() (abs, pct decimal.Decimal) {
	abs = p.Close.Sub(p.Open)
	if p.Open.IsZero() {
		return abs, decimal.Zero
	}
	return abs, abs.Div(p.Open).Mul(decimal.NewFromInt(100))
}

// RateHistory is the recent history of a pair.
type RateHistory struct {
	Daily      RatePeriod `json:"daily"`
	ThreeMonth RatePeriod `json:"threeMonth"`
}

// Between returns h with its long window restricted to the points in r.
// The open and close of the restricted window are its first and last points.
func (h RateHistory) Between(r date.Range) RateHistory {
	var data []RatePoint
	for _, p := range h.ThreeMonth.Data {
		if r.Contains(p.Date) {
			data = append(data, p)
		}
	}
	h.ThreeMonth = RatePeriod{Data: data}
	if len(data) > 0 {
		h.ThreeMonth.Open, h.ThreeMonth.Close = data[0].Rate, data[len(data)-1].Rate
	}
	return h
}

// Decision is the last move of a central bank.
type Decision string

const (
	Hike      Decision = "up"
	Cut       Decision = "down"
	Unchanged Decision = "unchanged"
)

// Arrow returns a one character glyph for the decision.
func (d Decision) Arrow() string {
	switch d {
	case Hike:
		return "▲"
	case Cut:
		return "▼"
	default:
		return "="
	}
}

// CentralBank is the policy rate of a currency.
type CentralBank struct {
	Currency     Currency        `json:"currency,omitempty"`
	Rate         decimal.Decimal `json:"rate"`
	Bank         string          `json:"bank"`
	LastChange   string          `json:"last_change"`
	LastDecision Decision        `json:"last_decision"`
	PreviousRate decimal.Decimal `json:"previous_rate"`
	DaysAtRate   int             `json:"days_at_rate"`
}

// Known reports whether the backend knows this currency's central bank.
func (c CentralBank) Known() bool { return c.Bank != "" && c.Bank != "Unknown" }

// PairInterestRates are the policy rates of both currencies of a pair.
type PairInterestRates struct {
	Base         CentralBank
	Quote        CentralBank
	Differential decimal.Decimal
}

// UnmarshalJSON decodes the backend's flat, prefixed representation.
func (r *PairInterestRates) UnmarshalJSON(b []byte) error {
	var raw struct {
		Base              Currency        `json:"base"`
		Quote             Currency        `json:"quote"`
		BaseRate          decimal.Decimal `json:"base_rate"`
		BaseBank          string          `json:"base_bank"`
		BaseLastDecision  Decision        `json:"base_last_decision"`
		BaseLastChange    string          `json:"base_last_change"`
		BaseDaysAtRate    int             `json:"base_days_at_rate"`
		QuoteRate         decimal.Decimal `json:"quote_rate"`
		QuoteBank         string          `json:"quote_bank"`
		QuoteLastDecision Decision        `json:"quote_last_decision"`
		QuoteLastChange   string          `json:"quote_last_change"`
		QuoteDaysAtRate   int             `json:"quote_days_at_rate"`
		Differential      decimal.Decimal `json:"differential"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = PairInterestRates{
		Base: CentralBank{
			Currency:     raw.Base,
			Rate:         raw.BaseRate,
			Bank:         raw.BaseBank,
			LastChange:   raw.BaseLastChange,
			LastDecision: raw.BaseLastDecision,
			DaysAtRate:   raw.BaseDaysAtRate,
		},
		Quote: CentralBank{
			Currency:     raw.Quote,
			Rate:         raw.QuoteRate,
			Bank:         raw.QuoteBank,
			LastChange:   raw.QuoteLastChange,
			LastDecision: raw.QuoteLastDecision,
			DaysAtRate:   raw.QuoteDaysAtRate,
		},
		Differential: raw.Differential,
	}
	return nil
}

// Trend is the direction called by an outlook.
type Trend string

const (
	Bullish Trend = "Bullish"
	Bearish Trend = "Bearish"
	Neutral Trend = "Neutral"
)

// UnmarshalText accepts any case. Models sometimes answer with an unknown
// trend, or none: it reads as Neutral.
func (t *Trend) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "bullish":
		*t = Bullish
	case "bearish":
		*t = Bearish
	default:
		*t = Neutral
	}
	return nil
}

// SourceLink is a reference cited by an analysis.
type SourceLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Outlook is an analysis over one horizon.
type Outlook struct {
	Trend   Trend        `json:"trend"`
	Summary string       `json:"summary"`
	Details string       `json:"details"`
	Sources []SourceLink `json:"sources"`
}

// Analysis is an AI commentary on a pair.
type Analysis struct {
	ShortTerm Outlook `json:"shortTerm"`
	LongTerm  Outlook `json:"longTerm"`
	// Origin tells who produced the analysis (backend, local model, demo).
	Origin string `json:"-"`
}
