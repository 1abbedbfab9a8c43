package fxdash

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/etnz/fxdash/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2025-03-01T12:30:00.123456"`, time.Date(2025, 3, 1, 12, 30, 0, 123456000, time.UTC)},
		{`"2025-03-01T12:30:00Z"`, time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)},
		{`""`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var q Quote
			err := json.Unmarshal([]byte(`{"base":"EUR","quote":"USD","rate":1.0842,"timestamp":`+tt.in+`}`), &q)
			require.NoError(t, err)
			assert.Equal(t, EURUSD, q.Pair())
			assert.Equal(t, "1.0842", q.Rate.String())
			assert.True(t, tt.want.Equal(q.Timestamp), "got %v", q.Timestamp)
		})
	}

	var q Quote
	assert.Error(t, json.Unmarshal([]byte(`{"timestamp":"yesterday"}`), &q))
}

func TestRateHistory_UnmarshalJSON(t *testing.T) {
	const payload = `{
		"daily": {"open": 1.08, "close": 1.09, "data": [{"time": "2025-03-03", "rate": 1.08}, {"time": "2025-03-04", "rate": 1.09}]},
		"threeMonth": {"open": 1.04, "close": 1.09, "data": [{"date": "2025-03-04", "rate": 1.09}, {"date": "2024-12-04", "rate": 1.04}]}
	}`
	var h RateHistory

	require.NoError(t, json.Unmarshal([]byte(payload), &h))

	require.Len(t, h.Daily.Data, 2)
	assert.Equal(t, "2025-03-03", h.Daily.Data[0].Date.String())
	abs, pct := h.ThreeMonth.Change()
	assert.Equal(t, "0.05", abs.String())
	assert.Equal(t, "4.81", pct.StringFixed(2))

}

func TestPairInterestRates_UnmarshalJSON(t *testing.T) {
	const payload = `{
		"base": "EUR", "quote": "USD",
		"base_rate": 2.15, "base_bank": "European Central Bank", "base_last_decision": "down", "base_last_change": "2025-06-05", "base_days_at_rate": 120,
		"quote_rate": 4.5, "quote_bank": "Federal Reserve", "quote_last_decision": "unchanged", "quote_last_change": "2024-12-18", "quote_days_at_rate": 290,
		"differential": -2.35
	}`
	var r PairInterestRates

	require.NoError(t, json.Unmarshal([]byte(payload), &r))

	assert.Equal(t, Currency("EUR"), r.Base.Currency)
	assert.Equal(t, "European Central Bank", r.Base.Bank)
	assert.Equal(t, Cut, r.Base.LastDecision)
	assert.Equal(t, 120, r.Base.DaysAtRate)
	assert.Equal(t, "4.5", r.Quote.Rate.String())
	assert.Equal(t, "=", r.Quote.LastDecision.Arrow())
	assert.Equal(t, "-2.35", r.Differential.String())
	assert.True(t, r.Quote.Known())
	assert.False(t, CentralBank{Bank: "Unknown"}.Known())
}

func TestAnalysis_UnmarshalJSON(t *testing.T) {
	const payload = `{"shortTerm": {"trend": "Bullish", "summary": "up", "details": "because", "sources": [{"name": "Reuters", "url": "https://www.reuters.com"}]},
		"longTerm": {"trend": "Neutral", "summary": "flat", "details": "", "sources": []}}`
	var a Analysis

	require.NoError(t, json.Unmarshal([]byte(payload), &a))

	assert.Equal(t, Bullish, a.ShortTerm.Trend)
	assert.Equal(t, "Reuters", a.ShortTerm.Sources[0].Name)
	assert.Equal(t, Neutral, a.LongTerm.Trend)
}

func TestTrend_UnmarshalText(t *testing.T) {
	tests := []struct {
		in   string
		want Trend
	}{
		{`"Bullish"`, Bullish},
		{`"bullish"`, Bullish},
		{`" BEARISH "`, Bearish},
		{`"neutral"`, Neutral},
		{`"sideways"`, Neutral},
		{`""`, Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var o Outlook
			require.NoError(t, json.Unmarshal([]byte(`{"trend":`+tt.in+`}`), &o))
			assert.Equal(t, tt.want, o.Trend)
		})
	}
}

func TestRateHistory_Between(t *testing.T) {
	h := RateHistory{
		Daily: RatePeriod{Open: D(1.08), Close: D(1.09)},
		ThreeMonth: RatePeriod{Open: D(1.01), Close: D(1.09), Data: []RatePoint{
			{Date: date.MustParse("2025-01-01"), Rate: D(1.01)},
			{Date: date.MustParse("2025-02-01"), Rate: D(1.05)},
			{Date: date.MustParse("2025-03-01"), Rate: D(1.07)},
			{Date: date.MustParse("2025-04-01"), Rate: D(1.09)},
		}},
	}

	got := h.Between(date.NewRange(date.MustParse("2025-02-01"), date.MustParse("2025-03-15")))

	require.Len(t, got.ThreeMonth.Data, 2)
	assert.True(t, D(1.05).Equal(got.ThreeMonth.Open))
	assert.True(t, D(1.07).Equal(got.ThreeMonth.Close))
	assert.Equal(t, h.Daily, got.Daily, "the short window is kept")
	assert.Len(t, h.ThreeMonth.Data, 4, "h is not modified")

	open := h.Between(date.NewRange(date.MustParse("2025-03-01"), date.Date{}))
	assert.Len(t, open.ThreeMonth.Data, 2)

	empty := h.Between(date.NewRange(date.MustParse("2026-01-01"), date.Date{}))
	assert.Empty(t, empty.ThreeMonth.Data)
	assert.True(t, empty.ThreeMonth.Open.IsZero())
}
