package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/etnz/fxdash"
)

// DefaultHistoryDays is the history window used when none is given.
const DefaultHistoryDays = 90

func pairPath(prefix string, pair fxdash.Pair) string {
	return fmt.Sprintf("%s/%s/%s", prefix, url.PathEscape(string(pair.Base)), url.PathEscape(string(pair.Quote)))
}

// Rate returns the current rate of pair.
func (c *Client) Rate(ctx context.Context, pair fxdash.Pair) (fxdash.Quote, error) {
	var q fxdash.Quote
	if err := c.get(ctx, pairPath("/api/rates", pair), nil, &q); err != nil {
		return fxdash.Quote{}, err
	}
	if q.Base == "" {
		q.Base, q.Quote = pair.Base, pair.Quote
	}
	q.Source = "backend"
	return q, nil
}

// History returns the rate history of pair over the last days. Non positive
// days means DefaultHistoryDays.
func (c *Client) History(ctx context.Context, pair fxdash.Pair, days int) (fxdash.RateHistory, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	var h fxdash.RateHistory
	query := url.Values{"days": {strconv.Itoa(days)}}
	if err := c.get(ctx, pairPath("/api/rates", pair)+"/history", query, &h); err != nil {
		return fxdash.RateHistory{}, err
	}
	return h, nil
}

// InterestRates returns the central bank rates of both currencies of pair.
func (c *Client) InterestRates(ctx context.Context, pair fxdash.Pair) (fxdash.PairInterestRates, error) {
	var r fxdash.PairInterestRates
	if err := c.get(ctx, pairPath("/api/interest-rates", pair), nil, &r); err != nil {
		return fxdash.PairInterestRates{}, err
	}
	if r.Base.Currency == "" {
		r.Base.Currency, r.Quote.Currency = pair.Base, pair.Quote
	}
	return r, nil
}

// AllInterestRates returns the central bank rates of every currency known to
// the backend.
func (c *Client) AllInterestRates(ctx context.Context) (map[fxdash.Currency]fxdash.CentralBank, error) {
	var raw map[string]fxdash.CentralBank
	if err := c.get(ctx, "/api/interest-rates/", nil, &raw); err != nil {
		return nil, err
	}
	banks := make(map[fxdash.Currency]fxdash.CentralBank, len(raw))
	for code, bank := range raw {
		cur, err := fxdash.ParseCurrency(code)
		if err != nil {
			continue
		}
		bank.Currency = cur
		banks[cur] = bank
	}
	return banks, nil
}

// Analyze requests an AI analysis of pair.
func (c *Client) Analyze(ctx context.Context, pair fxdash.Pair, preset fxdash.AnalysisPreset) (fxdash.Analysis, error) {
	var a fxdash.Analysis
	if err := c.get(ctx, pairPath("/api/ai/analyze", pair), preset.Query(), &a); err != nil {
		return fxdash.Analysis{}, err
	}
	a.Origin = "backend"
	return a, nil
}
