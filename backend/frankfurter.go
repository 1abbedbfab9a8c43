package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fxdash"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// FrankfurterURL is the public endpoint of the Frankfurter API.
const FrankfurterURL = "https://api.frankfurter.app"

// RateSource provides current rates.
type RateSource interface {
	Rate(ctx context.Context, pair fxdash.Pair) (fxdash.Quote, error)
}

// Frankfurter reads ECB reference rates from the Frankfurter API.
type Frankfurter struct {
	BaseURL string
	HTTP    *http.Client
}

// NewFrankfurter returns a Frankfurter client on the public endpoint.
func NewFrankfurter(client *http.Client) *Frankfurter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Frankfurter{BaseURL: FrankfurterURL, HTTP: client}
}

// Rate returns the latest reference rate of pair.
func (f *Frankfurter) Rate(ctx context.Context, pair fxdash.Pair) (fxdash.Quote, error) {
	// https://api.frankfurter.app/latest?from=EUR&to=USD
	// {"amount":1.0,"base":"EUR","date":"2025-03-04","rates":{"USD":1.0625}}
	query := url.Values{"from": {string(pair.Base)}, "to": {string(pair.Quote)}}
	addr := f.BaseURL + "/latest?" + query.Encode()

	var payload any
	if err := getJSON(ctx, f.HTTP, addr, &payload); err != nil {
		return fxdash.Quote{}, err
	}
	v, err := jsonpath.Get("$.rates."+string(pair.Quote), payload)
	if err != nil {
		return fxdash.Quote{}, fmt.Errorf("no %s rate in frankfurter response: %w", pair, err)
	}
	rate, ok := v.(float64)
	if !ok || rate <= 0 {
		return fxdash.Quote{}, fmt.Errorf("invalid %s rate in frankfurter response: %v", pair, v)
	}

	q := fxdash.Quote{
		Base:      pair.Base,
		Quote:     pair.Quote,
		Rate:      decimal.NewFromFloat(rate),
		Timestamp: time.Now().UTC(),
		Source:    "frankfurter",
	}
	if day, err := jsonpath.Get("$.date", payload); err == nil {
		if s, ok := day.(string); ok {
			if t, err := time.Parse(time.DateOnly, s); err == nil {
				q.Timestamp = t
			}
		}
	}
	return q, nil
}

// RateWithFallback returns the rate from the first source that succeeds.
func RateWithFallback(ctx context.Context, pair fxdash.Pair, sources ...RateSource) (fxdash.Quote, error) {
	var errs []error
	for _, src := range sources {
		q, err := src.Rate(ctx, pair)
		if err == nil {
			return q, nil
		}
		log.Warn().Err(err).Str("pair", pair.String()).Msg("rate source failed")
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return fxdash.Quote{}, fmt.Errorf("no rate source for %s", pair)
	}
	return fxdash.Quote{}, errors.Join(errs...)
}
