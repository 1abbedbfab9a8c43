package fxdash

import "github.com/shopspring/decimal"

// ExposureEntry is the portfolio's net position in one currency.
// Net is positive when the portfolio is net long that currency.
type ExposureEntry struct {
	Currency Currency        `json:"currency"`
	Net      decimal.Decimal `json:"net"`
}

// LookupExposure returns the entry for currency, and false if the portfolio
// holds no entry for it. An entry with a zero net is found.
func LookupExposure(entries []ExposureEntry, currency Currency) (ExposureEntry, bool) {
	for _, e := range entries {
		if e.Currency == currency {
			return e, true
		}
	}
	return ExposureEntry{}, false
}
