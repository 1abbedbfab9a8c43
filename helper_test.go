package fxdash

import (
	"github.com/etnz/fxdash/date"
	"github.com/shopspring/decimal"
)

var (
	EURUSD = MustPair("EUR", "USD")
	USDEUR = MustPair("USD", "EUR")
	GBPUSD = MustPair("GBP", "USD")
)

// D is a helper for tests to create a decimal from a const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// trade is a helper for tests to create a trade.
func trade(base, quote Currency, dir Direction, rate, notional float64, on string) Trade {
	return Trade{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Direction:     dir,
		ForwardRate:   D(rate),
		Notional:      D(notional),
		EntryDate:     date.MustParse(on),
	}
}
