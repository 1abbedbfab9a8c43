package fxdash

import (
	"github.com/etnz/fxdash/date"
	"github.com/shopspring/decimal"
)

// Trade is a forward contract recorded by the portfolio service.
//
// Trades are owned by the portfolio service; this package only reads them.
// Valid trades have two different currencies and strictly positive
// ForwardRate and Notional.
type Trade struct {
	BaseCurrency  Currency        `json:"base_currency"`
	QuoteCurrency Currency        `json:"quote_currency"`
	Direction     Direction       `json:"direction"`
	ForwardRate   decimal.Decimal `json:"forward_rate"`
	Notional      decimal.Decimal `json:"notional"`
	EntryDate     date.Date       `json:"entry_date"`
	Notes         string          `json:"notes,omitempty"`
}

// Pair returns the trade's pair as booked. It is not validated.
func (t Trade) Pair() Pair { return Pair{Base: t.BaseCurrency, Quote: t.QuoteCurrency} }

// NormalizedTrade is a trade expressed in the quoting order of a given pair.
type NormalizedTrade struct {
	Date      date.Date       `json:"date"`
	Direction Direction       `json:"direction"`
	Rate      decimal.Decimal `json:"rate"`
	Notional  decimal.Decimal `json:"notional"`
	Notes     string          `json:"notes,omitempty"`
	// Inverse is true when the trade was booked on the inverse pair.
	Inverse bool `json:"inverse,omitempty"`
}

// SignedNotional returns the notional, negated for a sell.
func (t NormalizedTrade) SignedNotional() decimal.Decimal {
	if t.Direction == Sell {
		return t.Notional.Neg()
	}
	return t.Notional
}
