package fxdash

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// SelectTradesForPair returns the trades relevant to base/quote, normalized to
// that quoting order.
//
// A trade booked on base/quote is returned as is. A trade booked on
// quote/base has its direction flipped and its rate replaced by the
// reciprocal of the forward rate. Other trades are dropped. The input order is
// preserved and the result is never nil.
//
// base and quote must differ.
func SelectTradesForPair(trades []Trade, base, quote Currency) []NormalizedTrade {
	selected := make([]NormalizedTrade, 0)
	for _, t := range trades {
		switch {
		case t.BaseCurrency == base && t.QuoteCurrency == quote:
			selected = append(selected, NormalizedTrade{
				Date:      t.EntryDate,
				Direction: t.Direction,
				Rate:      t.ForwardRate,
				Notional:  t.Notional,
				Notes:     t.Notes,
			})
		case t.BaseCurrency == quote && t.QuoteCurrency == base:
			// forward rates are strictly positive.
			selected = append(selected, NormalizedTrade{
				Date:      t.EntryDate,
				Direction: t.Direction.Flip(),
				Rate:      one.Div(t.ForwardRate),
				Notional:  t.Notional,
				Notes:     t.Notes,
				Inverse:   true,
			})
		}
	}
	return selected
}

// NetExposureForPair returns the signed sum of the notionals: buys add, sells
// subtract. Positive is net long the pair's base currency.
func NetExposureForPair(trades []NormalizedTrade) decimal.Decimal {
	net := decimal.Zero
	for _, t := range trades {
		switch t.Direction {
		case Buy:
			net = net.Add(t.Notional)
		case Sell:
			net = net.Sub(t.Notional)
		}
	}
	return net
}

// PositionState qualifies a pair position.
type PositionState int

const (
	// NoTrades means no trade was booked on the pair, in either orientation.
	NoTrades PositionState = iota
	// Flat means trades exist and exactly offset each other.
	Flat
	Long
	Short
)

func (s PositionState) String() string {
	switch s {
	case NoTrades:
		return "no trades"
	case Flat:
		return "flat"
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return "unknown"
	}
}

// PairExposure is the portfolio's position on a pair.
type PairExposure struct {
	Pair   Pair              `json:"pair"`
	Net    decimal.Decimal   `json:"net"`
	Trades []NormalizedTrade `json:"trades"`
}

// NewPairExposure matches trades against pair and aggregates them.
func NewPairExposure(trades []Trade, pair Pair) PairExposure {
	normalized := SelectTradesForPair(trades, pair.Base, pair.Quote)
	return PairExposure{
		Pair:   pair,
		Net:    NetExposureForPair(normalized),
		Trades: normalized,
	}
}

// State tells a flat position apart from the absence of trades.
func (e PairExposure) State() PositionState {
	switch {
	case len(e.Trades) == 0:
		return NoTrades
	case e.Net.IsZero():
		return Flat
	case e.Net.IsPositive():
		return Long
	default:
		return Short
	}
}
