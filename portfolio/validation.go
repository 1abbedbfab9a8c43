package portfolio

import (
	"strings"

	"github.com/etnz/fxdash"
	"github.com/rs/zerolog/log"
)

// ValidTrades normalizes currency codes and drops the trades the matcher
// cannot use: unknown or equal currencies, invalid direction, a rate or
// notional that is not strictly positive, or no entry date. Each drop is logged.
func ValidTrades(trades []fxdash.Trade) []fxdash.Trade {
	valid := make([]fxdash.Trade, 0, len(trades))
	for i, t := range trades {
		t.BaseCurrency = normalizeCode(t.BaseCurrency)
		t.QuoteCurrency = normalizeCode(t.QuoteCurrency)
		if reason := invalidTrade(t); reason != "" {
			log.Warn().Int("index", i).Str("pair", t.Pair().String()).Str("reason", reason).Msg("dropping trade")
			continue
		}
		valid = append(valid, t)
	}
	return valid
}

func invalidTrade(t fxdash.Trade) string {
	switch {
	case !t.BaseCurrency.Valid():
		return "unknown base currency"
	case !t.QuoteCurrency.Valid():
		return "unknown quote currency"
	case t.BaseCurrency == t.QuoteCurrency:
		return "base and quote are the same currency"
	case !t.Direction.Valid():
		return "invalid direction " + string(t.Direction)
	case !t.ForwardRate.IsPositive():
		return "forward rate is not positive"
	case !t.Notional.IsPositive():
		return "notional is not positive"
	case t.EntryDate.IsZero():
		return "missing entry date"
	}
	return ""
}

// ValidExposure normalizes currency codes and keeps the first entry of each
// currency. Entries with an empty code are dropped.
func ValidExposure(entries []fxdash.ExposureEntry) []fxdash.ExposureEntry {
	valid := make([]fxdash.ExposureEntry, 0, len(entries))
	seen := make(map[fxdash.Currency]struct{}, len(entries))
	for _, e := range entries {
		e.Currency = normalizeCode(e.Currency)
		if e.Currency == "" {
			log.Warn().Str("net", e.Net.String()).Msg("dropping exposure without currency")
			continue
		}
		if _, ok := seen[e.Currency]; ok {
			log.Warn().Str("currency", e.Currency.String()).Msg("duplicated exposure, keeping the first")
			continue
		}
		seen[e.Currency] = struct{}{}
		valid = append(valid, e)
	}
	return valid
}

func normalizeCode(c fxdash.Currency) fxdash.Currency {
	return fxdash.Currency(strings.ToUpper(strings.TrimSpace(string(c))))
}
