package fxdash

import "github.com/shopspring/decimal"

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// FormatSignedMagnitude formats an amount compactly with an explicit sign:
// "+1.50M", "-2.5K", "+999". Zero is "+0".
func FormatSignedMagnitude(value decimal.Decimal) string {
	sign := "+"
	if value.IsNegative() {
		sign = "-"
	}
	abs := value.Abs()
	switch {
	case abs.GreaterThanOrEqual(million):
		return sign + abs.Div(million).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign + abs.Div(thousand).StringFixed(1) + "K"
	default:
		return sign + abs.StringFixed(0)
	}
}

// FormatRate formats an exchange rate with 4 decimals, or 2 for rates above
// 100 (e.g. USD/JPY).
func FormatRate(rate decimal.Decimal) string {
	if rate.Abs().GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return rate.StringFixed(2)
	}
	return rate.StringFixed(4)
}
