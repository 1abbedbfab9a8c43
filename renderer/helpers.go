package renderer

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/fxdash"
	"github.com/shopspring/decimal"
)

var funcs = template.FuncMap{
	"signed": fxdash.FormatSignedMagnitude,
	"rate":   fxdash.FormatRate,
	"fixed":  func(d decimal.Decimal, places int) string { return d.StringFixed(int32(places)) },
	"num":    func(v float64) string { return fmt.Sprintf("%.4f", v) },
	"pct":    func(v float64) string { return fmt.Sprintf("%+.2f%%", v) },
	"dpct":   func(d decimal.Decimal) string { return signedFixed(d, 2) + "%" },
	"opt":    optional,
	"change": change,
	"when":   when,
	"cell":   cell,
}

// signedFixed formats d with places decimals and an explicit sign.
func signedFixed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if !d.IsNegative() {
		s = "+" + s
	}
	return s
}

// change formats the move of a rate period: "+0.0050 (+0.46%)".
func change(p fxdash.RatePeriod) string {
	abs, pct := p.Change()
	return fmt.Sprintf("%s (%s%%)", signedFixed(abs, 4), signedFixed(pct, 2))
}

// optional formats an indicator that may be unavailable.
func optional(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", *v)
}

// when formats a timestamp, or "unknown time".
func when(t time.Time) string {
	if t.IsZero() {
		return "unknown time"
	}
	return t.Format("2006-01-02 15:04 MST")
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
