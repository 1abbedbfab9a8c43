package fxdash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is an upper-case ISO-4217 currency code, like "EUR".
type Currency string

// ErrInvalidPair is matched by every *InvalidPairError.
var ErrInvalidPair = errors.New("invalid currency pair")

// InvalidPairError describes why a pair cannot be built.
type InvalidPairError struct {
	Base, Quote string
	Reason      string
}

func (e *InvalidPairError) Error() string {
	return fmt.Sprintf("invalid currency pair %s/%s: %s", e.Base, e.Quote, e.Reason)
}

func (e *InvalidPairError) Is(target error) bool { return target == ErrInvalidPair }

// ParseCurrency returns the Currency for a code, case insensitive.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 || money.GetCurrency(code) == nil {
		return "", fmt.Errorf("unknown currency code %q", code)
	}
	return Currency(code), nil
}

// Valid reports whether c is a known currency code.
func (c Currency) Valid() bool { return len(c) == 3 && money.GetCurrency(string(c)) != nil }

// Symbol returns the currency grapheme (e.g. "€") or the code itself if there is none.
func (c Currency) Symbol() string {
	if cur := money.GetCurrency(string(c)); cur != nil && cur.Grapheme != "" {
		return cur.Grapheme
	}
	return string(c)
}

func (c Currency) String() string { return string(c) }

// Pair is a currency pair. Base is priced in Quote: a rate of 1.10 on EUR/USD
// means one euro costs 1.10 dollars.
//
// A Pair built with NewPair or ParsePair always has two distinct, known
// currencies.
type Pair struct {
	Base  Currency
	Quote Currency
}

// NewPair validates base and quote codes and returns the Pair.
func NewPair(base, quote string) (Pair, error) {
	b, err := ParseCurrency(base)
	if err != nil {
		return Pair{}, &InvalidPairError{Base: base, Quote: quote, Reason: err.Error()}
	}
	q, err := ParseCurrency(quote)
	if err != nil {
		return Pair{}, &InvalidPairError{Base: base, Quote: quote, Reason: err.Error()}
	}
	if b == q {
		return Pair{}, &InvalidPairError{Base: base, Quote: quote, Reason: "base and quote are the same currency"}
	}
	return Pair{Base: b, Quote: q}, nil
}

// ParsePair parses "EUR/USD", "EUR-USD", "EUR USD" or "EURUSD".
func ParsePair(s string) (Pair, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "/- "); i >= 0 {
		return NewPair(s[:i], s[i+1:])
	}
	if len(s) == 6 {
		return NewPair(s[:3], s[3:])
	}
	return Pair{}, &InvalidPairError{Base: s, Reason: "want BASE/QUOTE"}
}

// MustPair is like NewPair but panics on error.
func MustPair(base, quote string) Pair {
	p, err := NewPair(base, quote)
	if err != nil {
		panic(err)
	}
	return p
}

// Inverse returns the pair with base and quote swapped.
func (p Pair) Inverse() Pair { return Pair{Base: p.Quote, Quote: p.Base} }

// IsZero reports whether p was never set.
func (p Pair) IsZero() bool { return p == Pair{} }

// String returns the conventional "BASE/QUOTE" notation.
func (p Pair) String() string { return string(p.Base) + "/" + string(p.Quote) }

// Set implements flag.Value so that a pair can be a command line flag.
func (p *Pair) Set(s string) error {
	pair, err := ParsePair(s)
	if err != nil {
		return err
	}
	*p = pair
	return nil
}

// UnmarshalText accepts any notation understood by ParsePair, or an empty
// text for the zero Pair.
func (p *Pair) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Pair{}
		return nil
	}
	return p.Set(string(text))
}

// MarshalText encodes the pair as "BASE/QUOTE".
func (p Pair) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return []byte{}, nil
	}
	return []byte(p.String()), nil
}
