package fxdash

import (
	"fmt"
	"strings"
)

// Direction is the side of a trade, from the point of view of its base currency.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// ParseDirection parses "buy" or "sell", case insensitive.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid direction %q, want BUY or SELL", s)
	}
	return d, nil
}

// Valid reports whether d is Buy or Sell.
func (d Direction) Valid() bool { return d == Buy || d == Sell }

// Flip returns the opposite direction. Invalid directions are returned unchanged.
func (d Direction) Flip() Direction {
	switch d {
	case Buy:
		return Sell
	case Sell:
		return Buy
	default:
		return d
	}
}

func (d Direction) String() string { return string(d) }

// UnmarshalText normalizes the case, but does not validate: feeds are
// validated as a whole by their consumer.
func (d *Direction) UnmarshalText(text []byte) error {
	*d = Direction(strings.ToUpper(strings.TrimSpace(string(text))))
	return nil
}
