package fxdash

import (
	"math"

	"github.com/etnz/fxdash/date"
	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	smaPeriod = 20
	rsiPeriod = 14
)

// HistorySummary are descriptive statistics of a rate history.
type HistorySummary struct {
	Points    int
	From, To  date.Date
	Open      float64
	Close     float64
	Change    float64
	ChangePct float64
	Min, Max  float64
	Mean      float64
	StdDev    float64
	// SMA20 and RSI14 are nil when the series is too short.
	SMA20 *float64
	RSI14 *float64
}

// SummarizeHistory computes statistics over points, taken in chronological
// order. When two points share a day the last one wins.
func SummarizeHistory(points []RatePoint) HistorySummary {
	series := new(date.History[float64])
	for _, p := range points {
		series.Append(p.Date, p.Rate.InexactFloat64())
	}
	if series.Len() == 0 {
		return HistorySummary{}
	}
	closes := series.Series()

	s := HistorySummary{
		Points: len(closes),
		Open:   closes[0],
		Close:  closes[len(closes)-1],
		Min:    floats.Min(closes),
		Max:    floats.Max(closes),
		Mean:   stat.Mean(closes, nil),
	}
	s.From, _ = series.First()
	s.To, _ = series.Latest()
	s.Change = s.Close - s.Open
	if s.Open != 0 {
		s.ChangePct = s.Change / s.Open * 100
	}
	if len(closes) > 1 {
		s.StdDev = stat.StdDev(closes, nil)
	}
	s.SMA20 = lastIndicator(closes, smaPeriod, smaPeriod, talib.Sma)
	s.RSI14 = lastIndicator(closes, rsiPeriod+1, rsiPeriod, talib.Rsi)
	return s
}

// lastIndicator returns the last value of a talib indicator, or nil if the
// series has fewer than min points.
func lastIndicator(closes []float64, min, period int, indicator func([]float64, int) []float64) *float64 {
	if len(closes) < min {
		return nil
	}
	out := indicator(closes, period)
	if len(out) == 0 {
		return nil
	}
	v := out[len(out)-1]
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
