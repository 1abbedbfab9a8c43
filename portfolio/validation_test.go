package portfolio

import (
	"testing"

	"github.com/etnz/fxdash"
	"github.com/etnz/fxdash/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidTrades(t *testing.T) {
	ok := eurusd(fxdash.Buy, 100)
	lower := ok
	lower.BaseCurrency = " eur"
	same := ok
	same.QuoteCurrency = "EUR"
	noDir := ok
	noDir.Direction = ""
	zeroRate := ok
	zeroRate.ForwardRate = decimal.Zero
	negNotional := ok
	negNotional.Notional = decimal.NewFromInt(-1)
	noDate := ok
	noDate.EntryDate = date.Date{}

	tests := []struct {
		name  string
		trade fxdash.Trade
		keep  bool
	}{
		{"valid", ok, true},
		{"lower case code", lower, true},
		{"same currency", same, false},
		{"no direction", noDir, false},
		{"zero rate", zeroRate, false},
		{"negative notional", negNotional, false},
		{"no entry date", noDate, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidTrades([]fxdash.Trade{tt.trade})
			if !tt.keep {
				assert.Empty(t, got)
				return
			}
			if assert.Len(t, got, 1) {
				assert.Equal(t, fxdash.Currency("EUR"), got[0].BaseCurrency)
			}
		})
	}
}

func TestValidTrades_Nil(t *testing.T) {
	assert.NotNil(t, ValidTrades(nil))
	assert.NotNil(t, ValidExposure(nil))
}
