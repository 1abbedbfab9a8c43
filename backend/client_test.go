package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/etnz/fxdash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eurusd = fxdash.MustPair("EUR", "USD")

// recorder keeps the URLs requested from a test server.
type recorder struct {
	mu   sync.Mutex
	urls []*url.URL
}

func (r *recorder) last() *url.URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.urls[len(r.urls)-1]
}

// serve returns a backend client on a test server answering each path with
// its body, and 503 otherwise.
func serve(t *testing.T, routes map[string]string) (*Client, *recorder) {
	t.Helper()
	rec := new(recorder)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.urls = append(rec.urls, r.URL)
		rec.mu.Unlock()
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"detail":"Unable to fetch exchange rate"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client()), rec
}

func TestClient_Rate(t *testing.T) {
	c, _ := serve(t, map[string]string{
		"/api/rates/EUR/USD": `{"base":"EUR","quote":"USD","rate":1.0842,"timestamp":"2025-03-04T10:00:00.5"}`,
	})

	q, err := c.Rate(context.Background(), eurusd)

	require.NoError(t, err)
	assert.Equal(t, eurusd, q.Pair())
	assert.Equal(t, "1.0842", q.Rate.String())
	assert.Equal(t, "backend", q.Source)
}

func TestClient_StatusError(t *testing.T) {
	c, _ := serve(t, nil)

	_, err := c.Rate(context.Background(), eurusd)

	var serr *StatusError
	require.True(t, errors.As(err, &serr), "got %T", err)
	assert.Equal(t, http.StatusServiceUnavailable, serr.Status)
	assert.Equal(t, "Unable to fetch exchange rate", serr.Detail)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_History(t *testing.T) {
	c, rec := serve(t, map[string]string{
		"/api/rates/EUR/USD/history": `{"daily":{"open":1.08,"close":1.09,"data":[]},"threeMonth":{"open":1.04,"close":1.09,"data":[{"date":"2025-03-04","rate":1.09}]}}`,
	})

	h, err := c.History(context.Background(), eurusd, 0)

	require.NoError(t, err)
	assert.Equal(t, "90", rec.last().Query().Get("days"))
	assert.Equal(t, "1.04", h.ThreeMonth.Open.String())
	assert.Len(t, h.ThreeMonth.Data, 1)
}

func TestClient_InterestRates(t *testing.T) {
	c, _ := serve(t, map[string]string{
		"/api/interest-rates/EUR/USD": `{"base":"EUR","quote":"USD","base_rate":2.75,"base_bank":"European Central Bank","base_last_decision":"down","base_last_change":"2025-12-12","base_days_at_rate":10,"quote_rate":4.25,"quote_bank":"Federal Reserve","quote_last_decision":"down","quote_last_change":"2025-12-18","quote_days_at_rate":4,"differential":-1.5}`,
		"/api/interest-rates/":        `{"usd":{"rate":4.25,"bank":"Federal Reserve","last_change":"2025-12-18","last_decision":"down","previous_rate":4.5,"days_at_rate":4},"ZZZ":{"rate":1}}`,
	})

	r, err := c.InterestRates(context.Background(), eurusd)
	require.NoError(t, err)
	assert.Equal(t, "European Central Bank", r.Base.Bank)
	assert.Equal(t, "-1.5", r.Differential.String())

	all, err := c.AllInterestRates(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, fxdash.Currency("USD"), all["USD"].Currency)
	assert.Equal(t, "4.5", all["USD"].PreviousRate.String())
}

func TestClient_Analyze(t *testing.T) {
	c, rec := serve(t, map[string]string{
		"/api/ai/analyze/EUR/USD": `{"shortTerm":{"trend":"Bearish","summary":"s","details":"d","sources":[]},"longTerm":{"trend":"Bullish","summary":"l","details":"d","sources":[]}}`,
	})
	preset := fxdash.DefaultPreset()
	preset.Style = fxdash.StyleTechnical
	preset.ShortTermFocus = "CPI print"

	a, err := c.Analyze(context.Background(), eurusd, preset)

	require.NoError(t, err)
	assert.Equal(t, fxdash.Bearish, a.ShortTerm.Trend)
	assert.Equal(t, "backend", a.Origin)
	q := rec.last().Query()
	assert.Equal(t, "technical", q.Get("style"))
	assert.Equal(t, "CPI print", q.Get("short_term_focus"))
	assert.Equal(t, "false", q.Get("use_web_search"))
}

func TestClient_Health(t *testing.T) {
	c, _ := serve(t, map[string]string{"/health": `{"status":"healthy"}`})
	assert.NoError(t, c.Health(context.Background()))
}
