// Package portfolio gives access to the trades and currency exposure held by
// the portfolio service.
package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/etnz/fxdash"
	"github.com/rs/zerolog/log"
)

// Feed is a source of portfolio data.
type Feed interface {
	Trades(ctx context.Context) ([]fxdash.Trade, error)
	Exposure(ctx context.Context) ([]fxdash.ExposureEntry, error)
}

// Client reads the portfolio service over HTTP.
//
// Returned collections are validated: see ValidTrades and ValidExposure.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client for the service at baseURL. A nil client means
// http.DefaultClient.
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: client}
}

// Trades fetches GET /trades.
func (c *Client) Trades(ctx context.Context) ([]fxdash.Trade, error) {
	var payload struct {
		Trades []json.RawMessage `json:"trades"`
	}
	if err := c.get(ctx, "/trades", &payload); err != nil {
		return nil, err
	}
	return ValidTrades(decodeEach[fxdash.Trade]("trade", payload.Trades)), nil
}

// Exposure fetches GET /exposure.
func (c *Client) Exposure(ctx context.Context) ([]fxdash.ExposureEntry, error) {
	var payload struct {
		Exposure []json.RawMessage `json:"exposure"`
	}
	if err := c.get(ctx, "/exposure", &payload); err != nil {
		return nil, err
	}
	return ValidExposure(decodeEach[fxdash.ExposureEntry]("exposure", payload.Exposure)), nil
}

// decodeEach decodes every record on its own: a record that cannot be
// decoded is logged and dropped, the others are kept.
func decodeEach[T any](kind string, records []json.RawMessage) []T {
	out := make([]T, 0, len(records))
	for i, raw := range records {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Warn().Err(err).Int("index", i).Str("record", string(raw)).Msgf("dropping %s", kind)
			continue
		}
		out = append(out, v)
	}
	return out
}

// get performs an HTTP GET on path and unmarshals the JSON response into data.
func (c *Client) get(ctx context.Context, path string, data any) error {
	addr := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %s: %w", addr, err)
	}
	defer resp.Body.Close()
	log.Debug().Str("url", addr).Int("status", resp.StatusCode).Msg("portfolio")
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %s: %s", addr, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("cannot decode %s: %w", addr, err)
	}
	return nil
}
