// Package backend is a client of the FX dashboard backend: current rates,
// rate history, central bank interest rates and AI analysis.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// StatusError is returned when the backend answers with a non 2xx status.
type StatusError struct {
	Method string
	URL    string
	Status int
	// Detail is the error message sent by the backend, if any.
	Detail string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("cannot http %s %s: %d %s", e.Method, e.URL, e.Status, http.StatusText(e.Status))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Client calls the dashboard backend.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for the backend at baseURL. A nil client means
// http.DefaultClient.
func New(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: client}
}

// Health checks that the backend is up.
func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	return c.get(ctx, "/health", nil, &status)
}

// get performs an HTTP GET request on path and unmarshals the JSON response
// body into data.
func (c *Client) get(ctx context.Context, path string, query url.Values, data any) error {
	addr := c.BaseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}
	return getJSON(ctx, c.HTTP, addr, data)
}

// getJSON performs an HTTP GET request to addr and unmarshals the JSON
// response body into data.
func getJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %s: %w", addr, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Method: http.MethodGet, URL: addr, Status: resp.StatusCode, Detail: detail(buf.Bytes())}
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("cannot decode %s: %w", addr, err)
	}
	return nil
}

// detail extracts the "detail" message of an error body.
func detail(body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == nil {
		return ""
	}
	if s, ok := payload.Detail.(string); ok {
		return s
	}
	b, err := json.Marshal(payload.Detail)
	if err != nil {
		log.Debug().Err(err).Msg("cannot encode error detail")
		return ""
	}
	return string(b)
}
