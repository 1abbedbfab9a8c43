package backend

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Cache lifetimes, per kind of endpoint.
const (
	RateTTL     = 5 * time.Minute
	AnalysisTTL = time.Hour
	DailyTTL    = 24 * time.Hour
)

// ttl returns the lifetime of a cached response to req.
func ttl(req *http.Request) time.Duration {
	path := req.URL.Path
	switch {
	case strings.HasPrefix(path, "/api/ai/"):
		return AnalysisTTL
	case strings.HasSuffix(path, "/history"), strings.HasPrefix(path, "/api/interest-rates"):
		return DailyTTL
	default:
		return RateTTL
	}
}

// diskCache implements a simple disk cache for HTTP GET responses.
//
// Entries are keyed on a time bucket as wide as their ttl, so they expire
// when the bucket changes.
type diskCache struct {
	base http.RoundTripper
	dir  string
	now  func() time.Time
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If none is found, it proceeds with the actual HTTP
// request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	d := ttl(req)
	bucket := c.now().Truncate(d).Unix()
	key := fmt.Sprintf("%d %s %s", bucket, req.Method, req.URL.String())
	key = fmt.Sprintf("fxd-%s-%x", d, sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		log.Debug().Str("url", req.URL.String()).Msg("cache hit")
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("status", resp.Status).Msg("http")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Warn().Err(err).Msg("cache write error (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}

// NewCachingClient returns an http.Client whose GET responses are cached in
// dir, or in the system temporary folder if dir is empty.
func NewCachingClient(dir string, timeout time.Duration) *http.Client {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "fxd")
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &diskCache{base: http.DefaultTransport, dir: dir, now: time.Now},
	}
}
