package backend

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTL(t *testing.T) {
	tests := []struct {
		path string
		want time.Duration
	}{
		{"/api/rates/EUR/USD", RateTTL},
		{"/latest", RateTTL},
		{"/api/rates/EUR/USD/history", DailyTTL},
		{"/api/interest-rates/EUR/USD", DailyTTL},
		{"/api/interest-rates/", DailyTTL},
		{"/api/ai/analyze/EUR/USD", AnalysisTTL},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.want, ttl(req))
		})
	}
}

func TestDiskCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte{byte('0' + n)})
	}))
	defer srv.Close()

	now := time.Date(2025, 3, 4, 10, 1, 0, 0, time.UTC)
	client := &http.Client{Transport: &diskCache{
		base: srv.Client().Transport,
		dir:  t.TempDir(),
		now:  func() time.Time { return now },
	}}
	get := func(path string) string {
		t.Helper()
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	assert.Equal(t, "1", get("/api/rates/EUR/USD"))
	assert.Equal(t, "1", get("/api/rates/EUR/USD"), "served from cache")
	assert.Equal(t, int32(1), hits.Load())

	now = now.Add(RateTTL)
	assert.Equal(t, "2", get("/api/rates/EUR/USD"), "expired")

	get("/broken")
	get("/broken")
	assert.Equal(t, int32(4), hits.Load(), "errors are not cached")
}
