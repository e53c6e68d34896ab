package metrics

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url) //nolint:noctx
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestServer(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true, ListenAddress: "127.0.0.1:0", Path: "/metrics"}
	s := NewServer(cfg, logger.NewNopLogger())

	require.NoError(t, s.Start(t.Context()))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Stop(ctx))
	}()

	ComponentHealthSet("cache-store", true)
	DBQueryObserve("cache", "get_logs", time.Millisecond, nil)
	APIRequestObserve("/api/v1/logs", http.StatusBadRequest, time.Millisecond)

	code, body := get(t, "http://"+s.Addr()+"/metrics")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "chaincache_uptime_seconds")
	require.Contains(t, body, `chaincache_component_health{component="cache-store"} 1`)
	require.Contains(t, body, `chaincache_db_queries_total{db="cache",operation="get_logs"}`)
	require.Contains(t, body, `chaincache_api_requests_total{code="4xx",route="/api/v1/logs"}`)

	code, body = get(t, "http://"+s.Addr()+"/health")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "OK", body)
}

func TestServer_Disabled(t *testing.T) {
	s := NewServer(&config.MetricsConfig{Enabled: false}, logger.NewNopLogger())

	require.NoError(t, s.Start(t.Context()))
	require.Empty(t, s.Addr())
	require.NoError(t, s.Stop(context.Background()))
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "2xx", statusLabel(http.StatusOK))
	require.Equal(t, "3xx", statusLabel(http.StatusFound))
	require.Equal(t, "4xx", statusLabel(http.StatusNotFound))
	require.Equal(t, "5xx", statusLabel(http.StatusInternalServerError))
}
