package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/network"
	"github.com/goran-ethernal/ChainCache/pkg/api/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServer_Disabled(t *testing.T) {
	cfg := testAPIConfig()
	cfg.Enabled = false

	srv := NewServer(cfg, mocks.NewLogService(t), network.NewDirectory(nil, nil), logger.NewNopLogger())
	require.NoError(t, srv.Start(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err := srv.Addr(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestServer_StartAndShutdown(t *testing.T) {
	logs := mocks.NewLogService(t)
	logs.EXPECT().ChainID().Return(1)
	logs.EXPECT().FinalizedBlock(mock.Anything).Return(uint64(100), nil)

	cfg := testAPIConfig()
	cfg.CORS.Enabled = true
	cfg.CORS.AllowedOrigins = []string{"*"}

	srv := NewServer(cfg, logs, network.NewDirectory(nil, nil), logger.NewNopLogger())

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	addrCtx, addrCancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer addrCancel()
	addr, err := srv.Addr(addrCtx)
	require.NoError(t, err)

	resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, string(body), `"finalized_block":100`)

	// Addr can be read more than once
	again, err := srv.Addr(addrCtx)
	require.NoError(t, err)
	require.Equal(t, addr, again)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenError(t *testing.T) {
	cfg := testAPIConfig()
	cfg.ListenAddress = "127.0.0.1:99999"

	srv := NewServer(cfg, mocks.NewLogService(t), network.NewDirectory(nil, nil), logger.NewNopLogger())
	require.ErrorContains(t, srv.Start(t.Context()), "failed to listen")
}
