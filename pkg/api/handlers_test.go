package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/network"
	"github.com/goran-ethernal/ChainCache/pkg/api/mocks"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	bayc        = ethcommon.HexToAddress("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
	transferSig = ethcommon.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
)

func testAPIConfig() *config.APIConfig {
	return &config.APIConfig{
		Enabled:       true,
		ListenAddress: "127.0.0.1:0",
		ReadTimeout:   common.NewDuration(5 * time.Second),
		WriteTimeout:  common.NewDuration(5 * time.Second),
		IdleTimeout:   common.NewDuration(time.Minute),

		MaxChunksPerRequest: 1000,
	}
}

func newTestHandler(t *testing.T) (http.Handler, *mocks.LogService) {
	t.Helper()

	logs := mocks.NewLogService(t)
	dir := network.NewDirectory([]config.NetworkConfig{{Name: "devnet", ChainID: 31337}}, logger.NewNopLogger())

	return NewServer(testAPIConfig(), logs, dir, logger.NewNopLogger()).Handler(), logs
}

func doGet(t *testing.T, h http.Handler, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()

	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func logParams(from, to string) url.Values {
	return url.Values{
		"address":    {bayc.Hex()},
		"from_block": {from},
		"to_block":   {to},
	}
}

func TestHandler_Health(t *testing.T) {
	t.Run("node reachable", func(t *testing.T) {
		h, logs := newTestHandler(t)
		logs.EXPECT().ChainID().Return(1)
		logs.EXPECT().FinalizedBlock(mock.Anything).Return(uint64(21_000_000), nil).Once()

		w := doGet(t, h, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[HealthResponse](t, w)
		require.Equal(t, "ok", resp.Status)
		require.Equal(t, "mainnet", resp.Network)
		require.Equal(t, uint64(21_000_000), resp.FinalizedBlock)
	})

	t.Run("node unreachable", func(t *testing.T) {
		h, logs := newTestHandler(t)
		logs.EXPECT().ChainID().Return(31337)
		logs.EXPECT().FinalizedBlock(mock.Anything).Return(uint64(0), errors.New("connection refused")).Once()

		w := doGet(t, h, "/health", nil)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		resp := decode[HealthResponse](t, w)
		require.Equal(t, "degraded", resp.Status)
		require.Equal(t, "devnet", resp.Network)
		require.Contains(t, resp.Error, "connection refused")
	})
}

func TestHandler_Networks(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doGet(t, h, "/api/v1/networks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	all := decode[[]network.Network](t, w)
	require.Len(t, all, len(network.DefaultNetworks())+1)
	require.Equal(t, uint64(1), all[0].ChainID)

	tests := []struct {
		ref        string
		expectCode int
		expectID   uint64
	}{
		{ref: "polygon", expectCode: http.StatusOK, expectID: 137},
		{ref: "56", expectCode: http.StatusOK, expectID: 56},
		{ref: "0x7a69", expectCode: http.StatusOK, expectID: 31337},
		{ref: "atlantis", expectCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			w := doGet(t, h, "/api/v1/networks/"+tt.ref, nil)
			require.Equal(t, tt.expectCode, w.Code)

			if tt.expectCode == http.StatusOK {
				require.Equal(t, tt.expectID, decode[network.Network](t, w).ChainID)
			} else {
				resp := decode[ErrorResponse](t, w)
				require.Equal(t, http.StatusNotFound, resp.Code)
				require.Contains(t, resp.Message, "atlantis")
			}
		})
	}
}

func TestHandler_Coverage(t *testing.T) {
	h, logs := newTestHandler(t)

	expected := cache.LogQuery{Address: bayc, Topic0s: []ethcommon.Hash{transferSig}, FromBlock: 100, ToBlock: 500}
	logs.EXPECT().Plan(mock.Anything, expected).Return(&cache.Plan{
		Query:   cache.LogQuery{ChainID: 1, Address: bayc, Topic0s: expected.Topic0s, FromBlock: 100, ToBlock: 500},
		Covered: []ranges.Range{{Start: 100, End: 299}},
		Gaps:    []ranges.Range{{Start: 300, End: 500}},
		Chunks:  []ranges.Range{{Start: 300, End: 500}},
	}, nil).Once()

	params := logParams("100", "0x1f4")
	params.Set("topic0", transferSig.Hex())

	w := doGet(t, h, "/api/v1/coverage", params)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[CoverageResponse](t, w)
	require.False(t, resp.Complete)
	require.Equal(t, uint64(1), resp.Query.ChainID)
	require.Equal(t, []ranges.Range{{Start: 100, End: 299}}, resp.Covered)
	require.Equal(t, []ranges.Range{{Start: 300, End: 500}}, resp.Gaps)
	require.JSONEq(t, `[[100, 299]]`, mustMarshal(t, resp.Covered))
}

func TestHandler_Plan(t *testing.T) {
	h, logs := newTestHandler(t)

	logs.EXPECT().Plan(mock.Anything, cache.LogQuery{ChainID: 137, Address: bayc, FromBlock: 0, ToBlock: 10}).
		Return(&cache.Plan{
			Query:   cache.LogQuery{ChainID: 137, Address: bayc, FromBlock: 0, ToBlock: 10},
			Covered: []ranges.Range{{Start: 0, End: 10}},
		}, nil).Once()

	params := logParams("0", "10")
	params.Set("network", "polygon")

	w := doGet(t, h, "/api/v1/plan", params)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, fmt.Sprintf(`{
		"query": {"chain_id": 137, "address": %q, "from_block": 0, "to_block": 10},
		"covered": [[0, 10]],
		"gaps": [],
		"chunks": []
	}`, strings.ToLower(bayc.Hex())), w.Body.String())
}

func TestHandler_Logs(t *testing.T) {
	h, logs := newTestHandler(t)

	found := []types.Log{{
		Address:     bayc,
		Topics:      []ethcommon.Hash{transferSig},
		Data:        []byte{},
		BlockNumber: 12_345_678,
		Index:       3,
	}}
	logs.EXPECT().GetLogs(mock.Anything, cache.LogQuery{Address: bayc, FromBlock: 12_000_000, ToBlock: 13_000_000}).
		Return(found, nil).Once()
	logs.EXPECT().ChainID().Return(1)

	w := doGet(t, h, "/api/v1/logs", logParams("12000000", "13000000"))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[LogsResponse](t, w)
	require.Equal(t, uint64(1), resp.ChainID)
	require.Equal(t, 1, resp.Count)
	require.Equal(t, uint64(12_345_678), resp.Logs[0].BlockNumber)
	require.Equal(t, uint(3), resp.Logs[0].Index)
}

func TestHandler_LogsErrors(t *testing.T) {
	tests := []struct {
		name       string
		params     url.Values
		serviceErr error
		expectCode int
	}{
		{
			name:       "missing address",
			params:     url.Values{"from_block": {"1"}, "to_block": {"2"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "bad topic0",
			params: func() url.Values {
				p := logParams("1", "2")
				p.Set("topic0", "0x1234")
				return p
			}(),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "missing to_block",
			params:     url.Values{"address": {bayc.Hex()}, "from_block": {"1"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "non numeric block",
			params:     logParams("one", "2"),
			expectCode: http.StatusBadRequest,
		},
		{
			name: "unknown network",
			params: func() url.Values {
				p := logParams("1", "2")
				p.Set("network", "atlantis")
				return p
			}(),
			expectCode: http.StatusNotFound,
		},
		{
			name:       "invalid query from the cache",
			params:     logParams("5", "2"),
			serviceErr: fmt.Errorf("%w: from block 5 is after to block 2", cache.ErrInvalidQuery),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "node failure",
			params:     logParams("1", "2"),
			serviceErr: errors.New("dial tcp: connection refused"),
			expectCode: http.StatusInternalServerError,
		},
		{
			name:       "request timeout",
			params:     logParams("1", "2"),
			serviceErr: fmt.Errorf("failed to fetch logs: %w", context.DeadlineExceeded),
			expectCode: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, logs := newTestHandler(t)
			if tt.serviceErr != nil {
				logs.EXPECT().GetLogs(mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()
			}

			w := doGet(t, h, "/api/v1/logs", tt.params)
			require.Equal(t, tt.expectCode, w.Code)

			resp := decode[ErrorResponse](t, w)
			require.Equal(t, tt.expectCode, resp.Code)
			if tt.expectCode == http.StatusInternalServerError {
				require.Equal(t, "internal error", resp.Message)
			}
		})
	}
}

func TestHandler_Chunks(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name         string
		params       url.Values
		expectCode   int
		expectChunks []ranges.Range
	}{
		{
			name:         "default mode",
			params:       url.Values{"from_block": {"390"}, "to_block": {"710"}, "chunk_size": {"100"}},
			expectCode:   http.StatusOK,
			expectChunks: []ranges.Range{{Start: 390, End: 489}, {Start: 490, End: 589}, {Start: 590, End: 689}, {Start: 690, End: 710}},
		},
		{
			name:         "aligned trimmed",
			params:       url.Values{"from_block": {"390"}, "to_block": {"710"}, "chunk_size": {"100"}, "mode": {"aligned-trimmed"}},
			expectCode:   http.StatusOK,
			expectChunks: []ranges.Range{{Start: 390, End: 399}, {Start: 400, End: 499}, {Start: 500, End: 599}, {Start: 600, End: 699}, {Start: 700, End: 710}},
		},
		{
			name:       "zero chunk size",
			params:     url.Values{"from_block": {"1"}, "to_block": {"2"}, "chunk_size": {"0"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "unknown mode",
			params:     url.Values{"from_block": {"1"}, "to_block": {"2"}, "chunk_size": {"1"}, "mode": {"rounded"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "reversed range",
			params:     url.Values{"from_block": {"9"}, "to_block": {"2"}, "chunk_size": {"1"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "too many chunks",
			params:     url.Values{"from_block": {"0"}, "to_block": {"3000000"}, "chunk_size": {"1"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "whole block space",
			params:     url.Values{"from_block": {"0"}, "to_block": {"0xffffffffffffffff"}, "chunk_size": {"1"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "aligned cells over the limit",
			params:     url.Values{"from_block": {"5"}, "to_block": {"10004"}, "chunk_size": {"10"}, "mode": {"aligned"}},
			expectCode: http.StatusBadRequest,
		},
		{
			name:         "at the limit",
			params:       url.Values{"from_block": {"0"}, "to_block": {"9999"}, "chunk_size": {"10"}, "mode": {"index"}},
			expectCode:   http.StatusOK,
			expectChunks: indexChunks(0, 10000, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, h, "/api/v1/chunks", tt.params)
			require.Equal(t, tt.expectCode, w.Code)

			if tt.expectCode == http.StatusOK {
				require.Equal(t, tt.expectChunks, decode[ChunksResponse](t, w).Chunks)
			}
		})
	}
}

func indexChunks(start, end, size uint64) []ranges.Range {
	var out []ranges.Range
	for s := start; s < end; s += size {
		out = append(out, ranges.Range{Start: s, End: min(s+size, end)})
	}
	return out
}

func TestHandler_Swagger(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doGet(t, h, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ChainCache API")
	require.Contains(t, w.Body.String(), "/coverage")
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return string(b)
}
