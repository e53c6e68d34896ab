package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/network"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
)

const hashHexLen = 2 + 2*ethcommon.HashLength

// LogService answers log queries for one chain.
type LogService interface {
	ChainID() uint64
	FinalizedBlock(ctx context.Context) (uint64, error)
	Plan(ctx context.Context, q cache.LogQuery) (*cache.Plan, error)
	GetLogs(ctx context.Context, q cache.LogQuery) ([]types.Log, error)
}

// NetworkDirectory resolves network names and chain ids.
type NetworkDirectory interface {
	All() []network.Network
	Resolve(ref string) (network.Network, error)
}

// Handler handles HTTP requests for the API.
type Handler struct {
	logs      LogService
	networks  NetworkDirectory
	maxChunks uint64
	log       *logger.Logger
}

// NewHandler creates a new API handler.
// maxChunks caps the chunks built by GetChunks; zero selects config.DefaultMaxChunksPerRequest.
func NewHandler(logs LogService, networks NetworkDirectory, maxChunks uint64, log *logger.Logger) *Handler {
	if maxChunks == 0 {
		maxChunks = config.DefaultMaxChunksPerRequest
	}

	return &Handler{
		logs:      logs,
		networks:  networks,
		maxChunks: maxChunks,
		log:       log,
	}
}

// Health reports whether the node behind the cache answers.
// @Summary Health check
// @Description Resolve the finalized block of the served chain
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Node reachable"
// @Failure 503 {object} HealthResponse "Node unreachable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		ChainID:   h.logs.ChainID(),
	}
	if n, err := h.networks.Resolve(fmt.Sprint(response.ChainID)); err == nil {
		response.Network = n.Name
	}

	status := http.StatusOK
	finalized, err := h.logs.FinalizedBlock(r.Context())
	if err != nil {
		h.log.Warnf("health check failed: %v", err)
		response.Status = "degraded"
		response.Error = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		response.FinalizedBlock = finalized
	}

	respondJSON(w, status, response)
}

// ListNetworks returns every known network.
// @Summary List networks
// @Description Built-in networks overlaid with the configured ones, ordered by chain id
// @Tags Networks
// @Produce json
// @Success 200 {array} network.Network "Known networks"
// @Router /networks [get]
func (h *Handler) ListNetworks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.networks.All())
}

// GetNetwork resolves a network by name or chain id.
// @Summary Get a network
// @Tags Networks
// @Produce json
// @Param ref path string true "Network name or chain id"
// @Success 200 {object} network.Network "Network metadata"
// @Failure 404 {object} ErrorResponse "Unknown network"
// @Router /networks/{ref} [get]
func (h *Handler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	n, err := h.networks.Resolve(r.PathValue("ref"))
	if err != nil {
		h.respondErr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, n)
}

// GetCoverage returns the cached ranges and the gaps of a query.
// @Summary Get query coverage
// @Description Cached block ranges of a log query and the gaps left to fetch
// @Tags Cache
// @Produce json
// @Param address query string true "Contract address"
// @Param topic0 query []string false "Event signature hashes" collectionFormat(multi)
// @Param from_block query string true "First block, decimal or hex"
// @Param to_block query string true "Last block, decimal or hex"
// @Param network query string false "Network name or chain id of the served chain"
// @Success 200 {object} CoverageResponse "Coverage and gaps"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Unknown network"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /coverage [get]
func (h *Handler) GetCoverage(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseLogQuery(r)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	plan, err := h.logs.Plan(r.Context(), q)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CoverageResponse{
		Query:    plan.Query,
		Covered:  nonNil(plan.Covered),
		Gaps:     nonNil(plan.Gaps),
		Complete: len(plan.Gaps) == 0,
	})
}

// GetPlan returns the eth_getLogs calls needed to complete a query.
// @Summary Plan a log query
// @Description Coverage, gaps and the inclusive chunks that would be fetched
// @Tags Cache
// @Produce json
// @Param address query string true "Contract address"
// @Param topic0 query []string false "Event signature hashes" collectionFormat(multi)
// @Param from_block query string true "First block, decimal or hex"
// @Param to_block query string true "Last block, decimal or hex"
// @Param network query string false "Network name or chain id of the served chain"
// @Success 200 {object} cache.Plan "Request plan"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Unknown network"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /plan [get]
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseLogQuery(r)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	plan, err := h.logs.Plan(r.Context(), q)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	plan.Covered = nonNil(plan.Covered)
	plan.Gaps = nonNil(plan.Gaps)
	plan.Chunks = nonNil(plan.Chunks)

	respondJSON(w, http.StatusOK, plan)
}

// GetChunks partitions a block range without touching the cache.
// @Summary Split a block range into chunks
// @Tags Ranges
// @Produce json
// @Param from_block query string true "First block, decimal or hex"
// @Param to_block query string true "Last block, decimal or hex"
// @Param chunk_size query string true "Maximum blocks per chunk"
// @Param mode query string false "Chunk mode" Enums(default, aligned, aligned-trimmed, index) default(default)
// @Success 200 {object} ChunksResponse "Chunks"
// @Failure 400 {object} ErrorResponse "Invalid parameters or too many chunks"
// @Router /chunks [get]
func (h *Handler) GetChunks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := parseBlock(query, "from_block")
	if err != nil {
		h.respondErr(w, err)
		return
	}
	to, err := parseBlock(query, "to_block")
	if err != nil {
		h.respondErr(w, err)
		return
	}
	size, err := parseBlock(query, "chunk_size")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	mode := ranges.ModeDefault
	if m := query.Get("mode"); m != "" {
		if mode, err = ranges.ParseChunkMode(m); err != nil {
			h.respondErr(w, err)
			return
		}
	}

	count, err := ranges.CountChunks(from, to, size, mode)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	if count > h.maxChunks {
		h.respondErr(w, fmt.Errorf("%w: range needs %d chunks, at most %d are allowed",
			cache.ErrInvalidQuery, count, h.maxChunks))
		return
	}

	chunks, err := ranges.RangeToChunks(from, to, size, mode)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ChunksResponse{
		FromBlock: from,
		ToBlock:   to,
		ChunkSize: size,
		Mode:      mode.String(),
		Chunks:    chunks,
	})
}

// GetLogs returns the logs matching a query, fetching the uncached ranges from the node.
// @Summary Get logs
// @Description Logs of a contract ordered by block number and log index
// @Tags Logs
// @Produce json
// @Param address query string true "Contract address"
// @Param topic0 query []string false "Event signature hashes" collectionFormat(multi)
// @Param from_block query string true "First block, decimal or hex"
// @Param to_block query string true "Last block, decimal or hex"
// @Param network query string false "Network name or chain id of the served chain"
// @Success 200 {object} LogsResponse "Matching logs"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Unknown network"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /logs [get]
func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseLogQuery(r)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	logs, err := h.logs.GetLogs(r.Context(), q)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, LogsResponse{
		ChainID:   h.logs.ChainID(),
		FromBlock: q.FromBlock,
		ToBlock:   q.ToBlock,
		Count:     len(logs),
		Logs:      nonNil(logs),
	})
}

// parseLogQuery reads address, topic0, from_block, to_block and network from the query string.
// The chain id is left at zero unless a network is named.
func (h *Handler) parseLogQuery(r *http.Request) (cache.LogQuery, error) {
	query := r.URL.Query()
	var q cache.LogQuery

	address := query.Get("address")
	if !ethcommon.IsHexAddress(address) {
		return q, fmt.Errorf("%w: invalid address %q", cache.ErrInvalidQuery, address)
	}
	q.Address = ethcommon.HexToAddress(address)

	for _, param := range query["topic0"] {
		for _, topic := range strings.Split(param, ",") {
			topic = strings.TrimSpace(topic)
			if len(topic) != hashHexLen || !strings.HasPrefix(topic, "0x") {
				return q, fmt.Errorf("%w: invalid topic0 %q", cache.ErrInvalidQuery, topic)
			}
			q.Topic0s = append(q.Topic0s, ethcommon.HexToHash(topic))
		}
	}

	var err error
	if q.FromBlock, err = parseBlock(query, "from_block"); err != nil {
		return q, err
	}
	if q.ToBlock, err = parseBlock(query, "to_block"); err != nil {
		return q, err
	}

	if ref := query.Get("network"); ref != "" {
		n, err := h.networks.Resolve(ref)
		if err != nil {
			return q, err
		}
		q.ChainID = n.ChainID
	}

	return q, nil
}

func parseBlock(query map[string][]string, name string) (uint64, error) {
	values := query[name]
	if len(values) == 0 || values[0] == "" {
		return 0, fmt.Errorf("%w: %s is required", ranges.ErrInvalidArgument, name)
	}

	v, err := common.ParseBlockNumber(values[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ranges.ErrInvalidArgument, name, values[0])
	}

	return v, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// statusFor maps an error onto the HTTP status returned to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ranges.ErrInvalidArgument), errors.Is(err, cache.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, network.ErrUnknownNetwork):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Errorf("request failed: %v", err)
		respondError(w, status, "internal error")
		return
	}

	respondError(w, status, err.Error())
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// encode before writing the status so an encoding failure can still become a 500
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	w.Write(encoded) //nolint:errcheck
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
