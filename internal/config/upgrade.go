package config

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/network"
	pkgconfig "github.com/goran-ethernal/ChainCache/pkg/config"
)

// ErrUnsupportedVersion is returned when a config document has a version no upgrade path starts from.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Upgrade brings a decoded config document to the current layout.
// The version is read from config_spec_version, falling back to the legacy version key.
// A document without a readable version is replaced by an empty current document.
// The input map is not modified.
func Upgrade(raw map[string]any) (map[string]any, error) {
	version, ok := raw["config_spec_version"].(string)
	if !ok {
		version, ok = raw["version"].(string)
	}

	if !ok {
		logger.GetDefaultLogger().Warn("config has unknown version, using default config")
		return map[string]any{"config_spec_version": pkgconfig.CurrentSpecVersion}, nil
	}

	switch {
	case version == pkgconfig.CurrentSpecVersion:
		return maps.Clone(raw), nil
	case version == "1.0" || strings.HasPrefix(version, "1.0."):
		return upgradeV10ToV11(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}
}

// upgradeV10ToV11 renames rpc.chunk_size and turns a default network name into its chain id.
func upgradeV10ToV11(raw map[string]any) (map[string]any, error) {
	upgraded := maps.Clone(raw)

	if rpc, ok := raw["rpc"].(map[string]any); ok {
		rpc = maps.Clone(rpc)
		if chunkSize, found := rpc["chunk_size"]; found {
			if _, exists := rpc["max_blocks_per_call"]; !exists {
				rpc["max_blocks_per_call"] = chunkSize
			}
			delete(rpc, "chunk_size")
		}
		upgraded["rpc"] = rpc
	}

	if name, ok := raw["default_network"].(string); ok {
		dir := network.NewDirectory(networksFromRaw(raw["networks"]), nil)

		chainID, err := dir.ChainID(name)
		if err != nil {
			return nil, fmt.Errorf("unknown chain id for default network %q: %w", name, err)
		}
		upgraded["default_network"] = chainID
	}

	delete(upgraded, "version")
	upgraded["config_spec_version"] = pkgconfig.CurrentSpecVersion

	return upgraded, nil
}

// networksFromRaw reads the networks list of a generic document, skipping malformed entries.
func networksFromRaw(v any) []pkgconfig.NetworkConfig {
	var entries []map[string]any

	switch list := v.(type) {
	case []any:
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				entries = append(entries, m)
			}
		}
	case []map[string]any:
		entries = list
	}

	networks := make([]pkgconfig.NetworkConfig, 0, len(entries))
	for _, m := range entries {
		name, _ := m["name"].(string)
		chainID, ok := toUint64(m["chain_id"])
		if name == "" || !ok {
			continue
		}

		explorer, _ := m["block_explorer"].(string)
		networks = append(networks, pkgconfig.NetworkConfig{Name: name, ChainID: chainID, BlockExplorer: explorer})
	}

	return networks
}

// toUint64 converts the numeric types produced by the YAML, JSON and TOML decoders.
func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case int:
		return uint64(n), n >= 0
	case int64:
		return uint64(n), n >= 0
	case uint64:
		return n, true
	case float64:
		if math.IsNaN(n) || n < 0 || n >= math.MaxUint64 || n != math.Trunc(n) {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}
