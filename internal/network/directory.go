// Package network resolves network names, chain ids and block explorers.
// Networks declared in the config take precedence over the built-in table.
package network

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/pkg/config"
)

// ErrUnknownNetwork is returned when a name or chain id is not in the directory.
var ErrUnknownNetwork = errors.New("unknown network")

// Network is the metadata of a single chain.
type Network struct {
	Name          string `json:"name"`
	ChainID       uint64 `json:"chain_id"`
	BlockExplorer string `json:"block_explorer,omitempty"`
}

var defaultNetworks = []Network{
	{Name: "mainnet", ChainID: 1, BlockExplorer: "etherscan.io"},
	{Name: "ropsten", ChainID: 3, BlockExplorer: "ropsten.etherscan.io"},
	{Name: "rinkeby", ChainID: 4, BlockExplorer: "rinkeby.etherscan.io"},
	{Name: "goerli", ChainID: 5, BlockExplorer: "goerli.etherscan.io"},
	{Name: "optimism", ChainID: 10, BlockExplorer: "optimistic.etherscan.io"},
	{Name: "kovan", ChainID: 42, BlockExplorer: "kovan.etherscan.io"},
	{Name: "bsc", ChainID: 56, BlockExplorer: "bscscan.com"},
	{Name: "xdai", ChainID: 100, BlockExplorer: "blockscout.com"},
	{Name: "polygon", ChainID: 137, BlockExplorer: "polygonscan.com"},
	{Name: "fantom", ChainID: 250, BlockExplorer: "ftmscan.com"},
	{Name: "arbitrum", ChainID: 42161, BlockExplorer: "arbiscan.io"},
	{Name: "avax", ChainID: 43114, BlockExplorer: "snowtrace.io"},
}

// DefaultNetworks returns a copy of the built-in network table ordered by chain id.
func DefaultNetworks() []Network {
	return slices.Clone(defaultNetworks)
}

// Directory looks networks up by name or chain id.
// It is immutable after construction and safe for concurrent use.
type Directory struct {
	byName    map[string]Network
	byChainID map[uint64]Network
	log       *logger.Logger
}

// NewDirectory builds a directory from the built-in table overlaid with the configured networks.
// A configured network replaces any built-in entry with the same name or chain id.
func NewDirectory(configured []config.NetworkConfig, log *logger.Logger) *Directory {
	if log == nil {
		log = logger.NewNopLogger()
	}

	d := &Directory{
		byName:    make(map[string]Network, len(defaultNetworks)+len(configured)),
		byChainID: make(map[uint64]Network, len(defaultNetworks)+len(configured)),
		log:       log,
	}

	for _, n := range defaultNetworks {
		d.byName[n.Name] = n
		d.byChainID[n.ChainID] = n
	}

	for _, c := range configured {
		n := Network{
			Name:          common.ToLowerWithTrim(c.Name),
			ChainID:       c.ChainID,
			BlockExplorer: c.BlockExplorer,
		}

		if old, ok := d.byChainID[n.ChainID]; ok && old.Name != n.Name {
			delete(d.byName, old.Name)
		}
		if old, ok := d.byName[n.Name]; ok && old.ChainID != n.ChainID {
			delete(d.byChainID, old.ChainID)
		}
		if n.BlockExplorer == "" {
			if def, ok := d.byName[n.Name]; ok {
				n.BlockExplorer = def.BlockExplorer
			}
		}

		d.log.Debugf("registering configured network %s (chain id %d)", n.Name, n.ChainID)
		d.byName[n.Name] = n
		d.byChainID[n.ChainID] = n
	}

	return d
}

// ByName returns the network registered under name (case-insensitive).
func (d *Directory) ByName(name string) (Network, error) {
	n, ok := d.byName[common.ToLowerWithTrim(name)]
	if !ok {
		return Network{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}

	return n, nil
}

// ByChainID returns the network registered under chainID.
func (d *Directory) ByChainID(chainID uint64) (Network, error) {
	n, ok := d.byChainID[chainID]
	if !ok {
		return Network{}, fmt.Errorf("%w: chain id %d", ErrUnknownNetwork, chainID)
	}

	return n, nil
}

// Resolve accepts either a network name or a chain id (decimal or 0x-prefixed hex).
func (d *Directory) Resolve(ref string) (Network, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Network{}, fmt.Errorf("%w: empty network reference", ErrUnknownNetwork)
	}

	if chainID, err := common.ParseBlockNumber(ref); err == nil {
		return d.ByChainID(chainID)
	}

	return d.ByName(ref)
}

// ChainID resolves a network reference to its chain id.
func (d *Directory) ChainID(ref string) (uint64, error) {
	n, err := d.Resolve(ref)
	if err != nil {
		return 0, err
	}

	return n.ChainID, nil
}

// All returns every known network ordered by chain id.
func (d *Directory) All() []Network {
	all := make([]Network, 0, len(d.byChainID))
	for _, n := range d.byChainID {
		all = append(all, n)
	}

	slices.SortFunc(all, func(a, b Network) int {
		switch {
		case a.ChainID < b.ChainID:
			return -1
		case a.ChainID > b.ChainID:
			return 1
		default:
			return 0
		}
	})

	return all
}

// ExplorerURL returns the https URL of the network's block explorer, or an empty string if none is known.
func (n Network) ExplorerURL() string {
	if n.BlockExplorer == "" {
		return ""
	}
	if strings.HasPrefix(n.BlockExplorer, "http://") || strings.HasPrefix(n.BlockExplorer, "https://") {
		return n.BlockExplorer
	}

	return "https://" + n.BlockExplorer
}
