package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goran-ethernal/ChainCache/internal/cache/store"
	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/network"
	pkgconfig "github.com/goran-ethernal/ChainCache/pkg/config"
)

var (
	invalidateFrom    string
	invalidateNetwork string
	pruneBefore       string
	pruneNetwork      string
)

// openStore opens the cache database without dialing the node.
func openStore() (*pkgconfig.Config, *store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	s, err := store.Open(cfg.Cache, componentLogger(cfg, common.ComponentCacheStore))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache store: %w", err)
	}

	return cfg, s, nil
}

// chainOf resolves ref through the configured networks, falling back to default_network.
func chainOf(cfg *pkgconfig.Config, ref string) (uint64, error) {
	if ref == "" {
		return cfg.DefaultNetwork, nil
	}

	return network.NewDirectory(cfg.Networks, componentLogger(cfg, common.ComponentNetworkDirectory)).ChainID(ref)
}

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Merge adjacent and overlapping coverage records of every cached query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := s.CompactAll(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %d redundant coverage records\n", removed)
		return nil
	},
}

var invalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "Drop cached logs, coverage and calls at or above a block, e.g. after a reorg",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseBlockFlag("from", invalidateFrom)
		if err != nil {
			return err
		}

		cfg, s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		chainID, err := chainOf(cfg, invalidateNetwork)
		if err != nil {
			return err
		}

		if err := s.InvalidateFrom(cmd.Context(), chainID, from); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "invalidated chain %d from block %d\n", chainID, from)
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop cached logs, coverage and calls below a block",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		before, err := parseBlockFlag("before", pruneBefore)
		if err != nil {
			return err
		}

		cfg, s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		chainID, err := chainOf(cfg, pruneNetwork)
		if err != nil {
			return err
		}

		if err := s.PruneBefore(cmd.Context(), chainID, before); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "pruned chain %d below block %d\n", chainID, before)
		return nil
	},
}

func init() {
	invalidateCmd.Flags().StringVar(&invalidateFrom, "from", "", "first block to drop, decimal or hex")
	invalidateCmd.Flags().StringVar(&invalidateNetwork, "network", "", "network name or chain id, defaults to default_network")
	_ = invalidateCmd.MarkFlagRequired("from")

	pruneCmd.Flags().StringVar(&pruneBefore, "before", "", "first block to keep, decimal or hex")
	pruneCmd.Flags().StringVar(&pruneNetwork, "network", "", "network name or chain id, defaults to default_network")
	_ = pruneCmd.MarkFlagRequired("before")
}
