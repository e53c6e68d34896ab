package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/goran-ethernal/ChainCache/internal/cache"
	"github.com/goran-ethernal/ChainCache/internal/cache/store"
	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/config"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/network"
	"github.com/goran-ethernal/ChainCache/internal/rpc"
	pkgconfig "github.com/goran-ethernal/ChainCache/pkg/config"
)

const (
	version = "1.1.0"
	banner  = `
╔════════════════════════════════════════════╗
║              ChainCache v%s               ║
║  Range-aware eth_getLogs / eth_call cache  ║
╚════════════════════════════════════════════╝
`
)

var (
	configPath string
	envFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaincache",
	Short: "ChainCache - block range aware cache for Ethereum RPC",
	Long: `ChainCache keeps eth_getLogs results and finalized eth_call results in a local
SQLite database and only asks the node for the block ranges it has not seen yet.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env is fine, a broken one is not
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file loaded before the configuration")

	rootCmd.AddCommand(
		serveCmd,
		logsCmd,
		coverageCmd,
		chunksCmd,
		networksCmd,
		erc721Cmd,
		compactCmd,
		invalidateCmd,
		pruneCmd,
		configCmd,
	)
}

// app holds the components shared by the commands that talk to a node.
type app struct {
	cfg      *pkgconfig.Config
	networks *network.Directory
	client   *rpc.Client
	store    *store.Store
	logs     *cache.LogCache
	calls    *cache.CallCache
	log      *logger.Logger
}

func loadConfig() (*pkgconfig.Config, error) {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

func componentLogger(cfg *pkgconfig.Config, component string) *logger.Logger {
	if cfg.Logging == nil {
		return logger.NewComponentLoggerFromConfig(component, nil)
	}

	return logger.NewComponentLoggerFromConfig(component, cfg.Logging)
}

// openApp loads the configuration, dials the node and opens the cache database.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := componentLogger(cfg, common.ComponentLogCache)
	networks := network.NewDirectory(cfg.Networks, componentLogger(cfg, common.ComponentNetworkDirectory))

	client, err := rpc.NewClient(ctx, cfg.RPC.URL, cfg.RPC.Retry, componentLogger(cfg, common.ComponentRPCClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	if chainID != cfg.DefaultNetwork {
		log.Warnf("node serves chain %d but default_network is %d", chainID, cfg.DefaultNetwork)
	}

	s, err := store.Open(cfg.Cache, componentLogger(cfg, common.ComponentCacheStore))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to open cache store: %w", err)
	}

	cacheCfg, err := cache.ConfigFromRPC(cfg.RPC)
	if err != nil {
		s.Close()
		client.Close()
		return nil, err
	}

	logs, err := cache.NewLogCache(cacheCfg, chainID, client, s, log)
	if err != nil {
		s.Close()
		client.Close()
		return nil, err
	}

	calls := cache.NewCallCache(chainID, client, s, cacheCfg.Finality, cacheCfg.FinalizedLag,
		componentLogger(cfg, common.ComponentCallCache))

	return &app{
		cfg:      cfg,
		networks: networks,
		client:   client,
		store:    s,
		logs:     logs,
		calls:    calls,
		log:      log,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warnf("failed to close cache store: %v", err)
	}
	a.client.Close()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
