package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/metrics"
	"github.com/goran-ethernal/ChainCache/pkg/api"
)

const stopTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API, metrics and database maintenance until interrupted",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), banner, version)

	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	log := a.log
	log.Infof("serving chain %d from %s", a.logs.ChainID(), a.cfg.RPC.URL)

	metricsServer := metrics.NewServer(a.cfg.Metrics, componentLogger(a.cfg, common.ComponentMetrics))
	if err := metricsServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	defer func() {
		stopCtx, stop := context.WithTimeout(context.Background(), stopTimeout)
		defer stop()
		if err := metricsServer.Stop(stopCtx); err != nil {
			log.Warnf("failed to stop metrics server: %v", err)
		}
	}()

	maintenance := a.store.Maintenance()
	if err := maintenance.Start(ctx); err != nil {
		return fmt.Errorf("failed to start maintenance: %w", err)
	}
	defer func() {
		if err := maintenance.Stop(); err != nil {
			log.Warnf("failed to stop maintenance: %v", err)
		}
	}()

	if _, err := a.logs.FinalizedBlock(ctx); err != nil {
		metrics.ComponentHealthSet(common.ComponentRPCClient, false)
		log.Warnf("node did not return a finalized block: %v", err)
	} else {
		metrics.ComponentHealthSet(common.ComponentRPCClient, true)
	}

	if a.cfg.API == nil || !a.cfg.API.Enabled {
		log.Info("API server is disabled, running maintenance only")
		<-ctx.Done()
		return nil
	}

	server := api.NewServer(a.cfg.API, a.logs, a.networks, componentLogger(a.cfg, common.ComponentAPI))
	metrics.ComponentHealthSet(common.ComponentAPI, true)
	defer metrics.ComponentHealthSet(common.ComponentAPI, false)

	return server.Start(ctx)
}
