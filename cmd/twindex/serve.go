package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fleshka4/twindex-reader/internal/config"
	"github.com/fleshka4/twindex-reader/internal/infra/twindex"
	"github.com/fleshka4/twindex-reader/internal/metrics"
	"github.com/fleshka4/twindex-reader/internal/registry"
	"github.com/fleshka4/twindex-reader/internal/service"
	transport "github.com/fleshka4/twindex-reader/internal/transport/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogging(cfg.Log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	svc, err := newDashboard(cmd.Context(), cfg, m, logger)
	if err != nil {
		return err
	}

	srv, err := transport.NewServer(svc, &cfg, m.Handler(), logger)
	if err != nil {
		return errors.Wrap(err, "transport.NewServer")
	}

	logger.Info().
		Str("network", cfg.NetworkName).
		Uint64("chain_id", cfg.ChainID).
		Str("addr", cfg.ListenAddr).
		Msg("starting twindex reader")

	return errors.Wrap(srv.ListenAndServe(cfg.ListenAddr), "srv.ListenAndServe")
}

// newDashboard dials the node, checks it serves the configured chain and
// builds the service on top of it.
func newDashboard(ctx context.Context, cfg config.Config, m *metrics.Metrics, logger zerolog.Logger) (*service.DashboardService, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	reg := registry.Default()

	cli, err := twindex.NewClient(cfg.RPCURL, reg, twindex.Options{
		CallTimeout: cfg.CallTimeout,
		Metrics:     m,
		Logger:      logger.With().Str("component", "twindex").Logger(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "twindex.NewClient")
	}

	if err := cli.VerifyNetwork(ctx, cfg.ChainID); err != nil {
		return nil, errors.Wrap(err, "cli.VerifyNetwork")
	}

	return service.NewDashboardService(cli, reg, logger), nil
}
