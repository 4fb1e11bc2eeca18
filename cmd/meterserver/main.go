package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/milad/meterreader/internal/config"
	"github.com/milad/meterreader/internal/logging"
	"github.com/milad/meterreader/internal/telemetry"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	var (
		addr        = flag.String("addr", "", "gRPC listen address (overrides GRPC_ADDR)")
		metricsAddr = flag.String("metrics", "", "metrics listen address (overrides METRICS_ADDR)")
	)
	flag.Parse()

	if path := config.LoadDotEnv(); path != "" {
		fmt.Printf("Loaded environment from: %s\n", path)
	}

	loadConfig := func() (*config.ServerConfig, error) {
		cfg, err := config.LoadServer()
		if err != nil {
			return nil, err
		}
		if *addr != "" {
			cfg.GRPCAddr = *addr
		}
		if *metricsAddr != "" {
			cfg.MetricsAddr = *metricsAddr
		}
		return cfg, nil
	}

	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			loadConfig,
			newLogger,
			ProvideRepository,
			ProvidePublisher,
			ProvideSink,
			ProvideIssuer,
			ProvideCredentialStore,
			ProvideAuthService,
			ProvideIngestService,
			ProvideDiagnosticsService,
			ProvideGRPCAPI,
		),
		fx.Invoke(
			startGRPCServer,
			func(lc fx.Lifecycle, cfg *config.ServerConfig, logger *zap.Logger) {
				telemetry.RegisterMetricsServer(lc, cfg.MetricsAddr, logger)
			},
		),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to start meterserver:", err)
		os.Exit(1)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, "error stopping meterserver:", err)
	}
}

func newLogger(cfg *config.ServerConfig) (*zap.Logger, error) {
	return logging.NewLogger(cfg.ServiceName, cfg.LogLevel)
}
