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
	target := flag.String("target", "", "gRPC service address (overrides SERVICE_URL)")
	flag.Parse()

	if path := config.LoadDotEnv(); path != "" {
		fmt.Printf("Loaded environment from: %s\n", path)
	}

	loadConfig := func() (*config.ClientConfig, error) {
		cfg, err := config.LoadClient()
		if err != nil {
			return nil, err
		}
		if *target != "" {
			cfg.ServiceURL = *target
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
			ProvideConn,
			ProvideClient,
			ProvideTokenManager,
			ProvideSource,
			ProvideWorker,
		),
		fx.Invoke(
			startWorker,
			func(lc fx.Lifecycle, cfg *config.ClientConfig, logger *zap.Logger) {
				telemetry.RegisterMetricsServer(lc, cfg.MetricsAddr, logger)
			},
		),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to start meterclient:", err)
		os.Exit(1)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, "error stopping meterclient:", err)
	}
}

func newLogger(cfg *config.ClientConfig) (*zap.Logger, error) {
	return logging.NewLogger(cfg.ServiceName, cfg.LogLevel)
}
