package main

import (
	"context"
	"fmt"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"github.com/milad/meterreader/internal/config"
	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/reading"
	"github.com/milad/meterreader/internal/worker"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ProvideConn creates the gRPC client connection, closed on shutdown
func ProvideConn(lc fx.Lifecycle, cfg *config.ClientConfig) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(cfg.ServiceURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial gRPC %q: %w", cfg.ServiceURL, err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return conn.Close()
		},
	})
	return conn, nil
}

// ProvideClient wraps the connection in the generated service client
func ProvideClient(conn *grpc.ClientConn) worker.MeterReadingClient {
	return meterreaderv1.NewMeterReadingServiceClient(conn)
}

// ProvideTokenManager creates the bearer token holder
func ProvideTokenManager(client worker.MeterReadingClient) *worker.TokenManager {
	return worker.NewTokenManager(client, nil)
}

// ProvideSource creates the reading generator
func ProvideSource() worker.ReadingGenerator {
	return reading.NewSource()
}

// ProvideWorker creates the submission loop
func ProvideWorker(
	cfg *config.ClientConfig,
	client worker.MeterReadingClient,
	tokens *worker.TokenManager,
	source worker.ReadingGenerator,
	logger *zap.Logger,
) *worker.Worker {
	return worker.New(worker.Config{
		CustomerID:       cfg.CustomerID,
		BatchSize:        cfg.BatchSize,
		PollInterval:     cfg.PollInterval,
		Credential:       domain.Credential{Username: cfg.Username, Password: cfg.Password},
		DiagnosticsEvery: cfg.DiagnosticsEvery,
		RequestTimeout:   cfg.RequestTimeout,
	}, client, tokens, source, logger)
}

func startWorker(lc fx.Lifecycle, w *worker.Worker, cfg *config.ClientConfig, logger *zap.Logger) {
	// Cancelled on shutdown
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("starting meter client", zap.String("target", cfg.ServiceURL))
			go func() {
				defer close(done)
				if err := w.Run(ctx); err != nil {
					logger.Error("meter client stopped with error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
