package main

import (
	"context"
	"fmt"
	"net"
	"time"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"github.com/milad/meterreader/internal/auth"
	"github.com/milad/meterreader/internal/config"
	grpcserver "github.com/milad/meterreader/internal/transport/grpc"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func startGRPCServer(lc fx.Lifecycle, cfg *config.ServerConfig, logger *zap.Logger, api *grpcserver.Server, issuer *auth.Issuer) {
	g := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcserver.UnaryAuthInterceptor(issuer, logger)),
		grpc.ChainStreamInterceptor(grpcserver.StreamAuthInterceptor(issuer, logger)),
	)
	meterreaderv1.RegisterMeterReadingServiceServer(g, api)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(g, hs)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", cfg.GRPCAddr)
			if err != nil {
				return fmt.Errorf("listen %q: %w", cfg.GRPCAddr, err)
			}
			hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
			logger.Info("gRPC listening",
				zap.String("addr", lis.Addr().String()),
				zap.String("repo_driver", cfg.Repository.Driver),
				zap.Int32("min_reading_value", cfg.MinReadingValue),
			)
			go func() {
				if err := g.Serve(lis); err != nil {
					logger.Error("gRPC serve failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down gRPC")
			hs.Shutdown()
			ch := make(chan struct{})
			go func() {
				g.GracefulStop()
				close(ch)
			}()
			select {
			case <-ch:
			case <-time.After(5 * time.Second):
				g.Stop()
			}
			return nil
		},
	})
}
