package main

import (
	"context"
	"fmt"

	"github.com/milad/meterreader/internal/auth"
	"github.com/milad/meterreader/internal/config"
	"github.com/milad/meterreader/internal/diagnostics"
	"github.com/milad/meterreader/internal/events"
	"github.com/milad/meterreader/internal/repo"
	"github.com/milad/meterreader/internal/repo/csvrepo"
	"github.com/milad/meterreader/internal/repo/pgrepo"
	"github.com/milad/meterreader/internal/repo/sqliterepo"
	"github.com/milad/meterreader/internal/service"
	grpcserver "github.com/milad/meterreader/internal/transport/grpc"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideRepository opens the backend selected by REPO_DRIVER
func ProvideRepository(lc fx.Lifecycle, cfg *config.ServerConfig, logger *zap.Logger) (repo.ReadingRepository, error) {
	switch cfg.Repository.Driver {
	case config.DriverPostgres:
		pool, err := pgrepo.NewPool(lc, logger, cfg.Repository.DatabaseURL)
		if err != nil {
			return nil, err
		}
		r := pgrepo.New(pool)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return r.EnsureSchema(ctx)
			},
		})
		return r, nil

	case config.DriverSQLite:
		r, err := sqliterepo.Open(cfg.Repository.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("using sqlite repository", zap.String("path", cfg.Repository.SQLitePath))
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return r.Close()
			},
		})
		return r, nil

	default:
		r, err := csvrepo.Open(cfg.Repository.CSVPath)
		if r == nil {
			return nil, err
		}
		if err != nil {
			// A few malformed rows do not prevent appending new batches.
			logger.Warn("csv repository loaded with errors", zap.Error(err))
		}
		logger.Info("using csv repository", zap.String("path", cfg.Repository.CSVPath))
		return r, nil
	}
}

// ProvidePublisher connects to RabbitMQ when configured, otherwise events are dropped
func ProvidePublisher(lc fx.Lifecycle, cfg *config.ServerConfig, logger *zap.Logger) (events.Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		logger.Info("RABBITMQ_URL not set; accepted-batch events disabled")
		return events.Nop{}, nil
	}
	pub, conn, err := events.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.RoutingKey, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if err := pub.Close(); err != nil {
				logger.Warn("close publisher channel", zap.Error(err))
			}
			return conn.Close()
		},
	})
	return pub, nil
}

// ProvideSink logs diagnostics and, when REDIS_URL is set, also pushes them to Redis
func ProvideSink(lc fx.Lifecycle, cfg *config.ServerConfig, logger *zap.Logger) (diagnostics.Sink, error) {
	logSink := diagnostics.NewLogSink(logger)
	if cfg.Redis.URL == "" {
		return logSink, nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opt)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			logger.Info("diagnostics redis sink ready", zap.String("key", cfg.Redis.DiagnosticsKey))
			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
	return diagnostics.Multi{logSink, diagnostics.NewRedisSink(rdb, cfg.Redis.DiagnosticsKey, cfg.Redis.DiagnosticsMax)}, nil
}

// ProvideIssuer creates the bearer token signer
func ProvideIssuer(cfg *config.ServerConfig) (*auth.Issuer, error) {
	return auth.NewIssuer(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.TTL)
}

// ProvideCredentialStore parses METER_USERS
func ProvideCredentialStore(cfg *config.ServerConfig, logger *zap.Logger) (auth.CredentialStore, error) {
	store, err := auth.ParseUsers(cfg.Users)
	if err != nil {
		return nil, fmt.Errorf("parse METER_USERS: %w", err)
	}
	if cfg.Users == "" {
		logger.Warn("METER_USERS is empty; every token request will be refused")
	}
	return store, nil
}

// ProvideAuthService creates the token issuance service
func ProvideAuthService(store auth.CredentialStore, issuer *auth.Issuer, logger *zap.Logger) *auth.Service {
	return auth.NewService(store, issuer, logger)
}

// ProvideIngestService creates the reading batch service
func ProvideIngestService(r repo.ReadingRepository, pub events.Publisher, cfg *config.ServerConfig, logger *zap.Logger) *service.IngestService {
	return service.NewIngestService(r, pub, cfg.MinReadingValue, logger)
}

// ProvideDiagnosticsService creates the diagnostics stream consumer
func ProvideDiagnosticsService(sink diagnostics.Sink, logger *zap.Logger) *service.DiagnosticsService {
	return service.NewDiagnosticsService(sink, logger)
}

// ProvideGRPCAPI creates the gRPC service implementation
func ProvideGRPCAPI(ingest *service.IngestService, diags *service.DiagnosticsService, tokens *auth.Service, logger *zap.Logger) *grpcserver.Server {
	return grpcserver.New(ingest, diags, tokens, logger)
}
