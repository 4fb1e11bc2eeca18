package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Repository drivers accepted in REPO_DRIVER.
const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ServerConfig holds the meter reading service configuration
type ServerConfig struct {
	ServiceName     string
	LogLevel        string
	GRPCAddr        string
	MetricsAddr     string
	MinReadingValue int32
	Repository      RepositoryConfig
	Token           TokenConfig
	Users           string
	RabbitMQ        RabbitMQConfig
	Redis           RedisConfig
}

// RepositoryConfig selects and configures the persistence backend
type RepositoryConfig struct {
	Driver      string
	CSVPath     string
	SQLitePath  string
	DatabaseURL string
}

// TokenConfig holds bearer token signing settings
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// RabbitMQConfig holds the accepted-batch publisher settings; an empty URL disables it
type RabbitMQConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
}

// RedisConfig holds the diagnostics sink settings; an empty URL disables it
type RedisConfig struct {
	URL            string
	DiagnosticsKey string
	DiagnosticsMax int64
}

// ClientConfig holds the meter client configuration
type ClientConfig struct {
	ServiceName      string
	LogLevel         string
	ServiceURL       string
	MetricsAddr      string
	CustomerID       int32
	PollInterval     time.Duration
	Username         string
	Password         string
	BatchSize        int
	DiagnosticsEvery int
	RequestTimeout   time.Duration
}

// GatewayConfig holds the HTTP gateway configuration
type GatewayConfig struct {
	ServiceName string
	LogLevel    string
	HTTPAddr    string
	GRPCTarget  string
	GRPCWait    time.Duration
}

// LoadServer loads the service configuration from environment variables
func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{
		ServiceName:     getEnv("SERVICE_NAME", "meterreader"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GRPCAddr:        getEnv("GRPC_ADDR", ":9090"),
		MetricsAddr:     getEnv("METRICS_ADDR", ":9091"),
		MinReadingValue: int32(getEnvAsInt("MIN_READING_VALUE", 10000)),
		Repository: RepositoryConfig{
			Driver:      getEnv("REPO_DRIVER", DriverCSV),
			CSVPath:     getEnv("CSV_PATH", "readings.csv"),
			SQLitePath:  getEnv("SQLITE_PATH", "meterreader.db"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
		Token: TokenConfig{
			Secret: getEnv("TOKEN_SECRET", ""),
			Issuer: getEnv("TOKEN_ISSUER", "meterreader"),
			TTL:    getEnvAsDuration("TOKEN_TTL", 20*time.Minute),
		},
		Users: getEnv("METER_USERS", ""),
		RabbitMQ: RabbitMQConfig{
			URL:        getEnv("RABBITMQ_URL", ""),
			Exchange:   getEnv("RABBITMQ_EXCHANGE", "meterreader.events.exchange"),
			RoutingKey: getEnv("RABBITMQ_ROUTING_KEY", "meter.readings.accepted"),
		},
		Redis: RedisConfig{
			URL:            getEnv("REDIS_URL", ""),
			DiagnosticsKey: getEnv("REDIS_DIAGNOSTICS_KEY", "meterreader:diagnostics"),
			DiagnosticsMax: int64(getEnvAsInt("REDIS_DIAGNOSTICS_MAX", 1000)),
		},
	}

	if cfg.Token.Secret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required but not set in environment variables")
	}
	switch cfg.Repository.Driver {
	case DriverCSV, DriverSQLite:
	case DriverPostgres:
		if cfg.Repository.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when REPO_DRIVER=%s", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown REPO_DRIVER %q (want %s, %s or %s)", cfg.Repository.Driver, DriverCSV, DriverSQLite, DriverPostgres)
	}

	return cfg, nil
}

// LoadClient loads the meter client configuration from environment variables
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{
		ServiceName:      getEnv("SERVICE_NAME", "meterclient"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ServiceURL:       getEnv("SERVICE_URL", "127.0.0.1:9090"),
		MetricsAddr:      getEnv("METRICS_ADDR", ""),
		CustomerID:       int32(getEnvAsInt("CUSTOMER_ID", 0)),
		PollInterval:     getEnvAsDuration("POLL_INTERVAL", 10*time.Second),
		Username:         getEnv("SERVICE_USERNAME", ""),
		Password:         getEnv("SERVICE_PASSWORD", ""),
		BatchSize:        getEnvAsInt("BATCH_SIZE", 5),
		DiagnosticsEvery: getEnvAsInt("DIAGNOSTICS_EVERY", 0),
		RequestTimeout:   getEnvAsDuration("REQUEST_TIMEOUT", 5*time.Second),
	}

	if cfg.CustomerID <= 0 {
		return nil, fmt.Errorf("CUSTOMER_ID is required but not set in environment variables")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SERVICE_USERNAME and SERVICE_PASSWORD are required but not set in environment variables")
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("POLL_INTERVAL must be positive, got %s", cfg.PollInterval)
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}

	return cfg, nil
}

// LoadGateway loads the HTTP gateway configuration from environment variables
func LoadGateway() *GatewayConfig {
	return &GatewayConfig{
		ServiceName: getEnv("SERVICE_NAME", "meterreader-gateway"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		GRPCTarget:  getEnv("GRPC_TARGET", "127.0.0.1:9090"),
		GRPCWait:    time.Duration(getEnvAsInt("GRPC_WAIT_TIMEOUT_MS", 20_000)) * time.Millisecond,
	}
}

// LoadDotEnv loads the first .env found in the working directory or its two parents.
// It returns the loaded path, or "" when none was found.
func LoadDotEnv() string {
	candidates := []string{".env"}
	if workDir, err := os.Getwd(); err == nil {
		parentDir := filepath.Dir(workDir)
		candidates = append(candidates,
			filepath.Join(parentDir, ".env"),
			filepath.Join(filepath.Dir(parentDir), ".env"),
		)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err == nil {
			abs, _ := filepath.Abs(p)
			return abs
		}
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
