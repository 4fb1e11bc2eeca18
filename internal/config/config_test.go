package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "s")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, int32(10000), cfg.MinReadingValue)
	assert.Equal(t, DriverCSV, cfg.Repository.Driver)
	assert.Equal(t, 20*time.Minute, cfg.Token.TTL)
	assert.Equal(t, int64(1000), cfg.Redis.DiagnosticsMax)
	assert.Empty(t, cfg.RabbitMQ.URL)
}

func TestLoadServer_Validation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "unknown driver", env: map[string]string{"TOKEN_SECRET": "s", "REPO_DRIVER": "mongo"}},
		{name: "postgres without url", env: map[string]string{"TOKEN_SECRET": "s", "REPO_DRIVER": "postgres"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TOKEN_SECRET", "")
			t.Setenv("REPO_DRIVER", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadServer()
			assert.Error(t, err)
		})
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("CUSTOMER_ID", "42")
	t.Setenv("SERVICE_USERNAME", "user")
	t.Setenv("SERVICE_PASSWORD", "pw")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("BATCH_SIZE", "not-a-number")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, int32(42), cfg.CustomerID)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 5, cfg.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadClient_RequiresCredentials(t *testing.T) {
	t.Setenv("CUSTOMER_ID", "42")
	t.Setenv("SERVICE_USERNAME", "")
	t.Setenv("SERVICE_PASSWORD", "")

	_, err := LoadClient()
	assert.Error(t, err)
}

func TestLoadGateway(t *testing.T) {
	t.Setenv("GRPC_WAIT_TIMEOUT_MS", "1500")

	cfg := LoadGateway()
	assert.Equal(t, 1500*time.Millisecond, cfg.GRPCWait)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("METER_DOTENV_PROBE=loaded\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("METER_DOTENV_PROBE", "")
	os.Unsetenv("METER_DOTENV_PROBE")

	path := LoadDotEnv()
	assert.Equal(t, ".env", filepath.Base(path))
	assert.Equal(t, "loaded", os.Getenv("METER_DOTENV_PROBE"))
}
