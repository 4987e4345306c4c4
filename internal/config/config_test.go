package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		for _, key := range []string{EnvRPCURL, EnvListenAddr, EnvLogLevel} {
			t.Setenv(key, "")
		}

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("file values and fallbacks", func(t *testing.T) {
		path := writeConfig(t, `
rpc_url: http://localhost:8545
chain_id: 97
listen_addr: ":9000"
request_timeout: 2s
call_timeout: 0s
log:
  level: debug
  format: console
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "http://localhost:8545", cfg.RPCURL)
		require.Equal(t, uint64(97), cfg.ChainID)
		require.Equal(t, ":9000", cfg.ListenAddr)
		require.Equal(t, 2*time.Second, cfg.RequestTimeout)
		require.Equal(t, 5*time.Second, cfg.CallTimeout)
		require.Equal(t, 5*time.Second, cfg.GraceTimeout)
		require.Equal(t, LogConfig{Level: "debug", Format: "console"}, cfg.Log)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv(EnvRPCURL, "http://env:8545")
		t.Setenv(EnvListenAddr, ":7000")
		t.Setenv(EnvLogLevel, "WARN")

		cfg, err := Load(writeConfig(t, "rpc_url: http://file:8545\n"))
		require.NoError(t, err)
		require.Equal(t, "http://env:8545", cfg.RPCURL)
		require.Equal(t, ":7000", cfg.ListenAddr)
		require.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "rpc_url: [unterminated\n"))
		require.Error(t, err)
	})

	t.Run("empty rpc url", func(t *testing.T) {
		_, err := Load(writeConfig(t, "rpc_url: \"\"\n"))
		require.ErrorContains(t, err, "rpc_url is required")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "zero chain id", mutate: func(c *Config) { c.ChainID = 0 }, wantErr: "chain_id"},
		{name: "negative timeout", mutate: func(c *Config) { c.CallTimeout = -time.Second }, wantErr: "negative"},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
