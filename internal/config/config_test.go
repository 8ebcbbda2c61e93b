package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROJECTDASH_CONFIG_PATH",
		"PROJECTDASH_TRANSPORT",
		"PROJECTDASH_SERVER_HOST",
		"PROJECTDASH_SERVER_PORT",
		"PROJECTDASH_STORE_BACKEND",
		"PROJECTDASH_LOG_LEVEL",
		"PROJECTDASH_LOG_PATH",
		"PROJECTDASH_SEED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, TransportStdio, cfg.Transport)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
	require.True(t, cfg.Seed)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "projectdash.yaml")
	data := []byte(`
transport: http
server:
  host: 0.0.0.0
  port: 9000
store:
  backend: sqlite
log:
  level: debug
seed: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("PROJECTDASH_CONFIG_PATH", path)
	t.Setenv("PROJECTDASH_SERVER_PORT", "9100")
	t.Setenv("PROJECTDASH_LOG_PATH", "/tmp/projectdash.log")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, TransportHTTP, cfg.Transport)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, BackendSQLite, cfg.Store.Backend)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/projectdash.log", cfg.Log.Path)
	require.False(t, cfg.Seed)
}

func TestLoadExplicitPathWins(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "explicit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))
	t.Setenv("PROJECTDASH_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"PROJECTDASH_SERVER_PORT": "http"}},
		{name: "bad seed", env: map[string]string{"PROJECTDASH_SEED": "maybe"}},
		{name: "unknown transport", env: map[string]string{"PROJECTDASH_TRANSPORT": "grpc"}},
		{name: "unknown backend", env: map[string]string{"PROJECTDASH_STORE_BACKEND": "postgres"}},
		{name: "missing file", env: map[string]string{"PROJECTDASH_CONFIG_PATH": "/nonexistent/projectdash.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestValidatePort(t *testing.T) {
	cfg := Default()
	cfg.Transport = TransportHTTP
	cfg.Server.Port = 0
	require.Error(t, cfg.Validate())

	cfg.Transport = TransportStdio
	require.NoError(t, cfg.Validate())
}
