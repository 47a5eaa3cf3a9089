package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 4096, cfg.Cache.Size)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
env: prod
log_level: warn
http:
  addr: 127.0.0.1:9000
  rate_limit: 5
  rate_burst: 10
store:
  dir: ""
cache:
  size: 100
  ttl: 30s
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, 5.0, cfg.HTTP.RateLimit)
	assert.Equal(t, 10, cfg.HTTP.RateBurst)
	assert.Empty(t, cfg.Store.Dir)
	assert.Equal(t, 100, cfg.Cache.Size)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "log_level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 40, cfg.HTTP.RateBurst)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", "http:\n  addr: :9000\n")
	t.Setenv("POSTADDR_ENV", "test")
	t.Setenv("POSTADDR_HTTP_ADDR", ":7000")
	t.Setenv("POSTADDR_STORE_DIR", "")
	t.Setenv("POSTADDR_RATE_LIMIT", "0")
	t.Setenv("POSTADDR_RATE_BURST", "3")
	t.Setenv("POSTADDR_CACHE_SIZE", "0")
	t.Setenv("POSTADDR_CACHE_TTL", "1h")
	t.Setenv("POSTADDR_MAX_BODY_BYTES", "1024")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Empty(t, cfg.Store.Dir)
	assert.Zero(t, cfg.HTTP.RateLimit)
	assert.Equal(t, 3, cfg.HTTP.RateBurst)
	assert.Zero(t, cfg.Cache.Size)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, int64(1024), cfg.HTTP.MaxBodyBytes)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"bad rate limit", map[string]string{"POSTADDR_RATE_LIMIT": "fast"}, "invalid POSTADDR_RATE_LIMIT value"},
		{"bad burst", map[string]string{"POSTADDR_RATE_BURST": "x"}, "invalid POSTADDR_RATE_BURST value"},
		{"bad cache size", map[string]string{"POSTADDR_CACHE_SIZE": "1.5"}, "invalid POSTADDR_CACHE_SIZE value"},
		{"bad body limit", map[string]string{"POSTADDR_MAX_BODY_BYTES": "1k"}, "invalid POSTADDR_MAX_BODY_BYTES value"},
		{"negative body limit", map[string]string{"POSTADDR_MAX_BODY_BYTES": "-1"}, "invalid config"},
		{"bad ttl", map[string]string{"POSTADDR_CACHE_TTL": "10"}, "invalid POSTADDR_CACHE_TTL value"},
		{"unknown env", map[string]string{"POSTADDR_ENV": "staging"}, "invalid config"},
		{"unknown level", map[string]string{"POSTADDR_LOG_LEVEL": "trace"}, "invalid config"},
		{"empty addr", map[string]string{"POSTADDR_HTTP_ADDR": ""}, "invalid config"},
		{"zero burst", map[string]string{"POSTADDR_RATE_BURST": "0"}, "invalid config"},
		{"negative cache", map[string]string{"POSTADDR_CACHE_SIZE": "-1"}, "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load("")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "http: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	// Register the variables with t.Setenv first so they are restored afterwards.
	t.Setenv("POSTADDR_HTTP_ADDR", ":1111")
	t.Setenv("POSTADDR_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("POSTADDR_LOG_LEVEL"))

	path := writeFile(t, ".env", "POSTADDR_LOG_LEVEL=error\nPOSTADDR_HTTP_ADDR=:2222\n")
	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "error", os.Getenv("POSTADDR_LOG_LEVEL"))
	assert.Equal(t, ":1111", os.Getenv("POSTADDR_HTTP_ADDR"), "existing variables win")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, ":1111", cfg.HTTP.Addr)
}
