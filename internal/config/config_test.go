package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, 60*time.Second, cfg.PongWait)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, "kick", cfg.Backpressure)
	assert.Equal(t, 500, cfg.MemoryLogCap)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Interval)
	assert.Empty(t, cfg.Storage.SQLitePath)
	assert.Empty(t, cfg.Storage.RedisAddr)
	assert.Equal(t, "chat:", cfg.Storage.RedisPrefix)
	assert.Equal(t, 168*time.Hour, cfg.Storage.UserStateTTL)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: debug
port: 9000
history_limit: 20
rate_limit:
  burst: 5
storage:
  sqlite_path: /tmp/chat.db
  user_state_ttl: 1h
`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Interval)
	assert.Equal(t, "/tmp/chat.db", cfg.Storage.SQLitePath)
	assert.Equal(t, time.Hour, cfg.Storage.UserStateTTL)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("CHAT_PORT", "7070")
	t.Setenv("CHAT_STORAGE_REDIS_ADDR", "redis:6379")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "redis:6379", cfg.Storage.RedisAddr)
}

func TestLoadPicksFileByEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.staging.yaml"), []byte("port: 8181\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("CONFIG_ENV", "staging")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Port)
}
