package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comefundme/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.StorageMemory, cfg.Ledger.Backend())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "comefundme:events", cfg.Redis.EventsKey)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LEDGER_STORAGE", "LevelDB")
	t.Setenv("LEDGER_LEVELDB_PATH", "/tmp/ledger")
	t.Setenv("PSQL_MAX_CONNS", "4")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.StorageLevelDB, cfg.Ledger.Backend())
	assert.Equal(t, "/tmp/ledger", cfg.Ledger.LevelDBPath)
	assert.Equal(t, int32(4), cfg.Psql.MaxConns)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestLedgerBackend(t *testing.T) {
	for in, want := range map[string]string{
		"":         configs.StorageMemory,
		"memory":   configs.StorageMemory,
		"postgres": configs.StoragePostgres,
		"psql":     configs.StoragePostgres,
		" leveldb": configs.StorageLevelDB,
	} {
		ledger := configs.Ledger{Storage: in}
		assert.Equal(t, want, ledger.Backend(), in)
		assert.NoError(t, ledger.Validate(), in)
	}
}

func TestLedgerUnknownBackend(t *testing.T) {
	ledger := configs.Ledger{Storage: "postgress"}
	assert.Equal(t, "postgress", ledger.Backend())
	assert.Error(t, ledger.Validate())
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("LEDGER_STORAGE", "postgress")
	_, err := Load()
	assert.ErrorContains(t, err, "postgress")
}

func TestHTTPListenAddr(t *testing.T) {
	assert.Equal(t, ":8080", configs.HTTP{Port: 8080}.ListenAddr())
	assert.Equal(t, "127.0.0.1:9000", configs.HTTP{Host: "127.0.0.1", Port: 9000}.ListenAddr())
}
