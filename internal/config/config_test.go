package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite3", cfg.Driver)
	assert.Empty(t, cfg.DSN)
	assert.Equal(t, "hawaii.db", cfg.Path)
	assert.Equal(t, 1, cfg.MaxOpenConns)
	assert.Equal(t, 1, cfg.MaxIdleConns)
	assert.Equal(t, time.Duration(0), cfg.ConnMaxLifetime)
}

func TestLoadFromEnv_CustomEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SQLITE_PATH", "/data/climate.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "/data/climate.db", cfg.Path)
	assert.Equal(t, 4, cfg.MaxOpenConns)
	assert.Equal(t, 2, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
}

func TestLoadFromEnv_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := LoadFromEnv()
	assert.ErrorContains(t, err, "invalid APP_ENV")
}

func TestLoadFromEnv_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadFromEnv()
	assert.ErrorContains(t, err, "invalid LOG_LEVEL")
}

func TestLoadFromEnv_InvalidMaxOpenConns(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := LoadFromEnv()
	assert.ErrorContains(t, err, "invalid DB_MAX_OPEN_CONNS")
}
