package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factora/pos-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "factora-pos", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 5*time.Second, cfg.Engine.TxTimeout)
	assert.Equal(t, 3, cfg.Engine.MaxAllocRetries)
	assert.False(t, cfg.Engine.RejectNegativeStock)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("ENGINE_TX_TIMEOUT_MS", "250")
	t.Setenv("ENGINE_REJECT_NEGATIVE_STOCK", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.TxTimeout)
	assert.True(t, cfg.Engine.RejectNegativeStock)
}

func TestDSN_EscapaCredenciales(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user@corp",
		Password: "p@ss:word/;",
		DBName:   "factora_pos",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.NotContains(t, dsn, "p@ss:word/;", "la contraseña debe ir URL-encoded")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@remoto:5432/db?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@remoto:5432/db?sslmode=require", db.ConnectionString())
}
