package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_ISSUER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://localhost:8080", cfg.JWT.Issuer)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_KEY", "k")
	t.Setenv("JWT_ISSUER", "https://api.bookstore.example")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "k", cfg.JWT.Key)
	assert.Equal(t, "https://api.bookstore.example", cfg.JWT.Issuer)
	assert.Equal(t, "postgresql://app:pw@db:6543/catalog?sslmode=disable", cfg.Database.DSN())
}

func TestDatabaseURLWins(t *testing.T) {
	d := DatabaseConfig{URL: "postgres://u:p@h/db", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@h/db", d.DSN())
}

func TestInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	assert.Equal(t, 5432, getEnvInt("DB_PORT", 5432))
}

func TestValidateProduction(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "production"},
		JWT: JWTConfig{Key: defaultJWTKey, Issuer: "i"},
		Database: DatabaseConfig{
			Password: "pw",
		},
	}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Key = "real-key"
	assert.NoError(t, cfg.Validate())

	cfg.Database.Password = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.URL = "postgres://u:p@h/db"
	assert.NoError(t, cfg.Validate())

	cfg.JWT.Issuer = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "10")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	dbCfg, err := LoadDatabaseConfig(DatabaseConfig{URL: "postgres://x"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://x", dbCfg.DSN)
	assert.Equal(t, int32(10), dbCfg.MaxConns)
	assert.Equal(t, 250*time.Millisecond, dbCfg.RetryDelay)
	assert.Equal(t, 5*time.Minute, dbCfg.MaxConnLifetime)
}

func TestLoadDatabaseConfigRejectsBadValues(t *testing.T) {
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	_, err := LoadDatabaseConfig(DatabaseConfig{})
	assert.Error(t, err)
}
