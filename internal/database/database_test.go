package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfigFromEnv()

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, "postgres", cfg.User)
		assert.Equal(t, "dailygator", cfg.DBName)
		assert.Equal(t, "5432", cfg.Port)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, "UTC", cfg.TimeZone)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "gator_prod")
		t.Setenv("DB_PORT", "5433")

		cfg := LoadConfigFromEnv()

		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, "gator_prod", cfg.DBName)
		assert.Equal(t, "5433", cfg.Port)
	})
}

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		User:     "gator",
		Password: "secret",
		DBName:   "dailygator",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	dsn := BuildDSN(cfg)
	assert.Equal(t,
		"host=localhost user=gator password=secret dbname=dailygator port=5432 sslmode=disable TimeZone=UTC",
		dsn)
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("nil connection", func(t *testing.T) {
		assert.Error(t, HealthCheck(ctx, nil))
	})

	t.Run("live connection", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		assert.NoError(t, HealthCheck(ctx, db))
	})

	t.Run("closed connection", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		assert.Error(t, HealthCheck(ctx, db))
	})
}

func TestSanitizeError(t *testing.T) {
	cfg := Config{Password: "hunter2"}

	t.Run("nil error passes through", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, cfg))
	})

	t.Run("password redacted", func(t *testing.T) {
		err := SanitizeError(errors.New(`authentication failed for password "hunter2"`), cfg)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "hunter2")
		assert.Contains(t, err.Error(), "***")
	})
}
