package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/shareit")

		cfg, err := fromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.False(t, cfg.IsProduction)
		assert.True(t, cfg.DBMigrate)
		assert.True(t, cfg.TrustUserHeader)
		assert.Equal(t, 0, cfg.RateLimitRequests)
		assert.Equal(t, time.Minute, cfg.RateLimitWindow)
		assert.Empty(t, cfg.KafkaBrokers)
		assert.Equal(t, "shareit.bookings", cfg.KafkaTopic)
	})

	t.Run("MissingDSN", func(t *testing.T) {
		t.Setenv("DB_DSN", "")
		_, err := fromEnv()
		assert.Error(t, err)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/shareit")
		t.Setenv("APP_ENV", "prod")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("TRUST_USER_HEADER", "false")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("RATE_LIMIT_REQUESTS", "100")
		t.Setenv("RATE_LIMIT_WINDOW", "30s")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

		cfg, err := fromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction)
		assert.False(t, cfg.TrustUserHeader)
		assert.Equal(t, 3, cfg.RedisDB)
		assert.Equal(t, 100, cfg.RateLimitRequests)
		assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	})

	t.Run("NoIdentitySource", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/shareit")
		t.Setenv("JWT_SECRET", "")
		t.Setenv("TRUST_USER_HEADER", "false")
		_, err := fromEnv()
		assert.Error(t, err)
	})

	t.Run("InvalidInt", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/shareit")
		t.Setenv("REDIS_DB", "zero")
		_, err := fromEnv()
		assert.Error(t, err)
	})
}
