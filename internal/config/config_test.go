package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FLASH_SECRET", "flash-secret")
	t.Setenv("SESSION_SECRET", "session-secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.OrderAPITimeout)
	assert.Equal(t, 3*time.Second, cfg.BannerTTL)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.Equal(t, "/admin", cfg.DashboardPath)
	assert.False(t, cfg.KafkaEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FLASH_SECRET", "flash-secret")
	t.Setenv("SESSION_STORE", "db")
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/shop?parseTime=true")
	t.Setenv("ORDER_API_BASE_URL", "https://orders.internal/api")
	t.Setenv("ORDER_API_TIMEOUT", "2s")
	t.Setenv("AUDIT_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://orders.internal/api", cfg.OrderAPIBaseURL)
	assert.Equal(t, 2*time.Second, cfg.OrderAPITimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.AuditKafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Missing flash secret", func(t *testing.T) {
		t.Setenv("FLASH_SECRET", "")
		t.Setenv("SESSION_SECRET", "s")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Unknown session store", func(t *testing.T) {
		t.Setenv("FLASH_SECRET", "f")
		t.Setenv("SESSION_STORE", "redis")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown SESSION_STORE")
	})

	t.Run("Short CSRF key", func(t *testing.T) {
		t.Setenv("FLASH_SECRET", "f")
		t.Setenv("SESSION_SECRET", "s")
		t.Setenv("CSRF_KEY", "short")
		_, err := Load()
		assert.ErrorContains(t, err, "CSRF_KEY")
	})
}
