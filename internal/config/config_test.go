package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.App.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Clinic.TimeoutSeconds)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, "booking-gateway.appointment", cfg.RabbitMQ.Queue)
	assert.True(t, cfg.IsLocal())
	assert.False(t, cfg.IsNotLocal())
}

func TestNewConfigLowercasesEnv(t *testing.T) {
	t.Setenv("APP_ENV", "PRODUCTION")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.True(t, cfg.IsNotLocal())
}

func TestNewConfigCacheRequiresRabbitMQ(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("RABBITMQ_ENABLED", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)

	// Без брокера кэш некому инвалидировать
	assert.False(t, cfg.Cache.Enabled)
}

func TestNewConfigCacheWithRabbitMQ(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 1000, cfg.Cache.Size)
}
