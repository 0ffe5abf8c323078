package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookstore/config"
)

// TestLoadConfig_Defaults verifica os valores padrão com apenas a variável obrigatória.
func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 120, cfg.MaxOrderValue)
	assert.Equal(t, 1000, cfg.MaxRestockQuantity)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.RabbitMQURL)
}

// TestLoadConfig_Overrides lê os valores definidos no ambiente.
func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_ORDER_VALUE", "200")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PERIOD_MIN", "5")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg := config.LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 200, cfg.MaxOrderValue)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 5*time.Minute, cfg.RateLimitPeriod)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}

// TestLoadConfig_InvalidNumberFallsBack usa o padrão para valores inválidos.
func TestLoadConfig_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("MAX_RESTOCK_QUANTITY", "muitos")
	t.Setenv("OTEL_INSECURE", "talvez")

	cfg := config.LoadConfig()

	assert.Equal(t, 1000, cfg.MaxRestockQuantity)
	assert.True(t, cfg.OTELInsecure)
}
