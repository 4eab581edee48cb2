package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("CHAIN_RPC_URL", "http://127.0.0.1:7545")
		t.Setenv("ORDER_CONTRACT", "0xOrder")
		t.Setenv("SELLER_CONTRACT", "0xSeller")
		t.Setenv("USER_REGISTRY_CONTRACT", "0xUsers")
		t.Setenv("GATEWAY_TIMEOUT_MS", "2500")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "http://127.0.0.1:7545", cfg.ChainRPCURL)
		assert.Equal(t, "0xOrder", cfg.OrderContract)
		assert.Equal(t, "0xSeller", cfg.SellerContract)
		assert.Equal(t, "0xUsers", cfg.UserRegistry)
		assert.Equal(t, 2500*time.Millisecond, cfg.GatewayTimeout)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.True(t, cfg.ListingEnabled())
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("CHAIN_RPC_URL", "http://127.0.0.1:7545")
		t.Setenv("APP_PORT", "")
		t.Setenv("GATEWAY_TIMEOUT_MS", "")
		t.Setenv("DB_HOST", "")

		cfg := LoadConfig()

		assert.Equal(t, "3001", cfg.AppPort)
		assert.Equal(t, 15*time.Second, cfg.GatewayTimeout)
		assert.False(t, cfg.ListingEnabled())
	})

	t.Run("Invalid timeout falls back", func(t *testing.T) {
		t.Setenv("CHAIN_RPC_URL", "http://127.0.0.1:7545")
		t.Setenv("GATEWAY_TIMEOUT_MS", "not-a-number")

		cfg := LoadConfig()

		assert.Equal(t, 15*time.Second, cfg.GatewayTimeout)
	})
}
