package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	ChainRPCURL    string
	OrderContract  string
	SellerContract string
	UserRegistry   string
	GatewayTimeout time.Duration

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

const defaultGatewayTimeoutMS = 15000

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		ChainRPCURL:    os.Getenv("CHAIN_RPC_URL"),
		OrderContract:  os.Getenv("ORDER_CONTRACT"),
		SellerContract: os.Getenv("SELLER_CONTRACT"),
		UserRegistry:   os.Getenv("USER_REGISTRY_CONTRACT"),
		GatewayTimeout: gatewayTimeout(),
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3001"
	}

	if cfg.ChainRPCURL == "" {
		log.Fatal("CHAIN_RPC_URL is not set")
	}

	return cfg
}

// ListingEnabled reports whether the classifieds variant has a database configured.
// The session/cart core runs without one.
func (c *Config) ListingEnabled() bool {
	return c.DBHost != ""
}

func gatewayTimeout() time.Duration {
	raw := os.Getenv("GATEWAY_TIMEOUT_MS")
	if raw == "" {
		return defaultGatewayTimeoutMS * time.Millisecond
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return defaultGatewayTimeoutMS * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
