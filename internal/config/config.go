package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// The original integration ships this sandbox identifier with the client.
const defaultPayPalClientID = "AVhzeRuoFGzTijLO4dQ1EDuoikcEXCeAw71JYkKPcvxgrf09_Jss-BX9a0vNdxm9kgmDngteNyMMdt94"

type Config struct {
	APIBaseURL string

	PayPal struct {
		ClientID string
		Currency string
	}

	Cart struct {
		Backend   string // file | redis | mysql
		File      string
		RedisAddr string
		MySQLDSN  string
	}

	Stub struct {
		Addr string
	}
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. Every key has a usable default for local development.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.APIBaseURL = getenv("API_BASE_URL", "http://localhost:8000")
	cfg.PayPal.ClientID = getenv("PAYPAL_CLIENT_ID", defaultPayPalClientID)
	cfg.PayPal.Currency = getenv("PAYPAL_CURRENCY", "USD")

	cfg.Cart.Backend = getenv("CART_BACKEND", "file")
	switch cfg.Cart.Backend {
	case "file", "redis", "mysql":
	default:
		return nil, fmt.Errorf("unknown CART_BACKEND %q", cfg.Cart.Backend)
	}
	cfg.Cart.File = getenv("CART_FILE", "cart.json")
	cfg.Cart.RedisAddr = getenv("REDIS_ADDR", "localhost:6379")
	cfg.Cart.MySQLDSN = getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/proshop?parseTime=true")

	cfg.Stub.Addr = getenv("STUB_ADDR", ":8000")

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
