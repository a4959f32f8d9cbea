package config

import (
	"fmt"
	"os"
)

// Config carries everything read from the environment at startup.
type Config struct {
	HTTPAddr string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr string

	QuoteBaseURL string
	QuoteAPIKey  string

	JWTSecret string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment. The quote API key has
// no default and is required: without it every price lookup would fail, so
// startup aborts instead.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		DBHost:       getenv("DB_HOST", "127.0.0.1"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBUser:       getenv("DB_USER", "root"),
		DBPass:       os.Getenv("DB_PASS"),
		DBName:       getenv("DB_NAME", "trading"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		QuoteBaseURL: getenv("QUOTE_BASE_URL", "https://cloud.iexapis.com/stable"),
		QuoteAPIKey:  os.Getenv("QUOTE_API_KEY"),
		JWTSecret:    getenv("JWT_SECRET", "secret"),
	}

	if cfg.QuoteAPIKey == "" {
		return nil, fmt.Errorf("QUOTE_API_KEY not set")
	}

	return cfg, nil
}

// DSN builds the MySQL connection string. parseTime makes DATETIME columns
// scan into time.Time.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}
