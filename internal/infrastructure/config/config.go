package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3032"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Store StoreConfig
}

// StoreConfig locates the two JSON documents the service persists to.
type StoreConfig struct {
	UserPath    string `env:"USER_STORE_PATH,    default=data/data.json"`
	ProductPath string `env:"PRODUCT_STORE_PATH, default=data/product.json"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
