// Package config loads the address service configuration from an optional
// YAML file, a .env file and POSTADDR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string `yaml:"env" validate:"oneof=dev test prod"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	HTTP struct {
		Addr      string  `yaml:"addr" validate:"required"`
		RateLimit float64 `yaml:"rate_limit" validate:"gte=0"` // requests per second per client, 0 disables
		RateBurst int     `yaml:"rate_burst" validate:"gte=1"`

		MaxBodyBytes int64 `yaml:"max_body_bytes" validate:"gte=0"` // 0 uses the server default
	} `yaml:"http"`

	Store struct {
		Dir string `yaml:"dir"` // empty keeps the address book in memory
	} `yaml:"store"`

	Cache struct {
		Size int           `yaml:"size" validate:"gte=0"`
		TTL  time.Duration `yaml:"ttl" validate:"gte=0"`
	} `yaml:"cache"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	cfg := &Config{Env: "dev", LogLevel: "info"}
	cfg.HTTP.Addr = ":8080"
	cfg.HTTP.RateLimit = 20
	cfg.HTTP.RateBurst = 40
	cfg.HTTP.MaxBodyBytes = 64 << 10
	cfg.Store.Dir = "./postaddr-data"
	cfg.Cache.Size = 4096
	cfg.Cache.TTL = 10 * time.Minute
	return cfg
}

// LoadDotEnv loads a .env file into the environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads path (skipped when empty), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("POSTADDR_ENV"); ok {
		cfg.Env = v
	}
	if v, ok := os.LookupEnv("POSTADDR_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("POSTADDR_HTTP_ADDR"); ok {
		cfg.HTTP.Addr = v
	}
	if v, ok := os.LookupEnv("POSTADDR_STORE_DIR"); ok {
		cfg.Store.Dir = v
	}
	if v, ok := os.LookupEnv("POSTADDR_RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid POSTADDR_RATE_LIMIT value: %w", err)
		}
		cfg.HTTP.RateLimit = f
	}
	if v, ok := os.LookupEnv("POSTADDR_RATE_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid POSTADDR_RATE_BURST value: %w", err)
		}
		cfg.HTTP.RateBurst = n
	}
	if v, ok := os.LookupEnv("POSTADDR_MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid POSTADDR_MAX_BODY_BYTES value: %w", err)
		}
		cfg.HTTP.MaxBodyBytes = n
	}
	if v, ok := os.LookupEnv("POSTADDR_CACHE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid POSTADDR_CACHE_SIZE value: %w", err)
		}
		cfg.Cache.Size = n
	}
	if v, ok := os.LookupEnv("POSTADDR_CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid POSTADDR_CACHE_TTL value: %w", err)
		}
		cfg.Cache.TTL = d
	}
	return nil
}
