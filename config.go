package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func defaultConfig() Config {
	return Config{
		Port:           DefaultPort,
		Env:            "development",
		LogLevel:       "info",
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
		StaticCacheAge: DefaultStaticCacheAge,
	}
}

// loadConfig reads the YAML file at path over the defaults. A missing file is
// not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg Config) Config {
	cfg.Port = getEnvString("PORT", cfg.Port)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.RateLimitRPS = getEnvInt("RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.StaticCacheAge = getEnvDuration("STATIC_CACHE_AGE", cfg.StaticCacheAge)
	if os.Getenv("GIN_MODE") == "release" {
		cfg.Env = "production"
	}
	cfg.Env = getEnvString("ENV", cfg.Env)
	return cfg
}
