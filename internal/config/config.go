// Package config содержит логику чтения конфигурации POS-системы.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации POS-системы.
type Config struct {
	RunAddress        string        `env:"RUN_ADDRESS"`
	AuthSecret        string        `env:"AUTH_SECRET"`
	LowStockThreshold int           `env:"LOW_STOCK_THRESHOLD"`
	ActionDelay       time.Duration `env:"ACTION_DELAY"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envAuthSecret := cfg.AuthSecret
	envThreshold := cfg.LowStockThreshold
	envActionDelay := cfg.ActionDelay

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.AuthSecret, "s", "", "secret key for session cookie signing")
	flag.IntVar(&cfg.LowStockThreshold, "t", 10, "low stock alert threshold")
	flag.DurationVar(&cfg.ActionDelay, "delay", 800*time.Millisecond, "simulated latency for interactive actions")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envAuthSecret != "" {
		cfg.AuthSecret = envAuthSecret
	}
	if envThreshold != 0 {
		cfg.LowStockThreshold = envThreshold
	}
	if envActionDelay != 0 {
		cfg.ActionDelay = envActionDelay
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
