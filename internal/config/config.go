// Package config assembles the run configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults match the reference experiment: 0.1M USD starting fund, 20% per
// operation, +-2% volatility thresholds.
const (
	DefaultInitialFund = 100000.0
	DefaultPineOut     = "labels.pine"
)

type Config struct {
	Symbol      string  `validate:"required"`
	DataDir     string  `validate:"required"`
	InitialFund float64 `validate:"gt=0"`
	PineOut     string  `validate:"required"`

	// Sweep grid inputs, expanded by optimizer.Grid
	OperationPcts []float64 `validate:"required,min=1,dive,gt=0"`
	Volatilities  []float64 `validate:"required,min=1"`

	// Workers > 1 enables the parallel sweep
	Workers int `validate:"gte=1"`
}

var validate = validator.New()

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first if present; real environment variables win.
func Load() (*Config, error) {
	// Missing .env is fine, env vars alone are a complete config
	_ = godotenv.Load()

	cfg := &Config{
		Symbol:        os.Getenv("LAZYTRADER_SYMBOL"),
		DataDir:       envOr("LAZYTRADER_DATA_DIR", "."),
		PineOut:       envOr("LAZYTRADER_PINE_OUT", DefaultPineOut),
		InitialFund:   DefaultInitialFund,
		OperationPcts: []float64{20},
		Volatilities:  []float64{2},
		Workers:       1,
	}

	var err error
	if cfg.InitialFund, err = envFloat("LAZYTRADER_INITIAL_FUND", cfg.InitialFund); err != nil {
		return nil, err
	}
	if cfg.OperationPcts, err = envFloats("LAZYTRADER_OPERATION_PCTS", cfg.OperationPcts); err != nil {
		return nil, err
	}
	if cfg.Volatilities, err = envFloats("LAZYTRADER_VOLATILITIES", cfg.Volatilities); err != nil {
		return nil, err
	}
	if cfg.Workers, err = envInt("LAZYTRADER_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q: %w", key, v, err)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q: %w", key, v, err)
	}
	return n, nil
}

// envFloats parses a comma-separated float list, eg "10,20,30".
func envFloats(key string, fallback []float64) ([]float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	parts := strings.Split(v, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s=%q: %w", key, v, err)
		}
		out = append(out, f)
	}
	return out, nil
}
