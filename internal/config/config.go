package config

import (
	"os"
	"strconv"

	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
)

// Config holds runtime settings for bomcheck.
type Config struct {
	DepthThreshold int
	Concurrency    int
	LogUseCases    bool
	PolicyPath     string
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DepthThreshold: validation.DefaultDepthThreshold,
		Concurrency:    4,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BOMCHECK_DEPTH_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DepthThreshold = n
		}
	}
	if v := os.Getenv("BOMCHECK_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("BOMCHECK_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BOMCHECK_POLICY"); v != "" {
		cfg.PolicyPath = v
	}

	return cfg
}

// Policy returns the compatibility policy named by PolicyPath, or the
// default table when no path is set.
func (c Config) Policy() (validation.Policy, error) {
	if c.PolicyPath == "" {
		return validation.DefaultPolicy(), nil
	}
	return LoadPolicy(c.PolicyPath)
}

// ValidatorOptions translates the config into validator options.
func (c Config) ValidatorOptions() ([]validation.Option, error) {
	p, err := c.Policy()
	if err != nil {
		return nil, err
	}
	return []validation.Option{
		validation.WithPolicy(p),
		validation.WithDepthThreshold(c.DepthThreshold),
	}, nil
}
