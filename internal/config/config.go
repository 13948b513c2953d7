// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/tastecore/internal/aggregate"
	"github.com/tomtom215/tastecore/internal/fusion"
	"github.com/tomtom215/tastecore/internal/logging"
	"github.com/tomtom215/tastecore/internal/matching"
	"github.com/tomtom215/tastecore/internal/pipeline"
	"github.com/tomtom215/tastecore/internal/store"
)

// Config holds all application configuration.
type Config struct {
	Logging   logging.Config   `koanf:"logging"`
	Aggregate aggregate.Config `koanf:"aggregate"`
	Fusion    fusion.Config    `koanf:"fusion"`
	Matching  matching.Config  `koanf:"matching"`
	Store     store.Config     `koanf:"store"`
	Pipeline  pipeline.Config  `koanf:"pipeline"`
	Metrics   MetricsConfig    `koanf:"metrics"`
	Cache     CacheConfig      `koanf:"cache"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	// Enabled starts the metrics HTTP service under the supervisor.
	Enabled bool `koanf:"enabled"`

	// Address is the listen address for /metrics.
	// Default: :9090
	Address string `koanf:"address"`

	// Path is the HTTP path serving metrics.
	// Default: /metrics
	Path string `koanf:"path"`
}

// CacheConfig sizes the match score memo. A zero capacity disables it.
type CacheConfig struct {
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`
}

// defaultConfig returns a Config with every section at its defaults.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging:   logging.DefaultConfig(),
		Aggregate: aggregate.DefaultConfig(),
		Fusion:    fusion.DefaultConfig(),
		Matching:  *matching.DefaultConfig(),
		Store:     store.DefaultConfig(),
		Pipeline:  pipeline.DefaultConfig(),
		Metrics: MetricsConfig{
			Enabled: true,
			Address: ":9090",
			Path:    "/metrics",
		},
		Cache: CacheConfig{
			Capacity: 4096,
			TTL:      10 * time.Minute,
		},
	}
}

// Validate checks every section and returns the first error found.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Aggregate.Validate(); err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	if err := c.Fusion.Validate(); err != nil {
		return fmt.Errorf("fusion: %w", err)
	}
	if err := c.Matching.Validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	return c.Cache.Validate()
}

// Validate checks the metrics section.
func (m MetricsConfig) Validate() error {
	if !m.Enabled {
		return nil
	}
	if m.Address == "" {
		return fmt.Errorf("metrics.address is required when metrics.enabled is true")
	}
	if m.Path == "" || m.Path[0] != '/' {
		return fmt.Errorf("metrics.path must start with /, got %q", m.Path)
	}
	return nil
}

// Validate checks the cache section.
func (c CacheConfig) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("cache.capacity must be >= 0, got %d", c.Capacity)
	}
	if c.Capacity > 0 && c.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache.capacity is set, got %v", c.TTL)
	}
	return nil
}
