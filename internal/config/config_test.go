// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Aggregate.TopMerchantsLimit != 10 {
		t.Errorf("Aggregate.TopMerchantsLimit = %d, want 10", cfg.Aggregate.TopMerchantsLimit)
	}
	if cfg.Matching.DisplayCap != 100 {
		t.Errorf("Matching.DisplayCap = %d, want 100", cfg.Matching.DisplayCap)
	}
	if cfg.Pipeline.Topic != "transactions" {
		t.Errorf("Pipeline.Topic = %q, want transactions", cfg.Pipeline.Topic)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Address != ":9090" {
		t.Errorf("Metrics = %+v, want enabled on :9090", cfg.Metrics)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"aggregate limit", func(c *Config) { c.Aggregate.TopMerchantsLimit = 0 }, "aggregate: top_merchants_limit"},
		{"fusion weight", func(c *Config) { c.Fusion.MaxTxWeight = 1 }, "fusion: max_tx_weight"},
		{"matching cap", func(c *Config) { c.Matching.DisplayCap = 0 }, "matching: display_cap"},
		{"store path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"pipeline topic", func(c *Config) { c.Pipeline.Topic = "" }, "pipeline.topic"},
		{"metrics address", func(c *Config) { c.Metrics.Address = "" }, "metrics.address"},
		{"metrics disabled ignores address", func(c *Config) { c.Metrics.Enabled = false; c.Metrics.Address = "" }, ""},
		{"metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"cache capacity", func(c *Config) { c.Cache.Capacity = -1 }, "cache.capacity"},
		{"cache ttl", func(c *Config) { c.Cache.TTL = 0 }, "cache.ttl"},
		{"cache disabled", func(c *Config) { c.Cache.Capacity = 0; c.Cache.TTL = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
