// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tastecore/config.yaml",
	"/etc/tastecore/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from defaults, the first config file found
// and environment variables, in increasing priority.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit config file. An empty path skips the
// file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first default
// path that exists, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lowercased environment variable names to config keys.
// Weight tables are only configurable from the file layer.
var envMappings = map[string]string{
	"log_level":     "logging.level",
	"log_format":    "logging.format",
	"log_caller":    "logging.caller",
	"log_timestamp": "logging.timestamp",

	"aggregate_top_merchants_limit": "aggregate.top_merchants_limit",
	"aggregate_top_cuisines_limit":  "aggregate.top_cuisines_limit",

	"fusion_max_tx_weight":         "fusion.max_tx_weight",
	"fusion_saturation_count":      "fusion.saturation_count",
	"fusion_confidence_full_count": "fusion.confidence_full_count",

	"matching_category_threshold": "matching.category_threshold",
	"matching_cuisine_rank_decay": "matching.cuisine_rank_decay",
	"matching_mood_boost_cap":     "matching.mood_boost_cap",
	"matching_display_cap":        "matching.display_cap",
	"matching_max_reasons":        "matching.max_reasons",

	"store_path":        "store.path",
	"store_in_memory":   "store.in_memory",
	"store_sync_writes": "store.sync_writes",
	"store_compression": "store.compression",

	"pipeline_topic":                  "pipeline.topic",
	"pipeline_poison_topic":           "pipeline.poison_topic",
	"pipeline_buffer_size":            "pipeline.buffer_size",
	"pipeline_close_timeout":          "pipeline.close_timeout",
	"pipeline_retry_max_retries":      "pipeline.retry_max_retries",
	"pipeline_retry_initial_interval": "pipeline.retry_initial_interval",
	"pipeline_retry_max_interval":     "pipeline.retry_max_interval",
	"pipeline_retry_multiplier":       "pipeline.retry_multiplier",
	"pipeline_dedup_capacity":         "pipeline.dedup_capacity",
	"pipeline_dedup_ttl":              "pipeline.dedup_ttl",

	"metrics_enabled": "metrics.enabled",
	"metrics_address": "metrics.address",
	"metrics_path":    "metrics.path",

	"cache_capacity": "cache.capacity",
	"cache_ttl":      "cache.ttl",
}

// envTransformFunc maps an environment variable to its config key.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated variables never reach the config.
	return ""
}
