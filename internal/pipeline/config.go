// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package pipeline

import (
	"fmt"
	"time"
)

// Config holds configuration for the ingest pipeline.
type Config struct {
	// Topic receives transaction events.
	// Default: transactions
	Topic string `koanf:"topic"`

	// PoisonTopic receives events that could not be ingested.
	// Default: transactions.poison
	PoisonTopic string `koanf:"poison_topic"`

	// BufferSize is the gochannel output buffer per subscriber.
	// Default: 256
	BufferSize int64 `koanf:"buffer_size"`

	// CloseTimeout is how long to wait for in-flight messages on shutdown.
	// Default: 30s
	CloseTimeout time.Duration `koanf:"close_timeout"`

	// Retry configuration for transient failures such as version conflicts.
	RetryMaxRetries      int           `koanf:"retry_max_retries"`
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval"`
	RetryMaxInterval     time.Duration `koanf:"retry_max_interval"`
	RetryMultiplier      float64       `koanf:"retry_multiplier"`

	// DedupCapacity bounds the number of remembered transaction ids.
	// Default: 10000
	DedupCapacity int `koanf:"dedup_capacity"`

	// DedupTTL is how long a transaction id is remembered.
	// Default: 24h
	DedupTTL time.Duration `koanf:"dedup_ttl"`
}

// DefaultConfig returns production defaults for the pipeline.
func DefaultConfig() Config {
	return Config{
		Topic:                "transactions",
		PoisonTopic:          "transactions.poison",
		BufferSize:           256,
		CloseTimeout:         30 * time.Second,
		RetryMaxRetries:      5,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     5 * time.Second,
		RetryMultiplier:      2.0,
		DedupCapacity:        10000,
		DedupTTL:             24 * time.Hour,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Topic == "" {
		return fmt.Errorf("pipeline.topic is required")
	}
	if c.PoisonTopic == "" || c.PoisonTopic == c.Topic {
		return fmt.Errorf("pipeline.poison_topic must be set and differ from pipeline.topic")
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("pipeline.buffer_size must be >= 0, got %d", c.BufferSize)
	}
	if c.RetryMaxRetries < 0 {
		return fmt.Errorf("pipeline.retry_max_retries must be >= 0, got %d", c.RetryMaxRetries)
	}
	if c.RetryMultiplier < 1 {
		return fmt.Errorf("pipeline.retry_multiplier must be >= 1, got %v", c.RetryMultiplier)
	}
	if c.DedupCapacity < 1 {
		return fmt.Errorf("pipeline.dedup_capacity must be >= 1, got %d", c.DedupCapacity)
	}
	if c.DedupTTL <= 0 {
		return fmt.Errorf("pipeline.dedup_ttl must be positive, got %v", c.DedupTTL)
	}
	return nil
}
