// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package fusion

import "fmt"

// Config contains the weighting law parameters for taste fusion.
type Config struct {
	// MaxTxWeight caps the weight given to observed transactions.
	// Default: 0.7
	MaxTxWeight float64 `koanf:"max_tx_weight"`

	// SaturationCount is the transaction count at which the linear
	// tx weight ramp would reach 1.0 before capping.
	// Default: 50
	SaturationCount int `koanf:"saturation_count"`

	// ConfidenceFullCount is the transaction count at which confidence
	// reaches 1.0.
	// Default: 100
	ConfidenceFullCount int `koanf:"confidence_full_count"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MaxTxWeight:         0.7,
		SaturationCount:     50,
		ConfidenceFullCount: 100,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.MaxTxWeight <= 0 || c.MaxTxWeight >= 1 {
		return fmt.Errorf("max_tx_weight must be in (0, 1), got %v", c.MaxTxWeight)
	}
	if c.SaturationCount < 1 {
		return fmt.Errorf("saturation_count must be positive, got %d", c.SaturationCount)
	}
	if c.ConfidenceFullCount < 1 {
		return fmt.Errorf("confidence_full_count must be positive, got %d", c.ConfidenceFullCount)
	}
	return nil
}
