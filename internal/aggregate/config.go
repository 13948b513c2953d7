// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package aggregate

import "fmt"

// Config holds aggregator limits.
type Config struct {
	// TopMerchantsLimit bounds UserAnalysis.TopMerchants.
	// Default: 10
	TopMerchantsLimit int `koanf:"top_merchants_limit"`

	// TopCuisinesLimit bounds UserAnalysis.TopCuisines.
	// Default: 5
	TopCuisinesLimit int `koanf:"top_cuisines_limit"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		TopMerchantsLimit: 10,
		TopCuisinesLimit:  5,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.TopMerchantsLimit < 1 || c.TopMerchantsLimit > 1000 {
		return fmt.Errorf("top_merchants_limit must be between 1 and 1000, got %d", c.TopMerchantsLimit)
	}
	if c.TopCuisinesLimit < 1 || c.TopCuisinesLimit > 100 {
		return fmt.Errorf("top_cuisines_limit must be between 1 and 100, got %d", c.TopCuisinesLimit)
	}
	return nil
}
