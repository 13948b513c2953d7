// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package matching

import (
	"fmt"
	"math"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/models"
)

// weightTolerance absorbs float rounding when checking that a weight set sums to 1.
const weightTolerance = 1e-6

// Config contains all configuration for the matching engine.
type Config struct {
	// Dining weights apply to venues that have a cuisine type.
	Dining Weights `koanf:"dining"`

	// NonDining weights apply to coffee, nightlife and bakery venues.
	NonDining Weights `koanf:"non_dining"`

	// NewUser weights apply when the user has no transaction history.
	NewUser Weights `koanf:"new_user"`

	// CategoryThreshold is the mapped spending percentage that earns a full
	// category score.
	// Default: 30
	CategoryThreshold float64 `koanf:"category_threshold"`

	// CuisineRankDecay is subtracted per rank position in a cuisine list.
	// Default: 0.15
	CuisineRankDecay float64 `koanf:"cuisine_rank_decay"`

	// MoodBoostCap bounds the ranking boost added by a mood.
	// Default: 20
	MoodBoostCap int `koanf:"mood_boost_cap"`

	// DisplayCap bounds the match score reported by ApplyMoodFilter. Some
	// clients show 99 as the highest possible match. Score, ScoreNewUser and
	// Rank always report the clamped [0, 100] value.
	// Default: 100
	DisplayCap int `koanf:"display_cap"`

	// MaxReasons bounds the number of match reasons returned.
	// Default: 2
	MaxReasons int `koanf:"max_reasons"`

	// Reasons holds the component thresholds that trigger each reason.
	Reasons ReasonThresholds `koanf:"reasons"`
}

// Weights is one weight set. Components a mode does not use stay zero.
type Weights struct {
	Category     float64 `koanf:"category"`
	Cuisine      float64 `koanf:"cuisine"`
	VenueFit     float64 `koanf:"venue_fit"`
	CuisineOrFit float64 `koanf:"cuisine_or_fit"`
	Price        float64 `koanf:"price"`
	Energy       float64 `koanf:"energy"`
	Context      float64 `koanf:"context"`
	Discovery    float64 `koanf:"discovery"`
}

// Sum returns the total of all weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Sum() float64 {
	return w.Category + w.Cuisine + w.VenueFit + w.CuisineOrFit +
		w.Price + w.Energy + w.Context + w.Discovery
}

// ToMap returns the weights keyed by component name.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		models.ComponentCategory:     w.Category,
		models.ComponentCuisine:      w.Cuisine,
		models.ComponentVenueFit:     w.VenueFit,
		models.ComponentCuisineOrFit: w.CuisineOrFit,
		models.ComponentPrice:        w.Price,
		models.ComponentEnergy:       w.Energy,
		models.ComponentContext:      w.Context,
		models.ComponentDiscovery:    w.Discovery,
	}
}

//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) validate(name string) error {
	for component, v := range w.ToMap() {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s.%s weight must be between 0 and 1, got %v", name, component, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%s weights must sum to 1.0, got %v", name, sum)
	}
	return nil
}

// ReasonThresholds are the strict lower bounds a component score must exceed
// before its reason is emitted. The price reason requires an exact match.
type ReasonThresholds struct {
	Cuisine   float64 `koanf:"cuisine"`
	Category  float64 `koanf:"category"`
	VenueFit  float64 `koanf:"venue_fit"`
	Context   float64 `koanf:"context"`
	Discovery float64 `koanf:"discovery"`
}

// DefaultConfig returns a configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Dining: Weights{
			Category:  0.20,
			Cuisine:   0.25,
			Price:     0.20,
			Energy:    0.15,
			Context:   0.15,
			Discovery: 0.05,
		},
		NonDining: Weights{
			Category:  0.25,
			VenueFit:  0.20,
			Price:     0.20,
			Energy:    0.15,
			Context:   0.15,
			Discovery: 0.05,
		},
		NewUser: Weights{
			CuisineOrFit: 0.30,
			Price:        0.25,
			Energy:       0.20,
			Context:      0.15,
			Discovery:    0.10,
		},
		CategoryThreshold: affinity.DefaultCategoryThreshold,
		CuisineRankDecay:  0.15,
		MoodBoostCap:      affinity.DefaultMoodBoostCap,
		DisplayCap:        100,
		MaxReasons:        2,
		Reasons: ReasonThresholds{
			Cuisine:   0.5,
			Category:  0.4,
			VenueFit:  0.6,
			Context:   0.7,
			Discovery: 0.5,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Dining.validate("dining"); err != nil {
		return err
	}
	if err := c.NonDining.validate("non_dining"); err != nil {
		return err
	}
	if err := c.NewUser.validate("new_user"); err != nil {
		return err
	}
	if c.Dining.VenueFit != 0 || c.Dining.CuisineOrFit != 0 {
		return fmt.Errorf("dining weights may not use venue_fit or cuisine_or_fit")
	}
	if c.NonDining.Cuisine != 0 || c.NonDining.CuisineOrFit != 0 {
		return fmt.Errorf("non_dining weights may not use cuisine or cuisine_or_fit")
	}
	if c.NewUser.Category != 0 || c.NewUser.Cuisine != 0 || c.NewUser.VenueFit != 0 {
		return fmt.Errorf("new_user weights may only use cuisine_or_fit, price, energy, context and discovery")
	}

	if c.CategoryThreshold <= 0 || c.CategoryThreshold > 100 {
		return fmt.Errorf("category_threshold must be in (0, 100], got %v", c.CategoryThreshold)
	}
	if c.CuisineRankDecay <= 0 || c.CuisineRankDecay > 1 {
		return fmt.Errorf("cuisine_rank_decay must be in (0, 1], got %v", c.CuisineRankDecay)
	}
	if c.MoodBoostCap < 0 || c.MoodBoostCap > 100 {
		return fmt.Errorf("mood_boost_cap must be between 0 and 100, got %d", c.MoodBoostCap)
	}
	if c.DisplayCap < 1 || c.DisplayCap > 100 {
		return fmt.Errorf("display_cap must be between 1 and 100, got %d", c.DisplayCap)
	}
	if c.MaxReasons < 0 || c.MaxReasons > 6 {
		return fmt.Errorf("max_reasons must be between 0 and 6, got %d", c.MaxReasons)
	}

	for name, v := range map[string]float64{
		"cuisine":   c.Reasons.Cuisine,
		"category":  c.Reasons.Category,
		"venue_fit": c.Reasons.VenueFit,
		"context":   c.Reasons.Context,
		"discovery": c.Reasons.Discovery,
	} {
		if v < 0 || v >= 1 {
			return fmt.Errorf("reasons.%s threshold must be in [0, 1), got %v", name, v)
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
