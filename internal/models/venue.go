// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package models

// Venue energy levels.
const (
	EnergyChill    = "chill"
	EnergyModerate = "moderate"
	EnergyLively   = "lively"
)

// Venue is a candidate place scored against a user's taste.
// A non-empty CuisineType puts the venue in dining mode.
type Venue struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	TasteCluster string   `json:"taste_cluster" validate:"required"`
	CuisineType  string   `json:"cuisine_type,omitempty"`
	Energy       string   `json:"energy,omitempty" validate:"omitempty,oneof=chill moderate lively"`
	PriceTier    string   `json:"price_tier,omitempty"`
	BestFor      []string `json:"best_for,omitempty"`
	Standout     []string `json:"standout,omitempty"`
}

// IsDining reports whether the venue is scored in dining mode.
func (v *Venue) IsDining() bool {
	return v.CuisineType != ""
}

// Score component names reported in MatchResult.Scores.
const (
	ComponentCategory     = "category"
	ComponentCuisine      = "cuisine"
	ComponentVenueFit     = "venue_fit"
	ComponentCuisineOrFit = "cuisine_or_fit"
	ComponentPrice        = "price"
	ComponentEnergy       = "energy"
	ComponentContext      = "context"
	ComponentDiscovery    = "discovery"
)

// MatchResult is the outcome of scoring one venue for one user.
type MatchResult struct {
	MatchScore int                `json:"match_score"`
	Scores     map[string]float64 `json:"scores"`
	Reasons    []string           `json:"reasons"`
}

// RankedVenue is a venue with its display score and ranking key.
// SortScore includes any mood boost; MatchScore never does.
type RankedVenue struct {
	Venue      Venue              `json:"venue"`
	MatchScore int                `json:"match_score"`
	Scores     map[string]float64 `json:"scores"`
	Reasons    []string           `json:"reasons"`
	MoodBoost  int                `json:"mood_boost"`
	SortScore  int                `json:"-"`
}
