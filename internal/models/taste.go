// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package models

// DeclaredTaste holds preferences stated by the user through the quiz.
// Every field is optional.
type DeclaredTaste struct {
	VibePreferences     []string `json:"vibe_preferences"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	ExplorationStyle    string   `json:"exploration_style,omitempty"`
	SocialPreference    string   `json:"social_preference,omitempty"`
	CoffeePreference    string   `json:"coffee_preference,omitempty"`
	PriceTier           string   `json:"price_tier,omitempty"`
}

// CategoryScore is one category slice of a fused profile.
// Key is the raw category identifier; Name is its display form.
type CategoryScore struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Percentage int     `json:"percentage"`
	Color      string  `json:"color"`
	Count      int     `json:"count"`
	TotalSpend float64 `json:"total_spend"`
}

// FusedTaste blends declared and observed taste into one profile.
// Category percentages sum to exactly 100 when Categories is non-empty,
// and QuizWeight + TxWeight == 1.
type FusedTaste struct {
	Categories       []CategoryScore `json:"categories"`
	Vibes            []string        `json:"vibes"`
	TopCuisines      []string        `json:"top_cuisines"`
	ExplorationRatio float64         `json:"exploration_ratio"`
	Confidence       float64         `json:"confidence"`
	QuizWeight       float64         `json:"quiz_weight"`
	TxWeight         float64         `json:"tx_weight"`
}

// UserTaste is the flattened profile consumed by the matching engine.
type UserTaste struct {
	// Categories maps a category key to its spending percentage (0-100).
	Categories         map[string]float64 `json:"categories,omitempty"`
	Vibes              []string           `json:"vibes,omitempty"`
	PriceTier          string             `json:"price_tier,omitempty"`
	ExplorationStyle   string             `json:"exploration_style,omitempty"`
	SocialPreference   string             `json:"social_preference,omitempty"`
	CoffeePreference   string             `json:"coffee_preference,omitempty"`
	CuisinePreferences []string           `json:"cuisine_preferences,omitempty"`
	TopCuisines        []string           `json:"top_cuisines,omitempty"`
	TxWeight           float64            `json:"tx_weight"`
}

// HasHistory reports whether the profile carries observed category data.
func (u *UserTaste) HasHistory() bool {
	return len(u.Categories) > 0
}
