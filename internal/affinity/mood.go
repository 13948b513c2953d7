// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package affinity

// DefaultMoodBoostCap bounds the total boost a mood can add to a ranking key.
const DefaultMoodBoostCap = 20

// MoodConfig defines how a mood boosts venues.
type MoodConfig struct {
	EnergyMatch   []string
	BestForMatch  []string
	StandoutBoost []string

	EnergyBoost      int
	BestForBoost     int
	StandoutBoostAmt int
}

// Mood describes a selectable mood.
type Mood struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func moodConfig(energy, bestFor, standout []string) MoodConfig {
	return MoodConfig{
		EnergyMatch:      energy,
		BestForMatch:     bestFor,
		StandoutBoost:    standout,
		EnergyBoost:      8,
		BestForBoost:     4,
		StandoutBoostAmt: 3,
	}
}

var moodConfigs = map[string]MoodConfig{
	"chill":       moodConfig([]string{"chill"}, []string{"solo_work", "casual_hangout"}, []string{"cozy_vibes"}),
	"energetic":   moodConfig([]string{"lively"}, []string{"group_celebration", "late_night"}, nil),
	"romantic":    moodConfig([]string{"chill", "moderate"}, []string{"date_night"}, []string{"cozy_vibes", "upscale_feel"}),
	"social":      moodConfig([]string{"moderate", "lively"}, []string{"group_celebration", "casual_hangout"}, nil),
	"adventurous": moodConfig([]string{"moderate", "lively"}, nil, []string{"hidden_gem", "cult_following"}),
	"cozy":        moodConfig([]string{"chill"}, []string{"casual_hangout", "solo_work"}, []string{"cozy_vibes", "local_favorite"}),
}

var availableMoods = []Mood{
	{ID: "chill", Label: "Chill"},
	{ID: "energetic", Label: "Energetic"},
	{ID: "romantic", Label: "Romantic"},
	{ID: "social", Label: "Social"},
	{ID: "adventurous", Label: "Adventurous"},
	{ID: "cozy", Label: "Cozy"},
}

// LookupMood returns the configuration for a mood.
func LookupMood(mood string) (MoodConfig, bool) {
	cfg, ok := moodConfigs[mood]
	return cfg, ok
}

// AvailableMoods returns the selectable moods in display order.
func AvailableMoods() []Mood {
	return append([]Mood(nil), availableMoods...)
}

// MoodBoost computes the ranking boost for a venue under a mood, capped at
// maxBoost. A non-positive cap uses DefaultMoodBoostCap. Unknown moods boost
// nothing.
func MoodBoost(mood, energy string, bestFor, standout []string, maxBoost int) int {
	cfg, ok := moodConfigs[mood]
	if !ok {
		return 0
	}
	if maxBoost <= 0 {
		maxBoost = DefaultMoodBoostCap
	}

	boost := 0
	if energy != "" && contains(cfg.EnergyMatch, energy) {
		boost += cfg.EnergyBoost
	}
	boost += CountOverlap(bestFor, cfg.BestForMatch) * cfg.BestForBoost
	boost += CountOverlap(standout, cfg.StandoutBoost) * cfg.StandoutBoostAmt

	if boost > maxBoost {
		return maxBoost
	}
	return boost
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
