// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package ring

import (
	"strings"

	"github.com/tomtom215/tastecore/internal/models"
)

// Trait is a 0-100 personality score derived from declared taste.
type Trait struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Score       int    `json:"score"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

const traitMax = 100

var (
	adventurousBase = map[string]int{"routine": 30, "moderate": 55, "adventurous": 80, "very_adventurous": 95}
	socialBase      = map[string]int{"solo": 25, "small_group": 55, "big_group": 85}
	refinedBase     = map[string]int{"budget": 30, "moderate": 50, "premium": 75, "luxury": 95}
	cozyExploration = map[string]int{"routine": 30, "moderate": 15, "adventurous": 0, "very_adventurous": 0}

	adventurousVibes = []string{"adventurous", "trendy", "energetic", "fun"}
	socialVibes      = []string{"social", "energetic", "fun", "lively"}
	refinedVibes     = []string{"upscale", "elegant", "romantic", "intimate"}
	cozyVibes        = []string{"chill", "cozy", "intimate", "relaxed", "homebody"}
)

// Traits scores the four dining traits. A nil declaration yields nil.
func Traits(declared *models.DeclaredTaste) []Trait {
	if declared == nil {
		return nil
	}
	vibes := make(map[string]struct{}, len(declared.VibePreferences))
	for _, v := range declared.VibePreferences {
		vibes[strings.ToLower(v)] = struct{}{}
	}

	adventurous := lookupOr(adventurousBase, declared.ExplorationStyle, 50) + 5*countIn(vibes, adventurousVibes)
	social := lookupOr(socialBase, declared.SocialPreference, 50) + 10*countIn(vibes, socialVibes)
	refined := lookupOr(refinedBase, declared.PriceTier, 50) + 10*countIn(vibes, refinedVibes)
	cozy := 30 + 15*countIn(vibes, cozyVibes) + lookupOr(cozyExploration, declared.ExplorationStyle, 10)

	return []Trait{
		{Name: "Adventurous", Emoji: "🌍", Score: min(adventurous, traitMax), Description: "You love trying new cuisines", Color: "#14B8A6"},
		{Name: "Social", Emoji: "👥", Score: min(social, traitMax), Description: "Dining is a group activity", Color: "#0EA5E9"},
		{Name: "Refined", Emoji: "✨", Score: min(refined, traitMax), Description: "Quality over quantity", Color: "#D3B481"},
		{Name: "Cozy", Emoji: "🏠", Score: min(cozy, traitMax), Description: "Comfort food lover", Color: "#F59E0B"},
	}
}

func lookupOr(m map[string]int, key string, def int) int {
	if v, ok := m[strings.ToLower(key)]; ok {
		return v
	}
	return def
}

func countIn(set map[string]struct{}, keys []string) int {
	n := 0
	for _, k := range keys {
		if _, ok := set[k]; ok {
			n++
		}
	}
	return n
}
