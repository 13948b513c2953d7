// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package affinity

import "strings"

// energyToVibes lists the user vibes compatible with each venue energy.
var energyToVibes = map[string][]string{
	"chill":    {"chill", "intimate", "cozy", "relaxed", "romantic", "homebody"},
	"moderate": {"social", "casual", "trendy", "upscale", "elegant"},
	"lively":   {"energetic", "fun", "adventurous", "social"},
}

// EnergyMatch scores the overlap between user vibes and the vibes compatible
// with the venue energy: 2+ -> 1.0, 1 -> 0.5, 0 -> 0.0.
func EnergyMatch(vibes []string, energy string) float64 {
	if energy == "" || len(vibes) == 0 {
		return 0
	}
	return OverlapScore(CountOverlap(vibes, energyToVibes[strings.ToLower(energy)]))
}

// explorationBonuses maps exploration style to standout tag bonuses.
var explorationBonuses = map[string]map[string]float64{
	"adventurous": {
		"hidden_gem":     1.0,
		"cult_following": 0.7,
	},
	"very_adventurous": {
		"hidden_gem":     1.0,
		"cult_following": 0.7,
	},
	"moderate": {
		"hidden_gem":     0.3,
		"cult_following": 0.0,
	},
	"routine": {},
}

// ExplorationBonus returns the highest bonus among the venue's standout tags
// for the given exploration style.
func ExplorationBonus(style string, standout []string) float64 {
	if style == "" || len(standout) == 0 {
		return 0
	}
	bonuses := explorationBonuses[strings.ToLower(style)]
	var best float64
	for _, tag := range standout {
		if b := bonuses[tag]; b > best {
			best = b
		}
	}
	return best
}

// CountOverlap counts distinct values of a that also appear in b.
func CountOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	seen := make(map[string]struct{}, len(a))
	n := 0
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

// OverlapScore applies the shared step rule: 2+ -> 1.0, 1 -> 0.5, 0 -> 0.0.
func OverlapScore(overlap int) float64 {
	switch {
	case overlap >= 2:
		return 1.0
	case overlap == 1:
		return 0.5
	default:
		return 0.0
	}
}
