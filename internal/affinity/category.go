// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package affinity

import "strings"

// Venue taste clusters.
const (
	ClusterCoffee    = "coffee"
	ClusterDining    = "dining"
	ClusterNightlife = "nightlife"
	ClusterBakery    = "bakery"
)

// DefaultCategoryThreshold is the combined spend percentage that earns a
// full category affinity score.
const DefaultCategoryThreshold = 30.0

// userToVenueClusters maps a user spending category to the venue clusters it
// signals interest in. Catch-all categories map to nothing so vague spending
// cannot inflate affinity.
var userToVenueClusters = map[string][]string{
	"coffee":        {ClusterCoffee, ClusterBakery},
	"dining":        {ClusterDining, ClusterBakery},
	"fast_food":     {ClusterDining, ClusterBakery},
	"nightlife":     {ClusterNightlife},
	"entertainment": {ClusterNightlife, ClusterDining},
	"travel":        {ClusterDining, ClusterCoffee},
	"other_food":    {ClusterDining, ClusterBakery},
	"fitness":       {},
	"shopping":      {},
	"groceries":     {},
	"other":         {},
}

// venueToUserCategories is the reverse of userToVenueClusters.
var venueToUserCategories = buildReverse(userToVenueClusters)

func buildReverse(forward map[string][]string) map[string][]string {
	// Iterate in a fixed order so the reverse lists are deterministic.
	order := []string{"coffee", "dining", "fast_food", "nightlife", "entertainment", "travel", "other_food", "fitness", "shopping", "groceries", "other"}
	out := make(map[string][]string)
	for _, userCat := range order {
		for _, cluster := range forward[userCat] {
			out[cluster] = append(out[cluster], userCat)
		}
	}
	return out
}

// RelevantVenueClusters returns the venue clusters a user category signals.
func RelevantVenueClusters(userCategory string) []string {
	return append([]string(nil), userToVenueClusters[strings.ToLower(userCategory)]...)
}

// RelevantUserCategories returns the user categories that indicate affinity
// for a venue cluster.
func RelevantUserCategories(cluster string) []string {
	return append([]string(nil), venueToUserCategories[strings.ToLower(cluster)]...)
}

// CategoryAffinity sums the user's spending percentage across the categories
// mapped to cluster and normalizes it by threshold, capped at 1.0.
// categories maps category key to percentage (0-100). Matching is
// case-insensitive. A non-positive threshold falls back to the default.
func CategoryAffinity(categories map[string]float64, cluster string, threshold float64) float64 {
	if cluster == "" || len(categories) == 0 {
		return 0
	}
	relevant := venueToUserCategories[strings.ToLower(cluster)]
	if len(relevant) == 0 {
		return 0
	}
	if threshold <= 0 {
		threshold = DefaultCategoryThreshold
	}

	lowered := make(map[string]float64, len(categories))
	for k, v := range categories {
		lowered[strings.ToLower(k)] += v
	}

	var total float64
	for _, cat := range relevant {
		if pct, ok := lowered[cat]; ok && pct > 0 {
			total += pct
		}
	}

	score := total / threshold
	if score > 1 {
		return 1
	}
	return score
}
