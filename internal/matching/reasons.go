// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package matching

import (
	"fmt"
	"strings"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/models"
)

// Reasons explains a match in at most MaxReasons short phrases. Rules are
// checked in a fixed priority order: cuisine, category, venue fit, price,
// context, discovery.
func (e *Engine) Reasons(scores map[string]float64, venue *models.Venue) []string {
	t := e.config.Reasons
	reasons := make([]string, 0, e.config.MaxReasons)

	if scores[models.ComponentCuisine] > t.Cuisine && venue.CuisineType != "" {
		reasons = append(reasons, fmt.Sprintf("Matches your %s preference", venue.CuisineType))
	}

	if scores[models.ComponentCategory] > t.Category && venue.TasteCluster != "" {
		reasons = append(reasons, fmt.Sprintf("You love %s spots", venue.TasteCluster))
	}

	if scores[models.ComponentVenueFit] > t.VenueFit {
		switch strings.ToLower(venue.TasteCluster) {
		case affinity.ClusterCoffee:
			reasons = append(reasons, "Perfect for your vibe")
		case affinity.ClusterNightlife:
			reasons = append(reasons, "Great for your social style")
		}
	}

	if price, ok := scores[models.ComponentPrice]; ok && price == 1.0 {
		reasons = append(reasons, "Right in your price range")
	}

	if scores[models.ComponentContext] > t.Context {
		switch {
		case hasTag(venue.BestFor, OccasionDateNight):
			reasons = append(reasons, "Perfect for date night")
		case hasTag(venue.BestFor, OccasionSoloWork):
			reasons = append(reasons, "Great solo spot")
		case hasTag(venue.BestFor, OccasionGroupCelebration):
			reasons = append(reasons, "Perfect for groups")
		}
	}

	if scores[models.ComponentDiscovery] > t.Discovery {
		switch {
		case hasTag(venue.Standout, "hidden_gem"):
			reasons = append(reasons, "Hidden gem to discover")
		case hasTag(venue.Standout, "local_favorite"):
			reasons = append(reasons, "Local favorite")
		}
	}

	if len(reasons) > e.config.MaxReasons {
		reasons = reasons[:e.config.MaxReasons]
	}
	return reasons
}
