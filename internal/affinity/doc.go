// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package affinity holds the static lookup tables that relate user taste to
venue attributes.

Every function is pure and total. Unknown inputs produce a zero or neutral
score rather than an error.

Tables:

  - Category: user spending categories <-> venue taste clusters
  - Price: quiz tiers and venue price strings -> levels 0-3
  - Energy: venue energy -> compatible user vibes
  - Exploration: exploration style -> standout tag bonuses
  - Mood: mood -> energy, best_for and standout boosts
  - Colors: category -> display color

Usage:

	score := affinity.CategoryAffinity(map[string]float64{"coffee": 20, "travel": 10}, "coffee", affinity.DefaultCategoryThreshold)
	// score == 1.0
*/
package affinity
