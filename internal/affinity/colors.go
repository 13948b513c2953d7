// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package affinity

import "strings"

// DefaultCategoryColor is used for categories without a palette entry.
const DefaultCategoryColor = "#808080"

var categoryColors = map[string]string{
	"coffee":        "#8B4513",
	"dining":        "#D4AF37",
	"fast_food":     "#FF8C00",
	"nightlife":     "#4B0082",
	"entertainment": "#FF6347",
	"fitness":       "#32CD32",
	"shopping":      "#FF69B4",
	"groceries":     "#228B22",
	"travel":        "#4169E1",
	"other_food":    "#CD853F",
	"other":         DefaultCategoryColor,
}

// CategoryColor returns the display color for a category key.
func CategoryColor(category string) string {
	if c, ok := categoryColors[strings.ToLower(category)]; ok {
		return c
	}
	return DefaultCategoryColor
}

// FormatCategoryName turns a category key into a display name,
// e.g. "fast_food" -> "Fast Food".
func FormatCategoryName(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
