// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package ring

import (
	"math"
	"sort"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/models"
)

const (
	// MaxSegments is the most segments a ring displays.
	MaxSegments = 5

	// MinPercentage drops categories below this share of all transactions.
	MinPercentage = 3

	// OtherCategory labels the folded tail segment.
	OtherCategory = "other"
)

// Segment is one slice of the taste ring.
type Segment struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
	Count      int    `json:"count"`
}

// Ring is the display profile for a user.
type Ring struct {
	Segments     []Segment `json:"segments"`
	ProfileTitle string    `json:"profile_title"`
	Tagline      string    `json:"tagline"`
	Traits       []Trait   `json:"traits,omitempty"`
}

// Segments turns an analysis into at most MaxSegments ring segments.
// Percentages are relative to the total transaction count and rounded.
// When more than MaxSegments categories qualify, the top MaxSegments-1 are
// kept and the remainder is folded into a single "other" segment.
func Segments(analysis *models.UserAnalysis) []Segment {
	if analysis == nil || analysis.TotalTransactions == 0 {
		return []Segment{}
	}
	total := float64(analysis.TotalTransactions)

	segments := make([]Segment, 0, len(analysis.Categories))
	for cat, stats := range analysis.Categories {
		if stats == nil || stats.Count == 0 {
			continue
		}
		pct := int(math.Round(float64(stats.Count) / total * 100))
		if pct < MinPercentage {
			continue
		}
		segments = append(segments, Segment{
			Category:   cat,
			Percentage: pct,
			Color:      affinity.CategoryColor(cat),
			Count:      stats.Count,
		})
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Percentage != segments[j].Percentage {
			return segments[i].Percentage > segments[j].Percentage
		}
		if segments[i].Count != segments[j].Count {
			return segments[i].Count > segments[j].Count
		}
		return segments[i].Category < segments[j].Category
	})

	if len(segments) <= MaxSegments {
		return segments
	}

	kept := segments[:MaxSegments-1]
	other := Segment{Category: OtherCategory, Color: affinity.DefaultCategoryColor}
	for _, s := range segments[MaxSegments-1:] {
		other.Percentage += s.Percentage
		other.Count += s.Count
	}
	return append(kept, other)
}

// Build assembles a full ring: segments, profile title and traits.
func Build(analysis *models.UserAnalysis, declared *models.DeclaredTaste) Ring {
	title, tagline := Title(declared)
	return Ring{
		Segments:     Segments(analysis),
		ProfileTitle: title,
		Tagline:      tagline,
		Traits:       Traits(declared),
	}
}
