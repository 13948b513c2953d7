// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package ring

import (
	"testing"

	"github.com/tomtom215/tastecore/internal/models"
)

func analysisWith(counts map[string]int) *models.UserAnalysis {
	a := models.NewUserAnalysis("u1")
	for cat, n := range counts {
		stats := models.NewCategoryStats()
		stats.Count = n
		a.Categories[cat] = stats
		a.TotalTransactions += n
	}
	return a
}

// --- Test: Segments ---

func TestSegments_Empty(t *testing.T) {
	t.Parallel()

	if got := Segments(nil); len(got) != 0 {
		t.Errorf("Segments(nil) = %v, want empty", got)
	}
	if got := Segments(models.NewUserAnalysis("u1")); got == nil || len(got) != 0 {
		t.Errorf("Segments(empty) = %v, want non-nil empty", got)
	}
}

func TestSegments_DropsSmallCategories(t *testing.T) {
	t.Parallel()

	segs := Segments(analysisWith(map[string]int{
		"coffee": 50, "dining": 30, "fast_food": 10, "nightlife": 5, "groceries": 3, "travel": 2,
	}))

	want := []struct {
		cat string
		pct int
	}{
		{"coffee", 50}, {"dining", 30}, {"fast_food", 10}, {"nightlife", 5}, {"groceries", 3},
	}
	if len(segs) != len(want) {
		t.Fatalf("len(Segments) = %d, want %d: %+v", len(segs), len(want), segs)
	}
	for i, w := range want {
		if segs[i].Category != w.cat || segs[i].Percentage != w.pct {
			t.Errorf("segment[%d] = %s/%d, want %s/%d", i, segs[i].Category, segs[i].Percentage, w.cat, w.pct)
		}
	}
	if segs[0].Color != "#8B4513" {
		t.Errorf("coffee color = %q, want #8B4513", segs[0].Color)
	}
}

func TestSegments_FoldsTailIntoOther(t *testing.T) {
	t.Parallel()

	segs := Segments(analysisWith(map[string]int{
		"coffee": 40, "dining": 20, "fast_food": 15, "nightlife": 10,
		"groceries": 8, "travel": 5, "shopping": 2,
	}))

	if len(segs) != MaxSegments {
		t.Fatalf("len(Segments) = %d, want %d", len(segs), MaxSegments)
	}
	last := segs[MaxSegments-1]
	if last.Category != OtherCategory {
		t.Errorf("last category = %q, want %q", last.Category, OtherCategory)
	}
	if last.Percentage != 13 || last.Count != 13 {
		t.Errorf("other = %d%%/%d, want 13%%/13", last.Percentage, last.Count)
	}
	if segs[3].Category != "nightlife" {
		t.Errorf("segment[3] = %q, want nightlife", segs[3].Category)
	}
}

func TestSegments_TiesAreDeterministic(t *testing.T) {
	t.Parallel()

	a := analysisWith(map[string]int{"dining": 5, "coffee": 5})
	for i := 0; i < 20; i++ {
		segs := Segments(a)
		if segs[0].Category != "coffee" || segs[1].Category != "dining" {
			t.Fatalf("run %d order = %s,%s, want coffee,dining", i, segs[0].Category, segs[1].Category)
		}
	}
}

// --- Test: Titles ---

func TestDominantVibe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		vibes []string
		want  string
	}{
		{"empty", nil, ""},
		{"priority wins over order", []string{"chill", "trendy"}, "trendy"},
		{"case folded", []string{"Social"}, "social"},
		{"unlisted falls back to first", []string{"cozy", "lively"}, "cozy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DominantVibe(tt.vibes); got != tt.want {
				t.Errorf("DominantVibe(%v) = %q, want %q", tt.vibes, got, tt.want)
			}
		})
	}
}

func TestLookupTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
		vibe  string
		want  string
	}{
		{"exact", "adventurous", "trendy", "Trend Hunter"},
		{"very adventurous exact", "very_adventurous", "upscale", "Gourmet Explorer"},
		{"very adventurous falls back", "very_adventurous", "casual", "Curious Wanderer"},
		{"very adventurous romantic", "very_adventurous", "romantic", "Date Night Pioneer"},
		{"related vibe", "moderate", "relaxed", "Easy Going Eater"},
		{"romantic to intimate", "routine", "romantic", "Cozy Corner Lover"},
		{"no match", "routine", "trendy", DefaultTitle},
		{"empty style", "", "trendy", DefaultTitle},
		{"case insensitive", "ROUTINE", "Homebody", "Home Chef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got, _ := LookupTitle(tt.style, tt.vibe); got != tt.want {
				t.Errorf("LookupTitle(%q, %q) = %q, want %q", tt.style, tt.vibe, got, tt.want)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	title, tagline := Title(nil)
	if title != DefaultTitle || tagline != NewUserTagline {
		t.Errorf("Title(nil) = %q/%q, want %q/%q", title, tagline, DefaultTitle, NewUserTagline)
	}

	title, tagline = Title(&models.DeclaredTaste{ExplorationStyle: "moderate"})
	if title != DefaultTitle || tagline != DefaultTagline {
		t.Errorf("Title(no vibes) = %q/%q, want default", title, tagline)
	}

	title, tagline = Title(&models.DeclaredTaste{
		ExplorationStyle: "adventurous",
		VibePreferences:  []string{"chill", "social"},
	})
	if title != "Social Explorer" || tagline != "Where the party's at" {
		t.Errorf("Title() = %q/%q, want Social Explorer", title, tagline)
	}
}

// --- Test: Traits ---

func TestTraits(t *testing.T) {
	t.Parallel()

	if got := Traits(nil); got != nil {
		t.Errorf("Traits(nil) = %v, want nil", got)
	}

	tests := []struct {
		name     string
		declared models.DeclaredTaste
		want     [4]int
	}{
		{"defaults", models.DeclaredTaste{}, [4]int{50, 50, 50, 40}},
		{
			"capped",
			models.DeclaredTaste{
				ExplorationStyle: "adventurous",
				SocialPreference: "big_group",
				PriceTier:        "luxury",
				VibePreferences:  []string{"social", "energetic", "fun", "upscale", "elegant"},
			},
			[4]int{90, 100, 100, 30},
		},
		{
			"cozy routine",
			models.DeclaredTaste{ExplorationStyle: "routine", VibePreferences: []string{"chill", "relaxed"}},
			[4]int{30, 50, 50, 90},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			traits := Traits(&tt.declared)
			if len(traits) != 4 {
				t.Fatalf("len(Traits) = %d, want 4", len(traits))
			}
			for i, want := range tt.want {
				if traits[i].Score != want {
					t.Errorf("%s score = %d, want %d", traits[i].Name, traits[i].Score, want)
				}
			}
		})
	}
}

// --- Test: Build ---

func TestBuild(t *testing.T) {
	t.Parallel()

	r := Build(analysisWith(map[string]int{"coffee": 3}), &models.DeclaredTaste{
		ExplorationStyle: "routine",
		VibePreferences:  []string{"chill"},
	})
	if r.ProfileTitle != "Comfort Connoisseur" {
		t.Errorf("ProfileTitle = %q, want Comfort Connoisseur", r.ProfileTitle)
	}
	if len(r.Segments) != 1 || r.Segments[0].Percentage != 100 {
		t.Errorf("Segments = %+v, want single 100%% segment", r.Segments)
	}
	if len(r.Traits) != 4 {
		t.Errorf("len(Traits) = %d, want 4", len(r.Traits))
	}
}
