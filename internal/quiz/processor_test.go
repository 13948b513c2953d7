// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package quiz

import (
	"reflect"
	"testing"
)

func TestProcess_SingleAnswers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		answer      Answer
		vibes       []string
		social      string
		exploration string
		cuisines    []string
		price       string
	}{
		{"friday cozy", Answer{1, "a"}, []string{"chill", "intimate"}, "small_group", "", []string{}, ""},
		{"friday lively", Answer{1, "b"}, []string{"social", "energetic"}, "big_group", "", []string{}, ""},
		{"friday trendy", Answer{1, "c"}, []string{"trendy", "adventurous"}, "", "adventurous", []string{}, ""},
		{"friday home", Answer{1, "d"}, []string{"chill", "homebody"}, "solo", "", []string{}, ""},
		{"very adventurous", Answer{2, "d"}, []string{}, "", "very_adventurous", []string{}, ""},
		{"upscale vibe", Answer{3, "a"}, []string{"upscale", "elegant"}, "", "", []string{}, ""},
		{"asian cuisine", Answer{4, "b"}, []string{}, "", "", []string{"asian"}, ""},
		{"premium budget", Answer{5, "c"}, []string{}, "", "", []string{}, "premium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Process([]Answer{tt.answer})
			if !reflect.DeepEqual(got.VibePreferences, tt.vibes) {
				t.Errorf("VibePreferences = %v, want %v", got.VibePreferences, tt.vibes)
			}
			if got.SocialPreference != tt.social {
				t.Errorf("SocialPreference = %q, want %q", got.SocialPreference, tt.social)
			}
			if got.ExplorationStyle != tt.exploration {
				t.Errorf("ExplorationStyle = %q, want %q", got.ExplorationStyle, tt.exploration)
			}
			if !reflect.DeepEqual(got.CuisinePreferences, tt.cuisines) {
				t.Errorf("CuisinePreferences = %v, want %v", got.CuisinePreferences, tt.cuisines)
			}
			if got.PriceTier != tt.price {
				t.Errorf("PriceTier = %q, want %q", got.PriceTier, tt.price)
			}
		})
	}
}

func TestProcess_FullQuiz(t *testing.T) {
	t.Parallel()

	got := Process([]Answer{
		{1, "c"},
		{2, "c"},
		{3, "c"},
		{4, "a"},
		{5, "b"},
	})

	wantVibes := []string{"trendy", "adventurous", "energetic", "fun"}
	if !reflect.DeepEqual(got.VibePreferences, wantVibes) {
		t.Errorf("VibePreferences = %v, want %v", got.VibePreferences, wantVibes)
	}
	if got.ExplorationStyle != "adventurous" {
		t.Errorf("ExplorationStyle = %q, want adventurous", got.ExplorationStyle)
	}
	if !reflect.DeepEqual(got.CuisinePreferences, []string{"italian"}) {
		t.Errorf("CuisinePreferences = %v, want [italian]", got.CuisinePreferences)
	}
	if got.PriceTier != "moderate" {
		t.Errorf("PriceTier = %q, want moderate", got.PriceTier)
	}
}

func TestProcess_VibesDeduplicatedInOrder(t *testing.T) {
	t.Parallel()

	got := Process([]Answer{{1, "a"}, {3, "d"}, {1, "d"}})
	want := []string{"chill", "intimate", "romantic", "homebody"}
	if !reflect.DeepEqual(got.VibePreferences, want) {
		t.Errorf("VibePreferences = %v, want %v", got.VibePreferences, want)
	}
	if got.SocialPreference != "solo" {
		t.Errorf("SocialPreference = %q, want solo (last answer wins)", got.SocialPreference)
	}
}

func TestProcess_CuisinesAppend(t *testing.T) {
	t.Parallel()

	got := Process([]Answer{{4, "d"}, {4, "a"}})
	if !reflect.DeepEqual(got.CuisinePreferences, []string{"mediterranean", "italian"}) {
		t.Errorf("CuisinePreferences = %v", got.CuisinePreferences)
	}
}

func TestProcess_Empty(t *testing.T) {
	t.Parallel()

	got := Process(nil)
	if len(got.VibePreferences) != 0 || len(got.CuisinePreferences) != 0 || len(got.DietaryRestrictions) != 0 {
		t.Errorf("Process(nil) lists = %+v, want empty", got)
	}
	if got.ExplorationStyle != "" || got.SocialPreference != "" || got.PriceTier != "" || got.CoffeePreference != "" {
		t.Errorf("Process(nil) scalars = %+v, want unset", got)
	}
}

func TestProcess_SkipsInvalidIDs(t *testing.T) {
	t.Parallel()

	got := Process([]Answer{{0, "a"}, {99, "a"}, {1, "z"}, {3, ""}, {1, "a"}})
	want := []string{"chill", "intimate"}
	if !reflect.DeepEqual(got.VibePreferences, want) {
		t.Errorf("VibePreferences = %v, want %v", got.VibePreferences, want)
	}

	if only := Process([]Answer{{1, "e"}}); len(only.VibePreferences) != 0 {
		t.Errorf("invalid answer produced vibes %v", only.VibePreferences)
	}
}

func TestEnumerations(t *testing.T) {
	t.Parallel()

	if len(AllVibes) != 13 {
		t.Errorf("len(AllVibes) = %d, want 13", len(AllVibes))
	}
	for _, q := range []int{1, 3} {
		key, _ := QuestionKey(q)
		for _, id := range []string{"a", "b", "c", "d"} {
			attrs, ok := AnswerAttributes(key, id)
			if !ok {
				t.Fatalf("missing mapping %s/%s", key, id)
			}
			for _, v := range attrs.Vibes {
				if !IsValid(AllVibes, v) {
					t.Errorf("%s/%s vibe %q not in AllVibes", key, id, v)
				}
			}
		}
	}
	if !IsValid(ExplorationStyles, "very_adventurous") || IsValid(PriceTiers, "cheap") {
		t.Error("IsValid() mismatch")
	}
}
