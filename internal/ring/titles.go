// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package ring

import (
	"strings"

	"github.com/tomtom215/tastecore/internal/models"
)

// Default titles.
const (
	DefaultTitle    = "Taste Explorer"
	DefaultTagline  = "Discovering your perfect spots"
	NewUserTagline  = "Your taste journey begins"
	styleVeryAdv    = "very_adventurous"
	styleAdventurer = "adventurous"
)

type titleKey struct {
	style string
	vibe  string
}

type profileTitle struct {
	title   string
	tagline string
}

var profileTitles = map[titleKey]profileTitle{
	{"adventurous", "trendy"}:    {"Trend Hunter", "First to find the next big thing"},
	{"adventurous", "social"}:    {"Social Explorer", "Where the party's at"},
	{"adventurous", "energetic"}: {"Thrill Seeker", "Life's too short for boring food"},
	{"adventurous", "upscale"}:   {"Refined Adventurer", "Luxury with a twist"},
	{"adventurous", "casual"}:    {"Curious Wanderer", "Always open to new flavors"},
	{"adventurous", "intimate"}:  {"Hidden Gem Hunter", "Finds the spots no one knows"},
	{"adventurous", "romantic"}:  {"Date Night Pioneer", "Romance meets discovery"},

	{"very_adventurous", "trendy"}:    {"Culinary Trailblazer", "No dish too daring"},
	{"very_adventurous", "social"}:    {"Party Pioneer", "Leading the crew to new places"},
	{"very_adventurous", "energetic"}: {"Flavor Chaser", "The weirder, the better"},
	{"very_adventurous", "upscale"}:   {"Gourmet Explorer", "Fine dining frontiers"},

	{"moderate", "trendy"}:   {"Trend Watcher", "Keeps up with what's hot"},
	{"moderate", "social"}:   {"Social Foodie", "Great company, great food"},
	{"moderate", "casual"}:   {"Easy Going Eater", "Good vibes, good bites"},
	{"moderate", "upscale"}:  {"Occasional Splurger", "Treats when it counts"},
	{"moderate", "chill"}:    {"Balanced Palate", "Open to suggestions"},
	{"moderate", "intimate"}: {"Thoughtful Diner", "Quality over quantity"},

	{"routine", "chill"}:    {"Comfort Connoisseur", "Knows what they love"},
	{"routine", "casual"}:   {"Neighborhood Regular", "Loyal to the locals"},
	{"routine", "homebody"}: {"Home Chef", "Kitchen is their happy place"},
	{"routine", "upscale"}:  {"Classic Sophisticate", "Timeless taste"},
	{"routine", "intimate"}: {"Cozy Corner Lover", "Same spot, same smile"},
	{"routine", "social"}:   {"Local Legend", "Everyone knows their order"},
}

// vibeFallbacks lists related vibes tried when no exact title exists.
var vibeFallbacks = map[string][]string{
	"elegant":     {"upscale"},
	"relaxed":     {"casual", "chill"},
	"fun":         {"energetic", "social"},
	"romantic":    {"intimate"},
	"adventurous": {"trendy"},
}

// vibePriority orders vibes by how strongly they shape a title.
var vibePriority = []string{
	"trendy", "upscale", "romantic", "intimate", "energetic", "social",
	"casual", "chill", "relaxed", "homebody", "fun", "elegant", "adventurous",
}

// DominantVibe picks the vibe that best characterizes a user.
// Vibes in the priority list win in priority order; otherwise the first
// vibe is returned. An empty list yields "".
func DominantVibe(vibes []string) string {
	if len(vibes) == 0 {
		return ""
	}
	present := make(map[string]struct{}, len(vibes))
	for _, v := range vibes {
		present[strings.ToLower(v)] = struct{}{}
	}
	for _, p := range vibePriority {
		if _, ok := present[p]; ok {
			return p
		}
	}
	return strings.ToLower(vibes[0])
}

// LookupTitle resolves a title for an exploration style and vibe.
func LookupTitle(style, vibe string) (title, tagline string) {
	if style == "" || vibe == "" {
		return DefaultTitle, DefaultTagline
	}
	style = strings.ToLower(style)
	vibe = strings.ToLower(vibe)

	if t, ok := profileTitles[titleKey{style, vibe}]; ok {
		return t.title, t.tagline
	}
	if style == styleVeryAdv {
		if t, ok := profileTitles[titleKey{styleAdventurer, vibe}]; ok {
			return t.title, t.tagline
		}
	}
	for _, related := range vibeFallbacks[vibe] {
		if t, ok := profileTitles[titleKey{style, related}]; ok {
			return t.title, t.tagline
		}
	}
	return DefaultTitle, DefaultTagline
}

// Title returns the profile title and tagline for a declared taste.
// A nil or empty declaration gets the new-user tagline.
func Title(declared *models.DeclaredTaste) (title, tagline string) {
	if declared == nil || (declared.ExplorationStyle == "" && len(declared.VibePreferences) == 0) {
		return DefaultTitle, NewUserTagline
	}
	return LookupTitle(declared.ExplorationStyle, DominantVibe(declared.VibePreferences))
}
