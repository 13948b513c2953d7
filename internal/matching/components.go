// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package matching

import (
	"math"
	"strings"

	"github.com/tomtom215/tastecore/internal/affinity"
	"github.com/tomtom215/tastecore/internal/models"
)

// Social preferences recognised by the context and venue-fit components.
const (
	SocialSolo       = "solo"
	SocialSmallGroup = "small_group"
	SocialBigGroup   = "big_group"
)

// Occasion tags found in Venue.BestFor.
const (
	OccasionSoloWork         = "solo_work"
	OccasionQuickBite        = "quick_bite"
	OccasionDateNight        = "date_night"
	OccasionCasualHangout    = "casual_hangout"
	OccasionBusinessLunch    = "business_lunch"
	OccasionGroupCelebration = "group_celebration"
	OccasionLateNight        = "late_night"
)

var socialOccasions = map[string][]string{
	SocialSolo:       {OccasionSoloWork, OccasionQuickBite},
	SocialSmallGroup: {OccasionDateNight, OccasionCasualHangout, OccasionBusinessLunch},
	SocialBigGroup:   {OccasionGroupCelebration, OccasionLateNight, OccasionCasualHangout},
}

var vibeOccasions = map[string][]string{
	"romantic":  {OccasionDateNight},
	"intimate":  {OccasionDateNight, OccasionCasualHangout},
	"social":    {OccasionGroupCelebration, OccasionCasualHangout, OccasionLateNight},
	"energetic": {OccasionGroupCelebration, OccasionLateNight},
	"chill":     {OccasionSoloWork, OccasionCasualHangout},
	"relaxed":   {OccasionSoloWork, OccasionCasualHangout},
	"upscale":   {OccasionDateNight, OccasionBusinessLunch},
	"elegant":   {OccasionDateNight, OccasionBusinessLunch},
	"casual":    {OccasionCasualHangout, OccasionQuickBite},
	"fun":       {OccasionGroupCelebration, OccasionLateNight},
}

var (
	coffeeVibes    = []string{"chill", "relaxed", "intimate", "homebody", "casual"}
	nightlifeVibes = []string{"social", "energetic", "fun", "trendy", "adventurous"}
	bakeryVibes    = []string{"chill", "relaxed", "cozy", "casual"}
)

// categoryScore is the category affinity for the venue cluster.
func (e *Engine) categoryScore(user *models.UserTaste, venue *models.Venue) float64 {
	return affinity.CategoryAffinity(user.Categories, venue.TasteCluster, e.config.CategoryThreshold)
}

// cuisineScore blends observed and declared cuisine rankings by tx weight.
// When only one list is present it is used directly.
func (e *Engine) cuisineScore(user *models.UserTaste, venue *models.Venue) float64 {
	if venue.CuisineType == "" {
		return 0
	}

	txScore := e.cuisineRankScore(user.TopCuisines, venue.CuisineType)
	quizScore := e.cuisineRankScore(user.CuisinePreferences, venue.CuisineType)

	switch {
	case len(user.TopCuisines) == 0:
		return quizScore
	case len(user.CuisinePreferences) == 0:
		return txScore
	}

	w := clamp01(user.TxWeight)
	return txScore*w + quizScore*(1-w)
}

// cuisineRankScore is 1.0 for the top-ranked cuisine and decays per rank.
func (e *Engine) cuisineRankScore(cuisines []string, cuisine string) float64 {
	if cuisine == "" || len(cuisines) == 0 {
		return 0
	}
	target := strings.ToLower(cuisine)
	for rank, c := range cuisines {
		if strings.ToLower(c) == target {
			return math.Max(1.0-float64(rank)*e.config.CuisineRankDecay, 0)
		}
	}
	return 0
}

// venueFitScore scores non-dining venues by cluster-specific heuristics.
func venueFitScore(user *models.UserTaste, venue *models.Venue) float64 {
	switch strings.ToLower(venue.TasteCluster) {
	case affinity.ClusterCoffee:
		return coffeeFit(user, venue)
	case affinity.ClusterNightlife:
		return nightlifeFit(user, venue)
	case affinity.ClusterBakery:
		return bakeryFit(user, venue)
	default:
		return 0
	}
}

func coffeeFit(user *models.UserTaste, venue *models.Venue) float64 {
	score := math.Min(0.2*float64(affinity.CountOverlap(user.Vibes, coffeeVibes)), 0.4)

	switch {
	case user.SocialPreference == SocialSolo && hasTag(venue.BestFor, OccasionSoloWork):
		score += 0.4
	case isGroup(user.SocialPreference) && hasTag(venue.BestFor, OccasionCasualHangout):
		score += 0.3
	default:
		score += 0.1
	}

	switch user.CoffeePreference {
	case "third_wave":
		score += 0.2
	case "any":
		score += 0.1
	}

	return math.Min(score, 1.0)
}

func nightlifeFit(user *models.UserTaste, venue *models.Venue) float64 {
	var score float64
	switch user.SocialPreference {
	case SocialBigGroup:
		score = 0.4
	case SocialSmallGroup:
		score = 0.3
	case SocialSolo:
		score = 0.05
	default:
		score = 0.15
	}

	score += math.Min(0.15*float64(affinity.CountOverlap(user.Vibes, nightlifeVibes)), 0.45)

	if user.SocialPreference == SocialBigGroup && hasTag(venue.BestFor, OccasionGroupCelebration) {
		score += 0.15
	}
	if hasTag(venue.BestFor, OccasionLateNight) && hasTag(user.Vibes, "energetic") {
		score += 0.1
	}

	return math.Min(score, 1.0)
}

func bakeryFit(user *models.UserTaste, venue *models.Venue) float64 {
	score := 0.15 + math.Min(0.15*float64(affinity.CountOverlap(user.Vibes, bakeryVibes)), 0.3)

	if hasTag(venue.BestFor, OccasionQuickBite) {
		score += 0.2
	}
	if hasTag(venue.BestFor, OccasionCasualHangout) {
		score += 0.15
	}

	return math.Min(score, 1.0)
}

// contextScore is half social-occasion fit and half vibe-occasion fit.
func contextScore(user *models.UserTaste, venue *models.Venue) float64 {
	if len(venue.BestFor) == 0 {
		return 0
	}
	score := 0.5*socialOccasionMatch(user.SocialPreference, venue.BestFor) +
		0.5*vibeOccasionMatch(user.Vibes, venue.BestFor)
	return math.Min(score, 1.0)
}

func socialOccasionMatch(social string, bestFor []string) float64 {
	if social == "" {
		return 0
	}
	return affinity.OverlapScore(affinity.CountOverlap(bestFor, socialOccasions[social]))
}

func vibeOccasionMatch(vibes, bestFor []string) float64 {
	if len(vibes) == 0 {
		return 0
	}
	var occasions []string
	for _, v := range vibes {
		occasions = append(occasions, vibeOccasions[strings.ToLower(v)]...)
	}
	return affinity.OverlapScore(affinity.CountOverlap(bestFor, occasions))
}

func isGroup(social string) bool {
	return social == SocialSmallGroup || social == SocialBigGroup
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
