// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

// Package quiz converts onboarding quiz answers into a declared taste profile.
package quiz

import (
	"github.com/tomtom215/tastecore/internal/models"
)

// Answer is one quiz response.
type Answer struct {
	QuestionID int    `json:"question_id" validate:"required,min=1,max=5"`
	AnswerID   string `json:"answer_id" validate:"required,oneof=a b c d"`
}

// Process maps answers to a declared taste. Unknown question or answer ids
// are skipped. Vibes are de-duplicated in first-seen order, cuisines are
// appended in answer order and the last answer wins for scalar fields.
func Process(answers []Answer) *models.DeclaredTaste {
	taste := &models.DeclaredTaste{
		VibePreferences:     []string{},
		CuisinePreferences:  []string{},
		DietaryRestrictions: []string{},
	}
	seen := make(map[string]struct{})

	for _, answer := range answers {
		key, ok := QuestionKey(answer.QuestionID)
		if !ok {
			continue
		}
		attrs, ok := AnswerAttributes(key, answer.AnswerID)
		if !ok {
			continue
		}

		for _, v := range attrs.Vibes {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			taste.VibePreferences = append(taste.VibePreferences, v)
		}
		if attrs.Social != "" {
			taste.SocialPreference = attrs.Social
		}
		if attrs.Exploration != "" {
			taste.ExplorationStyle = attrs.Exploration
		}
		if attrs.Cuisine != "" {
			taste.CuisinePreferences = append(taste.CuisinePreferences, attrs.Cuisine)
		}
		if attrs.PriceTier != "" {
			taste.PriceTier = attrs.PriceTier
		}
	}

	return taste
}

// IsValid reports whether value is a member of values.
func IsValid(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
