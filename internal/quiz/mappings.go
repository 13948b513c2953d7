// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package quiz

// Question keys by question id.
const (
	QuestionIdealFriday    = "ideal_friday"
	QuestionFoodAdventure  = "food_adventure"
	QuestionVibePreference = "vibe_preference"
	QuestionCuisine        = "cuisine_preference"
	QuestionBudget         = "budget_preference"
)

// Attributes are the taste attributes one answer contributes.
type Attributes struct {
	Vibes       []string
	Social      string
	Exploration string
	Cuisine     string
	PriceTier   string
}

var questionKeys = map[int]string{
	1: QuestionIdealFriday,
	2: QuestionFoodAdventure,
	3: QuestionVibePreference,
	4: QuestionCuisine,
	5: QuestionBudget,
}

var answerMappings = map[string]map[string]Attributes{
	// What's your ideal Friday night?
	QuestionIdealFriday: {
		"a": {Vibes: []string{"chill", "intimate"}, Social: "small_group"},
		"b": {Vibes: []string{"social", "energetic"}, Social: "big_group"},
		"c": {Vibes: []string{"trendy", "adventurous"}, Exploration: "adventurous"},
		"d": {Vibes: []string{"chill", "homebody"}, Social: "solo"},
	},
	// How adventurous are you with food?
	QuestionFoodAdventure: {
		"a": {Exploration: "routine"},
		"b": {Exploration: "moderate"},
		"c": {Exploration: "adventurous"},
		"d": {Exploration: "very_adventurous"},
	},
	// Pick your vibe.
	QuestionVibePreference: {
		"a": {Vibes: []string{"upscale", "elegant"}},
		"b": {Vibes: []string{"casual", "relaxed"}},
		"c": {Vibes: []string{"energetic", "fun"}},
		"d": {Vibes: []string{"intimate", "romantic"}},
	},
	// Your go-to cuisine?
	QuestionCuisine: {
		"a": {Cuisine: "italian"},
		"b": {Cuisine: "asian"},
		"c": {Cuisine: "american"},
		"d": {Cuisine: "mediterranean"},
	},
	// Budget for a nice dinner?
	QuestionBudget: {
		"a": {PriceTier: "budget"},
		"b": {PriceTier: "moderate"},
		"c": {PriceTier: "premium"},
		"d": {PriceTier: "luxury"},
	},
}

// Valid enumerations for declared taste fields.
var (
	ExplorationStyles = []string{"routine", "moderate", "adventurous", "very_adventurous"}
	SocialPreferences = []string{"solo", "small_group", "big_group"}
	PriceTiers        = []string{"budget", "moderate", "premium", "luxury"}
	CoffeePreferences = []string{"third_wave", "any"}
	AllCuisines       = []string{"italian", "asian", "american", "mediterranean"}
	AllVibes          = []string{
		"chill", "intimate", "social", "energetic", "trendy", "adventurous", "homebody",
		"upscale", "elegant", "casual", "relaxed", "fun", "romantic",
	}
)

// QuestionKey returns the key for a question id.
func QuestionKey(questionID int) (string, bool) {
	key, ok := questionKeys[questionID]
	return key, ok
}

// AnswerAttributes returns the attributes for an answer to a question.
func AnswerAttributes(questionKey, answerID string) (Attributes, bool) {
	attrs, ok := answerMappings[questionKey][answerID]
	return attrs, ok
}
