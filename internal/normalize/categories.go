// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package normalize

// Taste categories produced by the normalizer.
const (
	CategoryCoffee        = "coffee"
	CategoryDining        = "dining"
	CategoryFastFood      = "fast_food"
	CategoryNightlife     = "nightlife"
	CategoryGroceries     = "groceries"
	CategoryEntertainment = "entertainment"
	CategoryFitness       = "fitness"
	CategoryOtherFood     = "other_food"
	CategoryOther         = "other"
)

// CategoryLabels maps each taste category to its long display label.
var CategoryLabels = map[string]string{
	CategoryCoffee:        "Coffee & Cafes",
	CategoryDining:        "Restaurants & Dining",
	CategoryFastFood:      "Fast Food",
	CategoryNightlife:     "Bars & Nightlife",
	CategoryGroceries:     "Groceries",
	CategoryEntertainment: "Entertainment",
	CategoryFitness:       "Fitness & Recreation",
	CategoryOtherFood:     "Other Food & Drink",
	CategoryOther:         "Other",
}

// detailedToCategory maps detailed bank-feed categories to taste categories.
var detailedToCategory = map[string]string{
	"FOOD_AND_DRINK_COFFEE": CategoryCoffee,

	"FOOD_AND_DRINK_RESTAURANT":                  CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_ASIAN":            CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_EUROPEAN":         CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_LATIN_AMERICAN":   CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_AMERICAN":         CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_INDIAN":           CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_MIDDLE_EASTERN":   CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_AFRICAN":          CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_SEAFOOD":          CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_STEAKHOUSE":       CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_PIZZA":            CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_SUSHI":            CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_THAI":             CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_VEGETARIAN_VEGAN": CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_BAKERY":           CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_CAFE":             CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_BREAKFAST_BRUNCH": CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_DELI":             CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_JUICE_SMOOTHIE":   CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_ICE_CREAM":        CategoryDining,
	"FOOD_AND_DRINK_RESTAURANT_DESSERT":          CategoryDining,

	"FOOD_AND_DRINK_FAST_FOOD": CategoryFastFood,

	"FOOD_AND_DRINK_BAR":          CategoryNightlife,
	"FOOD_AND_DRINK_BAR_WINE":     CategoryNightlife,
	"FOOD_AND_DRINK_BAR_BEER":     CategoryNightlife,
	"FOOD_AND_DRINK_BAR_COCKTAIL": CategoryNightlife,
	"FOOD_AND_DRINK_BAR_SPORTS":   CategoryNightlife,
	"FOOD_AND_DRINK_NIGHTCLUB":    CategoryNightlife,

	"FOOD_AND_DRINK_GROCERIES":                  CategoryGroceries,
	"FOOD_AND_DRINK_SUPERMARKETS_AND_GROCERIES": CategoryGroceries,

	"FOOD_AND_DRINK_OTHER":                CategoryOtherFood,
	"FOOD_AND_DRINK_BEER_WINE_AND_LIQUOR": CategoryOtherFood,
	"FOOD_AND_DRINK_VENDING_MACHINES":     CategoryOtherFood,
	"FOOD_AND_DRINK_CATERING":             CategoryOtherFood,
	"FOOD_AND_DRINK_FOOD_TRUCK":           CategoryOtherFood,

	"ENTERTAINMENT":                                             CategoryEntertainment,
	"ENTERTAINMENT_CASINOS_AND_GAMBLING":                        CategoryEntertainment,
	"ENTERTAINMENT_MOVIES_AND_DVS":                              CategoryEntertainment,
	"ENTERTAINMENT_MUSIC_AND_AUDIO":                             CategoryEntertainment,
	"ENTERTAINMENT_NEWSPAPERS_AND_MAGAZINES":                    CategoryEntertainment,
	"ENTERTAINMENT_SPORTING_EVENTS_AMUSEMENT_PARKS_AND_MUSEUMS": CategoryEntertainment,
	"ENTERTAINMENT_TV_AND_MOVIES":                               CategoryEntertainment,
	"ENTERTAINMENT_VIDEO_GAMES":                                 CategoryEntertainment,

	"RECREATION_FITNESS":                    CategoryFitness,
	"RECREATION_OUTDOORS":                   CategoryFitness,
	"RECREATION_SPORTS_AND_FITNESS_CLASSES": CategoryFitness,
}

// detailedToCuisine recovers cuisine information that the dining category
// would otherwise lose.
var detailedToCuisine = map[string]string{
	"FOOD_AND_DRINK_RESTAURANT_ASIAN":            "asian",
	"FOOD_AND_DRINK_RESTAURANT_SUSHI":            "sushi",
	"FOOD_AND_DRINK_RESTAURANT_THAI":             "thai",
	"FOOD_AND_DRINK_RESTAURANT_INDIAN":           "indian",
	"FOOD_AND_DRINK_RESTAURANT_LATIN_AMERICAN":   "latin",
	"FOOD_AND_DRINK_RESTAURANT_EUROPEAN":         "european",
	"FOOD_AND_DRINK_RESTAURANT_AMERICAN":         "american",
	"FOOD_AND_DRINK_RESTAURANT_MIDDLE_EASTERN":   "middle_eastern",
	"FOOD_AND_DRINK_RESTAURANT_AFRICAN":          "african",
	"FOOD_AND_DRINK_RESTAURANT_SEAFOOD":          "seafood",
	"FOOD_AND_DRINK_RESTAURANT_STEAKHOUSE":       "steakhouse",
	"FOOD_AND_DRINK_RESTAURANT_PIZZA":            "pizza",
	"FOOD_AND_DRINK_RESTAURANT_VEGETARIAN_VEGAN": "vegetarian",
	"FOOD_AND_DRINK_RESTAURANT_BREAKFAST_BRUNCH": "brunch",
}

var foodRelatedPrimary = map[string]struct{}{
	"FOOD_AND_DRINK": {},
	"ENTERTAINMENT":  {},
	"RECREATION":     {},
}

// nonRecommendation categories are tracked but never drive recommendations.
var nonRecommendation = map[string]struct{}{
	CategoryGroceries: {},
	CategoryOtherFood: {},
	CategoryOther:     {},
}

// TasteCategory maps a detailed bank category to a taste category.
// Unmapped or empty categories yield "other".
func TasteCategory(detailed string) string {
	if c, ok := detailedToCategory[detailed]; ok {
		return c
	}
	return CategoryOther
}

// Cuisine extracts a cuisine from a detailed bank category, or "".
func Cuisine(detailed string) string {
	return detailedToCuisine[detailed]
}

// IsFoodRelated reports whether a primary bank category is relevant to
// taste analysis.
func IsFoodRelated(primary string) bool {
	_, ok := foodRelatedPrimary[primary]
	return ok
}

// IsRecommendable reports whether a taste category may drive recommendations.
func IsRecommendable(category string) bool {
	_, excluded := nonRecommendation[category]
	return !excluded
}
