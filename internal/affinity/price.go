// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package affinity

import (
	"strconv"
	"strings"
)

// Numeric price levels.
const (
	PriceBudget   = 0
	PriceModerate = 1
	PricePremium  = 2
	PriceLuxury   = 3
)

// userPriceLevels maps quiz price tiers to levels.
var userPriceLevels = map[string]int{
	"budget":   PriceBudget,
	"moderate": PriceModerate,
	"premium":  PricePremium,
	"luxury":   PriceLuxury,
}

var dollarSignLevels = map[string]int{
	"$":    PriceBudget,
	"$$":   PriceModerate,
	"$$$":  PricePremium,
	"$$$$": PriceLuxury,
}

// priceRangeLevels maps listing price ranges (hyphen-normalized) to levels.
var priceRangeLevels = map[string]int{
	"$1-10":   PriceBudget,
	"$10-20":  PriceModerate,
	"$20-30":  PriceModerate,
	"$30-50":  PricePremium,
	"$50-100": PricePremium,
	"$100+":   PriceLuxury,
}

// NormalizeVenuePrice converts a venue price string to a level 0-3.
// It accepts "$".."$$$$", listing ranges such as "$10–20", and literal
// amounts such as "$32.00". Missing or unparseable input is moderate.
func NormalizeVenuePrice(price string) int {
	price = strings.TrimSpace(price)
	if price == "" {
		return PriceModerate
	}
	if lvl, ok := dollarSignLevels[price]; ok {
		return lvl
	}

	ranged := strings.ReplaceAll(price, "–", "-")
	if lvl, ok := priceRangeLevels[ranged]; ok {
		return lvl
	}

	if strings.HasPrefix(price, "$") && !strings.HasPrefix(price, "$$") {
		amountStr := strings.ReplaceAll(strings.TrimPrefix(price, "$"), ",", "")
		if amount, err := strconv.ParseFloat(amountStr, 64); err == nil {
			switch {
			case amount < 15:
				return PriceBudget
			case amount < 40:
				return PriceModerate
			case amount < 80:
				return PricePremium
			default:
				return PriceLuxury
			}
		}
	}

	return PriceModerate
}

// NormalizeUserPrice converts a quiz price tier to a level 0-3.
// Venue-style dollar strings are accepted too. Unknown tiers are moderate.
func NormalizeUserPrice(tier string) int {
	tier = strings.ToLower(strings.TrimSpace(tier))
	if tier == "" {
		return PriceModerate
	}
	if lvl, ok := userPriceLevels[tier]; ok {
		return lvl
	}
	if lvl, ok := dollarSignLevels[tier]; ok {
		return lvl
	}
	return PriceModerate
}

// PriceMatch scores tier distance: 0 -> 1.0, 1 -> 0.5, 2+ -> 0.0.
func PriceMatch(userTier, venuePrice string) float64 {
	diff := NormalizeUserPrice(userTier) - NormalizeVenuePrice(venuePrice)
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.5
	default:
		return 0.0
	}
}

// PriceDisplay renders any venue price format as "$".."$$$$".
func PriceDisplay(price string) string {
	return strings.Repeat("$", NormalizeVenuePrice(price)+1)
}
