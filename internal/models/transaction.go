// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Time buckets assigned to a transaction by the normalizer.
const (
	TimeBucketMorning   = "morning"
	TimeBucketAfternoon = "afternoon"
	TimeBucketEvening   = "evening"
	TimeBucketNight     = "night"
	TimeBucketUnknown   = "unknown"
)

// Day types assigned to a transaction by the normalizer.
const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
	DayTypeUnknown = "unknown"
)

// Transaction is a normalized spending event ready for aggregation.
// Transactions are immutable once created and must be supplied to the
// aggregator in non-decreasing Timestamp order per user.
type Transaction struct {
	ID            string          `json:"id" validate:"required"`
	UserID        string          `json:"user_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp" validate:"required"`
	MerchantName  string          `json:"merchant_name"`
	MerchantID    string          `json:"merchant_id,omitempty"`
	TasteCategory string          `json:"taste_category" validate:"required,category_key"`
	Cuisine       string          `json:"cuisine,omitempty"`
	TimeBucket    string          `json:"time_bucket" validate:"omitempty,oneof=morning afternoon evening night unknown"`
	DayType       string          `json:"day_type" validate:"omitempty,oneof=weekday weekend unknown"`
}

// MerchantKey returns the identity used for merchant-keyed aggregates.
// MerchantID wins over MerchantName. An empty key means the transaction
// carries no merchant identity.
func (t *Transaction) MerchantKey() string {
	if t.MerchantID != "" {
		return t.MerchantID
	}
	return t.MerchantName
}
