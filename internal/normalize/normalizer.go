// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/tastecore/internal/models"
	"github.com/tomtom215/tastecore/internal/validation"
)

// UnknownMerchant names transactions that carry no merchant text at all.
const UnknownMerchant = "Unknown"

const dateLayout = "2006-01-02"

// ErrNoTimestamp is returned for records with neither a date nor a datetime.
var ErrNoTimestamp = errors.New("transaction has no date or datetime")

// RawTransaction is one record as delivered by the bank feed.
type RawTransaction struct {
	TransactionID    string          `json:"transaction_id"`
	UserID           string          `json:"user_id" validate:"required"`
	Amount           decimal.Decimal `json:"amount"`
	Date             string          `json:"date,omitempty" validate:"required_without=Datetime"`
	Datetime         *time.Time      `json:"datetime,omitempty"`
	Name             string          `json:"name,omitempty"`
	MerchantName     string          `json:"merchant_name,omitempty"`
	MerchantEntityID string          `json:"merchant_entity_id,omitempty"`
	CategoryPrimary  string          `json:"category_primary,omitempty"`
	CategoryDetailed string          `json:"category_detailed,omitempty"`
	City             string          `json:"city,omitempty"`
	Region           string          `json:"region,omitempty"`
}

// Transaction converts a raw record into a normalized transaction.
//
// Rules:
//   - the taste category and cuisine come from the detailed category
//   - the time bucket needs a datetime; date-only records get "unknown"
//   - date-only records are stamped at noon UTC
//   - the amount is made positive
//   - a missing transaction id is replaced by a random UUID
func Transaction(raw *RawTransaction) (models.Transaction, error) {
	if verr := validation.ValidateStruct(raw); verr != nil {
		return models.Transaction{}, fmt.Errorf("invalid raw transaction: %w", verr)
	}

	ts, hasTime, err := timestamp(raw)
	if err != nil {
		return models.Transaction{}, err
	}

	id := raw.TransactionID
	if id == "" {
		id = uuid.NewString()
	}

	txn := models.Transaction{
		ID:            id,
		UserID:        raw.UserID,
		Amount:        raw.Amount.Abs(),
		Timestamp:     ts,
		MerchantName:  merchantName(raw),
		MerchantID:    raw.MerchantEntityID,
		TasteCategory: TasteCategory(raw.CategoryDetailed),
		Cuisine:       Cuisine(raw.CategoryDetailed),
		TimeBucket:    models.TimeBucketUnknown,
		DayType:       DayType(ts),
	}
	if hasTime {
		txn.TimeBucket = TimeBucket(ts)
	}
	return txn, nil
}

// Batch normalizes records, skipping those that are not food related when
// foodOnly is set. Failed records are reported in errs and left out of the
// result, which keeps input order.
func Batch(raws []RawTransaction, foodOnly bool) (txns []models.Transaction, errs []error) {
	txns = make([]models.Transaction, 0, len(raws))
	for i := range raws {
		if foodOnly && !IsFoodRelated(raws[i].CategoryPrimary) {
			continue
		}
		txn, err := Transaction(&raws[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		txns = append(txns, txn)
	}
	return txns, errs
}

// TimeBucket assigns the time-of-day bucket for the hour of t in its own
// location: morning 6-12, afternoon 12-17, evening 17-21, night otherwise.
func TimeBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 6 && h < 12:
		return models.TimeBucketMorning
	case h >= 12 && h < 17:
		return models.TimeBucketAfternoon
	case h >= 17 && h < 21:
		return models.TimeBucketEvening
	default:
		return models.TimeBucketNight
	}
}

// DayType classifies t as weekend (Saturday, Sunday) or weekday.
func DayType(t time.Time) string {
	if t.IsZero() {
		return models.DayTypeUnknown
	}
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return models.DayTypeWeekend
	default:
		return models.DayTypeWeekday
	}
}

func timestamp(raw *RawTransaction) (ts time.Time, hasTime bool, err error) {
	if raw.Datetime != nil && !raw.Datetime.IsZero() {
		return *raw.Datetime, true, nil
	}
	if raw.Date == "" {
		return time.Time{}, false, ErrNoTimestamp
	}
	d, err := time.Parse(dateLayout, raw.Date)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse date %q: %w", raw.Date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), false, nil
}

func merchantName(raw *RawTransaction) string {
	if name := strings.TrimSpace(raw.MerchantName); name != "" {
		return name
	}
	if name := strings.TrimSpace(raw.Name); name != "" {
		return name
	}
	return UnknownMerchant
}
