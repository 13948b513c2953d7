// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

// Package normalize turns raw bank-feed transaction records into
// models.Transaction values ready for aggregation.
//
// Detailed bank categories map to taste categories through a static table;
// anything unmapped becomes "other". Restaurant subcategories also yield a
// cuisine. Time-of-day buckets and weekday/weekend classification are
// derived from the record's timestamp.
package normalize
