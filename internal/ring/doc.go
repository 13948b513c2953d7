// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

// Package ring builds the display profile for a user: taste ring segments
// from observed spending, a rule-based profile title from declared taste, and
// four trait scores.
package ring
