// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

// Package validation provides struct validation using go-playground/validator v10.
// It provides a thread-safe singleton validator instance for boundary records
// such as pipeline transaction events, CLI venue files and quiz answers.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Custom category_key validator for taste category identifiers
//   - Field-level errors with human-readable messages
//   - Uses WithRequiredStructEnabled option (v11+ compatibility)
//
// The scoring core never validates; malformed input is rejected before it
// reaches the aggregator or the matching engine.
//
// Example usage:
//
//	var txn models.Transaction
//	if err := json.Unmarshal(payload, &txn); err != nil {
//	    return err
//	}
//	if verr := validation.ValidateStruct(&txn); verr != nil {
//	    log.Warn().Strs("fields", verr.Fields()).Msg("rejecting transaction")
//	    return verr
//	}
package validation
