// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package cache provides a thread-safe generic LRU cache with TTL expiration.

Two callers use it:
  - the ingest pipeline, which records transaction ids to skip redelivered
    events (IsDuplicate)
  - the matching engine, which memoizes match results for identical
    (taste, venue) inputs (Get / Add)

Entries expire lazily on access. CleanupExpired removes expired entries in
one pass and is meant to be called periodically.

# Usage Example

	seen := cache.NewLRU[struct{}](10000, 10*time.Minute)
	if seen.IsDuplicate(txn.ID) {
	    return nil
	}

	memo := cache.NewLRU[models.MatchResult](5000, time.Minute)
	memo.Add(key, result)
	if r, ok := memo.Get(key); ok {
	    return r
	}

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
