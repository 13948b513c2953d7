// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastecore/internal/aggregate"
	"github.com/tomtom215/tastecore/internal/metrics"
	"github.com/tomtom215/tastecore/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	analysisKeyPrefix = "analysis:"
	declaredKeyPrefix = "declared:"
)

var (
	// ErrNotFound is returned when no snapshot exists for a user.
	ErrNotFound = errors.New("snapshot not found")

	// ErrVersionConflict is returned when a save does not match the stored version.
	ErrVersionConflict = errors.New("snapshot version conflict")
)

// Badger stores UserAnalysis and DeclaredTaste snapshots in BadgerDB.
// Analysis writes are guarded by an optimistic version check.
type Badger struct {
	db     *badger.DB
	logger zerolog.Logger
	owned  bool
}

// Open opens (or creates) the snapshot database described by cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(cfg Config, logger zerolog.Logger) (*Badger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites && !cfg.InMemory
	if cfg.Compression {
		opts.Compression = options.Snappy
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	s := NewFromDB(db, logger)
	s.owned = true
	s.logger.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", opts.SyncWrites).
		Msg("snapshot store opened")
	return s, nil
}

// NewFromDB wraps an existing database. Close does not close db.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFromDB(db *badger.DB, logger zerolog.Logger) *Badger {
	return &Badger{
		db:     db,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Close closes the database if it was opened by Open.
func (s *Badger) Close() error {
	if s.owned {
		return s.db.Close()
	}
	return nil
}

// GetAnalysis loads the analysis snapshot for a user. The exploration
// seen-sets are rebuilt before returning.
func (s *Badger) GetAnalysis(ctx context.Context, userID string) (*models.UserAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var analysis models.UserAnalysis
	if err := s.get(analysisKeyPrefix+userID, &analysis); err != nil {
		return nil, err
	}
	aggregate.Rebuild(&analysis)
	return &analysis, nil
}

// SaveAnalysis writes analysis if the stored version equals expectedVersion.
// A user without a snapshot has version 0. On success analysis.Version is
// set to expectedVersion+1.
func (s *Badger) SaveAnalysis(ctx context.Context, analysis *models.UserAnalysis, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if analysis.UserID == "" {
		return errors.New("analysis has no user id")
	}

	key := []byte(analysisKeyPrefix + analysis.UserID)
	next := *analysis
	next.Version = expectedVersion + 1

	err := s.db.Update(func(txn *badger.Txn) error {
		current, err := storedVersion(txn, key)
		if err != nil {
			return err
		}
		if current != expectedVersion {
			return fmt.Errorf("%w: stored %d, expected %d", ErrVersionConflict, current, expectedVersion)
		}

		data, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		return txn.Set(key, data)
	})
	if errors.Is(err, badger.ErrConflict) {
		err = fmt.Errorf("%w: concurrent write", ErrVersionConflict)
	}

	switch {
	case err == nil:
		analysis.Version = next.Version
		metrics.RecordSnapshotWrite(metrics.SnapshotOK)
		return nil
	case errors.Is(err, ErrVersionConflict):
		metrics.RecordSnapshotWrite(metrics.SnapshotConflict)
		s.logger.Debug().
			Str("user_id", analysis.UserID).
			Int64("expected_version", expectedVersion).
			Msg("snapshot version conflict")
		return err
	default:
		metrics.RecordSnapshotWrite(metrics.SnapshotError)
		return fmt.Errorf("save analysis: %w", err)
	}
}

// DeleteAnalysis removes a user's analysis snapshot. Missing snapshots are
// not an error.
func (s *Badger) DeleteAnalysis(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(analysisKeyPrefix + userID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete analysis: %w", err)
		}
		return nil
	})
}

// GetDeclared loads a user's declared taste.
func (s *Badger) GetDeclared(ctx context.Context, userID string) (*models.DeclaredTaste, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var declared models.DeclaredTaste
	if err := s.get(declaredKeyPrefix+userID, &declared); err != nil {
		return nil, err
	}
	return &declared, nil
}

// SaveDeclared replaces a user's declared taste. Quiz results are
// last-write-wins.
func (s *Badger) SaveDeclared(ctx context.Context, userID string, declared *models.DeclaredTaste) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(declared)
	if err != nil {
		return fmt.Errorf("marshal declared taste: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(declaredKeyPrefix+userID), data)
	})
}

// Users returns the ids of all users with an analysis snapshot, sorted.
func (s *Badger) Users(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var users []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(analysisKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			users = append(users, strings.TrimPrefix(string(it.Item().Key()), analysisKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	sort.Strings(users)
	return users, nil
}

func (s *Badger) get(key string, out interface{}) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

// storedVersion returns the version of the snapshot at key, or 0 if absent.
func storedVersion(txn *badger.Txn, key []byte) (int64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read stored version: %w", err)
	}

	var header struct {
		Version int64 `json:"version"`
	}
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &header)
	}); err != nil {
		return 0, fmt.Errorf("decode stored version: %w", err)
	}
	return header.Version, nil
}
