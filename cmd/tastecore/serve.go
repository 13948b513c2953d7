// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastecore/internal/aggregate"
	"github.com/tomtom215/tastecore/internal/logging"
	"github.com/tomtom215/tastecore/internal/models"
	"github.com/tomtom215/tastecore/internal/normalize"
	"github.com/tomtom215/tastecore/internal/pipeline"
	"github.com/tomtom215/tastecore/internal/store"
	"github.com/tomtom215/tastecore/internal/supervisor"
	"github.com/tomtom215/tastecore/internal/supervisor/services"
)

const maxFeedLine = 1 << 20

func runServe(ctx context.Context, args []string, stdin io.Reader, stderr io.Writer) error {
	fs, configPath := newFlagSet("serve", stderr)
	input := fs.String("input", "-", "JSON-lines transaction feed (- for stdin, empty for none)")
	raw := fs.Bool("raw", false, "feed lines are raw bank records to normalize")
	profiles := fs.String("profiles", "", "JSON array of profiles whose declared taste is stored before ingesting")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *profiles == "-" && *input == "-" {
		return fmt.Errorf("only one of -profiles and -input may read stdin")
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}
	logger := logging.WithComponent("serve")

	snapshots, err := store.Open(cfg.Store, logging.Logger())
	if err != nil {
		return err
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing snapshot store")
		}
	}()

	if *profiles != "" {
		n, err := seedDeclared(ctx, snapshots, *profiles, stdin)
		if err != nil {
			return err
		}
		logger.Info().Int("users", n).Msg("declared tastes stored")
	}

	agg := aggregate.NewAggregator(cfg.Aggregate, logging.WithComponent("aggregate"))
	p, err := pipeline.New(cfg.Pipeline, agg, snapshots, logging.Logger())
	if err != nil {
		return err
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(logging.WithComponent("supervisor")), supervisor.DefaultTreeConfig())
	tree.AddIngestService(services.NewPipelineService(p))
	if cfg.Metrics.Enabled {
		server := services.NewMetricsServer(cfg.Metrics.Address, cfg.Metrics.Path)
		tree.AddOpsService(services.NewHTTPServerService(server, 10*time.Second))
		logger.Info().Str("addr", cfg.Metrics.Address).Str("path", cfg.Metrics.Path).Msg("metrics enabled")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	if *input != "" {
		feed, closeFeed, err := openFeed(*input, stdin)
		if err != nil {
			cancel()
			<-errCh
			return err
		}
		defer closeFeed()
		go func() {
			n, err := publishFeed(ctx, p, feed, *raw, logger)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("transaction feed failed")
				return
			}
			logger.Info().Int("published", n).Msg("transaction feed drained")
		}()
	}

	logger.Info().Str("store", cfg.Store.Path).Bool("in_memory", cfg.Store.InMemory).Msg("tastecore serving")

	err = <-errCh
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("shutdown complete")
		return nil
	}
	return err
}

// declaredStore persists declared tastes.
type declaredStore interface {
	SaveDeclared(ctx context.Context, userID string, declared *models.DeclaredTaste) error
}

// seedDeclared stores the declared taste of every profile in path and returns
// the number stored. Profiles without a user or a declared taste are skipped.
func seedDeclared(ctx context.Context, dst declaredStore, path string, stdin io.Reader) (int, error) {
	var profiles []profileInput
	if err := readJSON(path, stdin, &profiles); err != nil {
		return 0, err
	}

	stored := 0
	for i := range profiles {
		declared, err := declaredTaste(&profiles[i])
		if err != nil {
			return stored, fmt.Errorf("profile %d: %w", i, err)
		}
		if profiles[i].UserID == "" || declared == nil {
			continue
		}
		if err := dst.SaveDeclared(ctx, profiles[i].UserID, declared); err != nil {
			return stored, fmt.Errorf("store declared taste for %s: %w", profiles[i].UserID, err)
		}
		stored++
	}
	return stored, nil
}

func openFeed(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec // path is operator input
	if err != nil {
		return nil, nil, fmt.Errorf("open feed %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// publishFeed publishes one transaction per line and returns the number
// published. Lines that fail to decode or normalize are logged and skipped.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func publishFeed(ctx context.Context, p *pipeline.Pipeline, r io.Reader, raw bool, logger zerolog.Logger) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFeedLine)

	published := 0
	for line := 1; scanner.Scan(); line++ {
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		txn, skip, err := decodeFeedLine(data, raw)
		if err != nil {
			logger.Warn().Err(err).Int("line", line).Msg("skipping feed line")
			continue
		}
		if skip {
			continue
		}

		if err := p.Publish(logging.ContextWithNewCorrelationID(ctx), txn); err != nil {
			return published, err
		}
		published++
	}
	return published, scanner.Err()
}

// decodeFeedLine decodes one feed line. skip is set for raw records outside
// the food and entertainment categories.
func decodeFeedLine(data []byte, raw bool) (txn models.Transaction, skip bool, err error) {
	if !raw {
		if err := json.Unmarshal(data, &txn); err != nil {
			return txn, false, fmt.Errorf("decode transaction: %w", err)
		}
		return txn, false, nil
	}

	var rec normalize.RawTransaction
	if err := json.Unmarshal(data, &rec); err != nil {
		return txn, false, fmt.Errorf("decode raw transaction: %w", err)
	}
	if !normalize.IsFoodRelated(rec.CategoryPrimary) {
		return txn, true, nil
	}
	txn, err = normalize.Transaction(&rec)
	return txn, false, err
}
