// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tastecore/internal/aggregate"
	"github.com/tomtom215/tastecore/internal/cache"
	"github.com/tomtom215/tastecore/internal/logging"
	"github.com/tomtom215/tastecore/internal/metrics"
	"github.com/tomtom215/tastecore/internal/models"
	"github.com/tomtom215/tastecore/internal/store"
	"github.com/tomtom215/tastecore/internal/validation"
)

const (
	ingestHandlerName = "ingest"
	metadataUserID    = "user_id"
)

// SnapshotStore loads and saves analysis snapshots with a version check.
type SnapshotStore interface {
	GetAnalysis(ctx context.Context, userID string) (*models.UserAnalysis, error)
	SaveAnalysis(ctx context.Context, analysis *models.UserAnalysis, expectedVersion int64) error
}

// Pipeline ingests transaction events into per-user analysis snapshots.
//
// Events are delivered over an in-process gochannel topic to a single
// subscriber, so per-user ingestion is serialized in publish order. Each
// event is loaded, folded into the user's analysis and saved with an
// optimistic version check; conflicts are retried with backoff.
//
// Middleware, outer to inner:
//   - Recoverer converts handler panics into errors
//   - PoisonQueue routes events that still fail after all retries
//   - Retry applies exponential backoff to transient failures
//   - a handler-level PoisonQueue routes permanent errors without retrying
type Pipeline struct {
	cfg    Config
	agg    *aggregate.Aggregator
	store  SnapshotStore
	seen   *cache.LRU[struct{}]
	logger zerolog.Logger

	pubSub *gochannel.GoChannel
	poison *gochannel.GoChannel
	router *message.Router
}

// New creates a pipeline. Call Run to start consuming.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, agg *aggregate.Aggregator, snapshots SnapshotStore, logger zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}
	if agg == nil || snapshots == nil {
		return nil, errors.New("pipeline requires an aggregator and a snapshot store")
	}

	logger = logger.With().Str("component", "pipeline").Logger()
	wmLogger := logging.NewWatermillAdapter(logger)

	p := &Pipeline{
		cfg:    cfg,
		agg:    agg,
		store:  snapshots,
		seen:   cache.NewLRU[struct{}](cfg.DedupCapacity, cfg.DedupTTL),
		logger: logger,
		pubSub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            cfg.BufferSize,
			BlockPublishUntilSubscriberAck: true,
		}, wmLogger),
		poison: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.BufferSize,
		}, wmLogger),
	}

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)

	exhausted, err := middleware.PoisonQueueWithFilter(p.poison, cfg.PoisonTopic, func(err error) bool {
		metrics.RecordPoisonMessage()
		p.logger.Warn().Err(err).Msg("transaction event failed after retries")
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("create poison queue middleware: %w", err)
	}
	router.AddMiddleware(exhausted)

	retry := middleware.Retry{
		MaxRetries:      cfg.RetryMaxRetries,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		Multiplier:      cfg.RetryMultiplier,
		Logger:          wmLogger,
	}
	router.AddMiddleware(retry.Middleware)

	permanent, err := middleware.PoisonQueueWithFilter(p.poison, cfg.PoisonTopic, func(err error) bool {
		if !IsPermanentError(err) {
			return false
		}
		metrics.RecordPoisonMessage()
		p.logger.Warn().Err(err).Msg("rejecting transaction event")
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("create permanent poison middleware: %w", err)
	}

	h := router.AddConsumerHandler(ingestHandlerName, cfg.Topic, p.pubSub, p.handle)
	h.AddMiddleware(permanent)

	p.router = router
	return p, nil
}

// Run starts the router and blocks until ctx is canceled or Close is called.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info().Str("topic", p.cfg.Topic).Msg("pipeline starting")
	return p.router.Run(ctx)
}

// Running returns a channel that closes once the pipeline is consuming.
func (p *Pipeline) Running() <-chan struct{} {
	return p.router.Running()
}

// Close stops the router and both pub/subs.
func (p *Pipeline) Close() error {
	return errors.Join(p.router.Close(), p.pubSub.Close(), p.poison.Close())
}

// Publish sends transactions to the ingest topic in order. It waits for the
// pipeline to be running and, because delivery is acknowledged, returns only
// after every transaction has been handled.
func (p *Pipeline) Publish(ctx context.Context, txns ...models.Transaction) error {
	select {
	case <-p.router.Running():
	case <-ctx.Done():
		return ctx.Err()
	}

	correlationID := logging.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = logging.GenerateCorrelationID()
	}

	for i := range txns {
		payload, err := json.Marshal(&txns[i])
		if err != nil {
			return fmt.Errorf("marshal transaction %s: %w", txns[i].ID, err)
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		middleware.SetCorrelationID(correlationID, msg)
		msg.Metadata.Set(metadataUserID, txns[i].UserID)

		if err := p.pubSub.Publish(p.cfg.Topic, msg); err != nil {
			return fmt.Errorf("publish transaction %s: %w", txns[i].ID, err)
		}
	}
	return nil
}

// Poisoned subscribes to events that could not be ingested.
func (p *Pipeline) Poisoned(ctx context.Context) (<-chan *message.Message, error) {
	return p.poison.Subscribe(ctx, p.cfg.PoisonTopic)
}

// handle ingests one transaction event.
func (p *Pipeline) handle(msg *message.Message) error {
	start := time.Now()

	var txn models.Transaction
	if err := json.Unmarshal(msg.Payload, &txn); err != nil {
		return NewPermanentError("decode transaction event", fmt.Errorf("%w: %w", ErrInvalidEvent, err))
	}
	if txn.UserID == "" {
		return NewPermanentError("transaction event has no user_id", ErrInvalidEvent)
	}
	if verr := validation.ValidateStruct(&txn); verr != nil {
		return NewPermanentError("validate transaction event", fmt.Errorf("%w: %w", ErrInvalidEvent, verr))
	}

	ctx := logging.ContextWithCorrelationID(msg.Context(), middleware.MessageCorrelationID(msg))
	ctx = logging.ContextWithUserID(ctx, txn.UserID)
	log := logging.CtxWith(logging.ContextWithLogger(ctx, p.logger)).Str("transaction_id", txn.ID).Logger()

	dedupKey := txn.UserID + ":" + txn.ID
	if p.seen.Contains(dedupKey) {
		metrics.RecordDuplicateSkipped()
		log.Debug().Msg("duplicate transaction skipped")
		return nil
	}

	analysis, err := p.store.GetAnalysis(ctx, txn.UserID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		analysis = models.NewUserAnalysis(txn.UserID)
	case err != nil:
		return fmt.Errorf("load analysis: %w", err)
	}

	expected := analysis.Version
	p.agg.Ingest(&txn, analysis)
	if err := p.store.SaveAnalysis(ctx, analysis, expected); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}

	p.seen.Add(dedupKey, struct{}{})
	metrics.RecordTransactionIngested(txn.TasteCategory, time.Since(start))
	log.Debug().
		Str("category", txn.TasteCategory).
		Int64("version", analysis.Version).
		Msg("transaction ingested")
	return nil
}
