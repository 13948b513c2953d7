// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package pipeline streams normalized transactions into per-user analysis
snapshots over a Watermill router.

Each event carries one models.Transaction encoded as JSON. The ingest
handler validates it, skips transactions it has already applied, loads the
user's snapshot, folds the transaction in with the aggregator and saves the
result with an optimistic version check.

# Failure Handling

Malformed or invalid events are permanent failures and go straight to the
poison topic. Store errors, including version conflicts from a concurrent
writer, are retried with exponential backoff; the handler reloads the
snapshot on every attempt. Events that exhaust their retries are also
routed to the poison topic.

# Usage

	p, err := pipeline.New(pipeline.DefaultConfig(), agg, snapshots, logger)
	if err != nil {
	    return err
	}
	go func() { _ = p.Run(ctx) }()
	<-p.Running()

	if err := p.Publish(ctx, txns...); err != nil {
	    return err
	}
*/
package pipeline
