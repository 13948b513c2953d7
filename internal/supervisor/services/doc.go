// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package services provides suture.Service wrappers for tastecore components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve method and implements fmt.Stringer for the supervisor event log.

PipelineService:
  - Runs *pipeline.Pipeline until the context is canceled
  - Closes the router and pub/subs on every exit
  - Terminates the tree on router failure

HTTPServerService:
  - Wraps *http.Server with graceful shutdown
  - NewMetricsServer builds the Prometheus /metrics server it usually runs
*/
package services
