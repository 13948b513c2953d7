// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package supervisor runs the long-lived parts of tastecore under a suture v4
supervisor tree.

	Tree ("tastecore")
	├── ingest-layer
	│   └── PipelineService
	└── ops-layer
	    └── HTTPServerService (metrics)

Each layer restarts its own services with suture's failure threshold and
backoff. Supervisor events are logged through sutureslog, bridged to the
global zerolog logger by logging.NewSlogLogger.

# Usage

	tree := supervisor.NewTree(logging.NewSlogLogger(logging.WithComponent("supervisor")), supervisor.DefaultTreeConfig())
	tree.AddIngestService(services.NewPipelineService(p))
	tree.AddOpsService(services.NewHTTPServerService(services.NewMetricsServer(addr, "/metrics"), 10*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

See the services subpackage for the wrappers.
*/
package supervisor
