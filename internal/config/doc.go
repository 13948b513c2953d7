// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

/*
Package config loads layered configuration for the tastecore binary.

# Configuration Sources

Sources are applied in increasing priority:
  - Built-in defaults from each section's DefaultConfig
  - A YAML file: $CONFIG_PATH, else config.yaml, config.yml or /etc/tastecore/
  - Environment variables

# Sections

	logging    level, format, caller, timestamp
	aggregate  top-merchant and top-cuisine list sizes
	fusion     transaction weighting and confidence saturation
	matching   weight tables, category threshold, caps and reason thresholds
	store      badger snapshot path and options
	pipeline   topics, retry backoff and dedup window
	metrics    Prometheus endpoint
	cache      match score memo

# Environment Variables

Scalar keys can be overridden from the environment:

	LOG_LEVEL=debug
	MATCHING_CATEGORY_THRESHOLD=10
	STORE_PATH=/var/lib/tastecore
	PIPELINE_DEDUP_TTL=12h
	METRICS_ADDRESS=127.0.0.1:9090

Weight tables are set from the YAML file:

	matching:
	  dining:
	    category: 0.30
	    cuisine: 0.25
	    price: 0.15
	    energy: 0.10
	    context: 0.10
	    discovery: 0.10

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	logging.Init(cfg.Logging)
*/
package config
