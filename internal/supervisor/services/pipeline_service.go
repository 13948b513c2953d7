// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"
)

// PipelineRunner is the lifecycle of *pipeline.Pipeline.
type PipelineRunner interface {
	Run(ctx context.Context) error
	Close() error
}

// PipelineService runs the ingest pipeline as a supervised service.
//
// A watermill router cannot be started twice, so the service never asks
// suture for a restart: a router failure terminates the whole tree and the
// serve command exits with the error.
type PipelineService struct {
	runner PipelineRunner
	name   string
}

// NewPipelineService wraps runner.
func NewPipelineService(runner PipelineRunner) *PipelineService {
	return &PipelineService{runner: runner, name: "ingest-pipeline"}
}

// Serve implements suture.Service.
func (p *PipelineService) Serve(ctx context.Context) error {
	runErr := p.runner.Run(ctx)
	closeErr := p.runner.Close()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if runErr != nil {
		return fmt.Errorf("pipeline stopped: %v: %w", runErr, suture.ErrTerminateSupervisorTree)
	}
	if closeErr != nil {
		return fmt.Errorf("pipeline close: %v: %w", closeErr, suture.ErrTerminateSupervisorTree)
	}
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer for suture's event log.
func (p *PipelineService) String() string {
	return p.name
}
