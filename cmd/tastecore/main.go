// Tastecore - Taste Intelligence and Venue Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastecore

// Package main is the tastecore command.
//
// # Commands
//
//	tastecore score -profile user.json|-user id -venues venues.json [-mood chill] [-limit 10] [-format table|json]
//	tastecore ring  -profile user.json|-user id [-format table|json]
//	tastecore serve [-input feed.jsonl|-] [-raw] [-profiles users.json]
//
// A profile file holds one user's declared taste (or raw quiz answers) and
// transaction history:
//
//	{
//	  "user_id": "u1",
//	  "quiz": [{"question_id": 1, "answer_id": "b"}],
//	  "transactions": [{"id": "t1", "amount": "5.25", "timestamp": "2024-05-01T09:00:00Z", ...}],
//	  "raw_transactions": [{"transaction_id": "p1", "user_id": "u1", "amount": "-18.40", ...}]
//	}
//
// serve runs the ingest pipeline and the metrics endpoint under a supervisor
// tree, publishing one JSON transaction per input line, until SIGINT or
// SIGTERM. -profiles seeds declared tastes from a JSON array of profiles.
// With a persistent store, score and ring can then read a user back with
// -user once serve has exited.
//
// # Configuration
//
// Every command accepts -config. Without it, $CONFIG_PATH and config.yaml are
// searched, and environment variables override the file (see package config).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/tastecore/internal/config"
	"github.com/tomtom215/tastecore/internal/logging"
)

const usage = `usage: tastecore <command> [flags]

commands:
  score   rank venues for a user profile
  ring    build the taste ring and profile title for a user profile
  serve   run the ingest pipeline and metrics endpoint

run "tastecore <command> -h" for command flags
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "score":
		err = runScore(ctx, args[1:], stdin, stdout, stderr)
	case "ring":
		err = runRing(ctx, args[1:], stdin, stdout, stderr)
	case "serve":
		err = runServe(ctx, args[1:], stdin, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "tastecore %s: %v\n", args[0], err)
		return 1
	}
}

// errUsage marks flag errors already reported by the flag set.
var errUsage = errors.New("usage error")

// newFlagSet returns a flag set that reports errors to stderr and registers
// the shared -config flag.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	return fs, configPath
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		return errUsage
	}
	return nil
}

// loadConfig loads configuration and initializes the global logger on stderr.
func loadConfig(path string, stderr io.Writer) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg.Logging.Output = stderr
	logging.Init(cfg.Logging)
	return cfg, nil
}
