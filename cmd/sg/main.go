// Copyright (c) 2026 Max Ludden. All rights reserved.

// Command sg is the operator CLI for the supergene chapter archive.
//
// It speaks directly to the document store (no HTTP hop) and covers the
// day-to-day archive chores: inspecting chapters, exporting them to the
// books tree, and pruning records.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxludden/supergene/internal/chapter"
	"github.com/maxludden/supergene/internal/export"
	"github.com/maxludden/supergene/internal/platform/config"
	"github.com/maxludden/supergene/internal/platform/mongodb"
)

var rootCmd = &cobra.Command{
	Use:           "sg",
	Short:         "Operator tooling for the supergene chapter archive",
	Long:          "Operator tooling for the supergene chapter archive",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// env bundles the wired dependencies a subcommand needs.
type env struct {
	cfg      *config.Config
	store    *mongodb.Client
	service  *chapter.Service
	exporter *export.Exporter
}

// connect loads configuration and wires the service against the live store.
// The returned closer must be deferred by the caller.
func connect(ctx context.Context) (*env, func(), error) {
	// CLI output belongs to the command itself; keep the logger quiet unless
	// something goes wrong.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, logger)
	if err != nil {
		return nil, nil, err
	}

	closer := func() {
		_ = store.Disconnect(context.Background())
	}

	repository := chapter.NewMongoRepository(store.Database())

	return &env{
		cfg:      cfg,
		store:    store,
		service:  chapter.NewService(repository, logger),
		exporter: export.New(cfg.BooksDir),
	}, closer, nil
}
