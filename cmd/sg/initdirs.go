// Copyright (c) 2026 Max Ludden. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxludden/supergene/internal/export"
	"github.com/maxludden/supergene/internal/platform/config"
)

var initDirsCmd = &cobra.Command{
	Use:   "init-dirs",
	Short: "Create the on-disk books tree",
	Long:  "Create books/bookNN/{csv,html,json,md,text} for every book of the novel",
	RunE:  runInitDirs,
}

func init() {
	rootCmd.AddCommand(initDirsCmd)
}

func runInitDirs(cmd *cobra.Command, args []string) error {
	// No store connection needed; this touches the filesystem only.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	exporter := export.New(cfg.BooksDir)
	if err := exporter.EnsureAll(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "books tree ready under %s\n", cfg.BooksDir)
	return nil
}
