// Copyright (c) 2026 Max Ludden. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxludden/supergene/internal/render"
)

var getCmd = &cobra.Command{
	Use:   "get <number>",
	Short: "Fetch a chapter and render it to the terminal",
	Long:  "Fetch a chapter by its ordinal number and render it in text or markdown mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

type getArgs struct {
	mode  string
	width int
}

var getFlags getArgs

func init() {
	getCmd.Flags().StringVarP(&getFlags.mode, "mode", "m", "md", "render mode: text or md")
	getCmd.Flags().IntVarP(&getFlags.width, "width", "w", 0, "render width (0 = default)")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	number, err := parseNumberArg(args[0])
	if err != nil {
		return err
	}

	mode, err := render.ParseMode(getFlags.mode)
	if err != nil {
		return err
	}

	environment, closer, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	record, err := environment.service.GetChapter(cmd.Context(), number)
	if err != nil {
		return fmt.Errorf("failed to fetch chapter %d: %w", number, err)
	}
	if record == nil {
		return fmt.Errorf("chapter %d is not in the archive", number)
	}

	output, err := render.Chapter(record, mode, getFlags.width)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
