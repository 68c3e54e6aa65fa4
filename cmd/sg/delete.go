// Copyright (c) 2026 Max Ludden. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <number>",
	Short: "Delete a chapter from the archive",
	Long:  "Physically remove a chapter record; the archive never deletes on its own",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	number, err := parseNumberArg(args[0])
	if err != nil {
		return err
	}

	if !deleteYes {
		fmt.Fprintf(cmd.OutOrStdout(), "delete chapter %d? [y/N] ", number)
		var answer string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" {
			fmt.Fprintln(cmd.OutOrStdout(), "aborted")
			return nil
		}
	}

	environment, closer, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	if err := environment.service.DeleteChapter(cmd.Context(), number); err != nil {
		return fmt.Errorf("failed to delete chapter %d: %w", number, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted chapter %d\n", number)
	return nil
}
