// Copyright (c) 2026 Max Ludden. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxludden/supergene/internal/platform/constants"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sg version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.AppName, constants.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
