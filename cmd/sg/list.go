// Copyright (c) 2026 Max Ludden. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maxludden/supergene/internal/chapter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List chapters in the archive",
	Long:  "List chapters in the archive, optionally filtered by book or status",
	RunE:  runList,
}

type listArgs struct {
	book   int
	status string
	limit  int
	page   int
	desc   bool
}

var listFlags listArgs

func init() {
	listCmd.Flags().IntVarP(&listFlags.book, "book", "b", 0, "filter by book (1-10, 0 = all)")
	listCmd.Flags().StringVarP(&listFlags.status, "status", "s", "", "filter by status: fetched, parsed, exported")
	listCmd.Flags().IntVarP(&listFlags.limit, "limit", "l", 50, "chapters per page")
	listCmd.Flags().IntVarP(&listFlags.page, "page", "p", 1, "page number (1-indexed)")
	listCmd.Flags().BoolVar(&listFlags.desc, "desc", false, "sort by number descending")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	environment, closer, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	filter := chapter.ListFilter{
		Book:   listFlags.book,
		Status: chapter.Status(listFlags.status),
	}
	if listFlags.desc {
		filter.SortDir = "desc"
	}

	offset := 0
	if listFlags.page > 1 {
		offset = (listFlags.page - 1) * listFlags.limit
	}

	chapters, total, err := environment.service.ListChapters(cmd.Context(), filter, listFlags.limit, offset)
	if err != nil {
		return fmt.Errorf("failed to list chapters: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, record := range chapters {
		fmt.Fprintf(out, "%6d  book %02d  %-10s  %s\n", record.Number, record.Book, record.Status, record.Title)
	}
	fmt.Fprintf(out, "\n%d of %d chapters (page %d)\n", len(chapters), total, listFlags.page)

	return nil
}

// parseNumberArg parses a positional chapter-number argument.
func parseNumberArg(raw string) (int, error) {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("chapter number must be an integer, got %q", raw)
	}
	if number < 0 {
		return 0, fmt.Errorf("chapter number cannot be negative")
	}
	return number, nil
}
