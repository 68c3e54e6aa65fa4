// Copyright (c) 2026 Max Ludden. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxludden/supergene/internal/chapter"
	"github.com/maxludden/supergene/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export chapters to the books tree",
	Long:  "Export one chapter or a range of chapters to the on-disk books tree",
	RunE:  runExport,
}

type exportArgs struct {
	number  int
	from    int
	to      int
	formats []string
}

var exportFlags exportArgs

func init() {
	exportCmd.Flags().IntVarP(&exportFlags.number, "number", "n", -1, "export a single chapter")
	exportCmd.Flags().IntVar(&exportFlags.from, "from", -1, "range start (inclusive)")
	exportCmd.Flags().IntVar(&exportFlags.to, "to", -1, "range end (inclusive)")
	exportCmd.Flags().StringSliceVarP(&exportFlags.formats, "format", "f", nil, "formats to write (csv, html, json, md, text); default all")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	formats, err := parseFormats(exportFlags.formats)
	if err != nil {
		return err
	}

	environment, closer, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	// Single chapter mode
	if exportFlags.number >= 0 {
		return exportOne(cmd, environment, exportFlags.number, formats)
	}

	// Range mode
	if exportFlags.from < 0 || exportFlags.to < 0 {
		return fmt.Errorf("either --number or both --from and --to are required")
	}

	exported := 0
	missing := 0

	// Walk the canonical sequence so unpublished gaps are never requested.
	seq := chapter.NewSequence(exportFlags.from, exportFlags.to)
	for seq.Next() {
		record, err := environment.service.GetChapter(cmd.Context(), seq.Number())
		if err != nil {
			return fmt.Errorf("failed to fetch chapter %d: %w", seq.Number(), err)
		}
		if record == nil {
			missing++
			continue
		}

		if err := environment.exporter.Export(record, formats...); err != nil {
			return err
		}
		exported++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d chapters (%d not in archive)\n", exported, missing)
	return nil
}

// exportOne writes a single chapter and reports its paths.
func exportOne(cmd *cobra.Command, environment *env, number int, formats []export.Format) error {
	record, err := environment.service.GetChapter(cmd.Context(), number)
	if err != nil {
		return fmt.Errorf("failed to fetch chapter %d: %w", number, err)
	}
	if record == nil {
		return fmt.Errorf("chapter %d is not in the archive", number)
	}

	if err := environment.exporter.Export(record, formats...); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported chapter %d to %s\n", number, environment.exporter.BookDir(record.Book))
	return nil
}

// parseFormats converts the --format flag values into export formats.
func parseFormats(raw []string) ([]export.Format, error) {
	formats := make([]export.Format, 0, len(raw))
	for _, value := range raw {
		format, err := export.ParseFormat(value)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}
