// Copyright (c) 2026 Max Ludden. All rights reserved.

/*
Package export writes chapter records to the on-disk books tree.

# Layout

Each book owns a directory with one subdirectory per file format:

	books/
	  book01/
	    csv/   chapter-0001.csv
	    html/  chapter-0001.html
	    json/  chapter-0001.json
	    md/    chapter-0001.md
	    text/  chapter-0001.txt

The JSON file carries the full metadata document; csv a single metadata row;
html, md, and text carry the corresponding body only.
*/
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/maxludden/supergene/internal/chapter"
)

// Format identifies one of the supported export file formats.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatText     Format = "text"
)

// AllFormats lists every supported format in directory order.
var AllFormats = []Format{FormatCSV, FormatHTML, FormatJSON, FormatMarkdown, FormatText}

// extensions maps a format to the file extension it writes.
var extensions = map[Format]string{
	FormatCSV:      ".csv",
	FormatHTML:     ".html",
	FormatJSON:     ".json",
	FormatMarkdown: ".md",
	FormatText:     ".txt",
}

// dirMode matches the permissions the archive has always used for the tree.
const dirMode = 0o755

// Valid reports whether f is a known export format.
func (f Format) Valid() bool {
	_, ok := extensions[f]
	return ok
}

// ParseFormat converts a user-supplied string into a [Format].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("export: unknown format %q", s)
	}
	return f, nil
}

// # Exporter

// Exporter owns the root of the books tree and writes chapter files into it.
type Exporter struct {
	root string
}

// New constructs an [Exporter] rooted at the given books directory.
func New(root string) *Exporter {
	return &Exporter{root: root}
}

// BookDir returns the directory for a book ordinal, e.g. "books/book03".
func (e *Exporter) BookDir(book int) string {
	return filepath.Join(e.root, fmt.Sprintf("book%02d", book))
}

// Path returns the export file path for a chapter in the given format.
func (e *Exporter) Path(c *chapter.Chapter, format Format) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("export: unknown format %q", format)
	}

	stem := c.Filename
	if stem == "" {
		stem = chapter.CanonicalFilename(c.Number)
	}

	return filepath.Join(e.BookDir(c.Book), string(format), stem+extensions[format]), nil
}

// EnsureTree creates the format subdirectories for a book, including any
// missing parents. Existing directories are left untouched.
func (e *Exporter) EnsureTree(book int) error {
	for _, format := range AllFormats {
		dir := filepath.Join(e.BookDir(book), string(format))
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("export: failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureAll creates the full books tree for every book of the novel.
func (e *Exporter) EnsureAll() error {
	for book := chapter.FirstBook; book <= chapter.LastBook; book++ {
		if err := e.EnsureTree(book); err != nil {
			return err
		}
	}
	return nil
}

// Export writes the chapter in each requested format. With no formats given
// it writes all of them.
func (e *Exporter) Export(c *chapter.Chapter, formats ...Format) error {
	if len(formats) == 0 {
		formats = AllFormats
	}

	if err := e.EnsureTree(c.Book); err != nil {
		return err
	}

	for _, format := range formats {
		path, err := e.Path(c, format)
		if err != nil {
			return err
		}

		if err := e.write(c, format, path); err != nil {
			return fmt.Errorf("export: failed to write %s: %w", path, err)
		}
	}

	return nil
}

// write renders one format to its target file.
func (e *Exporter) write(c *chapter.Chapter, format Format, path string) error {
	switch format {
	case FormatJSON:
		return writeJSON(c, path)
	case FormatCSV:
		return writeCSV(c, path)
	case FormatHTML:
		return os.WriteFile(path, []byte(c.HTML), 0o644)
	case FormatMarkdown:
		return os.WriteFile(path, []byte(c.Markdown), 0o644)
	case FormatText:
		return os.WriteFile(path, []byte(c.Text), 0o644)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// writeJSON marshals the full chapter document, indented for hand inspection.
func writeJSON(c *chapter.Chapter, path string) error {
	payload, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// csvHeader is the column order for metadata rows.
var csvHeader = []string{"number", "book", "section", "title", "slug", "filename", "url", "tags", "status"}

// writeCSV writes a single metadata row (plus header) for the chapter.
func writeCSV(c *chapter.Chapter, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	row := []string{
		strconv.Itoa(c.Number),
		strconv.Itoa(c.Book),
		strconv.Itoa(c.Section),
		c.Title,
		c.Slug,
		c.Filename,
		c.URL,
		strings.Join(c.Tags, ";"),
		string(c.Status),
	}

	if err := writer.WriteAll([][]string{csvHeader, row}); err != nil {
		return err
	}

	return writer.Error()
}
