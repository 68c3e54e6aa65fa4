// Copyright (c) 2026 Max Ludden. All rights reserved.

/*
Package chapter provides the domain model and data access for webnovel
chapter records.

It manages the metadata of each installment of the source novel: its ordinal
number, owning book, title, source URL, parsed bodies, and processing state.

# Core Responsibility

  - Identity: [Chapter.Number] is the natural key, unique across the archive.
  - Lifecycle: a chapter is created when discovered, mutated when re-fetched
    or edited, and removed only by explicit operator action.
  - Truth: the document store is the single source of truth; the module holds
    no in-process cache.
*/
package chapter

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Field Constraints

const (
	// FirstBook and LastBook bound the book ordinal for the source novel.
	FirstBook = 1
	LastBook  = 10

	// MaxTitleLen caps the chapter title length.
	MaxTitleLen = 500

	// MaxTagLen caps the length of a single tag.
	MaxTagLen = 50
)

// # Processing State

// Status tracks how far a chapter has moved through the archive pipeline.
type Status string

const (
	// StatusFetched means the raw chapter has been stored but not parsed.
	StatusFetched Status = "fetched"

	// StatusParsed means the text/html/markdown bodies have been generated.
	StatusParsed Status = "parsed"

	// StatusExported means the chapter has been written to the books tree.
	StatusExported Status = "exported"
)

// Valid reports whether s is one of the known processing states.
func (s Status) Valid() bool {
	switch s {
	case StatusFetched, StatusParsed, StatusExported:
		return true
	}
	return false
}

// # Chapter Document

// Chapter represents a single installment of the source webnovel.
//
// The bson tags define the document layout in the "chapters" collection;
// the json tags define the API wire shape. Bodies are omitted from JSON
// when empty to keep list responses light.
type Chapter struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Number   int                `bson:"number" json:"number"`
	Book     int                `bson:"book" json:"book"`
	Section  int                `bson:"section,omitempty" json:"section,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Slug     string             `bson:"slug" json:"slug"`
	Filename string             `bson:"filename" json:"filename"`
	URL      string             `bson:"url,omitempty" json:"url,omitempty"`
	Tags     []string           `bson:"tags,omitempty" json:"tags,omitempty"`

	// Bodies in the formats the parsing pipeline produces.
	Text         string `bson:"text,omitempty" json:"text,omitempty"`
	HTML         string `bson:"html,omitempty" json:"html,omitempty"`
	Markdown     string `bson:"markdown,omitempty" json:"markdown,omitempty"`
	UnparsedText string `bson:"unparsed_text,omitempty" json:"unparsed_text,omitempty"`

	Status    Status    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CanonicalFilename returns the zero-padded file stem for a chapter number,
// e.g. "chapter-0042". All per-format export files share this stem.
func CanonicalFilename(number int) string {
	return fmt.Sprintf("chapter-%04d", number)
}

// # Filter Criteria

// ListFilter holds parameters for filtering the chapter list.
type ListFilter struct {
	Book    int    // FirstBook..LastBook; 0 means any book
	Status  Status // "" means any state
	SortDir string // "asc" (default) or "desc" by chapter number
}
