// Copyright (c) 2026 Max Ludden. All rights reserved.

package chapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/maxludden/supergene/internal/platform/validate"
	"github.com/maxludden/supergene/pkg/slug"
)

const (
	FieldNumber = "number"
	FieldBook   = "book"
	FieldTitle  = "title"
	FieldURL    = "url"
	FieldTags   = "tags"
	FieldStatus = "status"
	FieldRange  = "range"
)

// # Service Layer

// Service orchestrates the business logic for chapter records.
//
// It owns validation and derivation (slug, filename, timestamps, default
// status) so that every document reaching the [Repository] is already
// well-formed. The repository stays a thin translation layer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Chapter Writes

/*
CreateChapter validates, derives, and persists a new chapter.

Description: Applies the field constraints from the archive's schema —
required title, non-negative unique number, book within range, well-formed
URL — then fills in the derived fields before handing the document to the
store. A duplicate number surfaces as a CONFLICT error from the unique index.

Parameters:
  - context: context.Context
  - chapter: *Chapter (the new chapter data)

Returns:
  - error: Validation, conflict, or persistence errors
*/
func (service *Service) CreateChapter(context context.Context, chapter *Chapter) error {
	if err := service.validateChapter(chapter); err != nil {
		return err
	}

	service.prepare(chapter)

	// Storage persistence
	if err := service.repo.Create(context, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_created",
		slog.Int("number", chapter.Number),
		slog.Int("book", chapter.Book),
		slog.String("title", chapter.Title),
	)

	return nil
}

/*
UpsertChapter validates the chapter and inserts it, or replaces the existing
record with the same number.

Description: The re-fetch path — a chapter that already exists is overwritten
with the newly fetched metadata while keeping its natural key.
*/
func (service *Service) UpsertChapter(context context.Context, chapter *Chapter) error {
	if err := service.validateChapter(chapter); err != nil {
		return err
	}

	service.prepare(chapter)

	if err := service.repo.Upsert(context, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_upserted",
		slog.Int("number", chapter.Number),
		slog.Int("book", chapter.Book),
	)

	return nil
}

/*
UpdateChapter validates and overwrites the stored record for the chapter's
number.

Returns:
  - error: apperr.NotFound when the number does not exist
*/
func (service *Service) UpdateChapter(context context.Context, chapter *Chapter) error {
	if err := service.validateChapter(chapter); err != nil {
		return err
	}

	service.prepare(chapter)

	if err := service.repo.Update(context, chapter); err != nil {
		return err
	}

	service.logger.Info("chapter_updated", slog.Int("number", chapter.Number))

	return nil
}

/*
DeleteChapter removes a chapter from the archive.

Description: Hard removal by explicit operator action — the only way a
chapter leaves the archive. There is no automatic eviction or expiry.
*/
func (service *Service) DeleteChapter(context context.Context, number int) error {
	if number < 0 {
		return validate.RequiredError(FieldNumber, "Chapter number cannot be negative")
	}

	if err := service.repo.Delete(context, number); err != nil {
		return err
	}

	service.logger.Info("chapter_deleted", slog.Int("number", number))

	return nil
}

// # Chapter Reads

/*
GetChapter retrieves a single chapter by its ordinal number.

Description: An absent number yields (nil, nil) — an empty result, not an
error. Callers that need a hard failure (e.g. the HTTP GET handler) translate
the nil themselves.
*/
func (service *Service) GetChapter(context context.Context, number int) (*Chapter, error) {
	if number < 0 {
		return nil, validate.RequiredError(FieldNumber, "Chapter number cannot be negative")
	}

	return service.repo.FindByNumber(context, number)
}

/*
GetRange retrieves all chapters with from <= number <= to.

Parameters:
  - context: context.Context
  - from: int (inclusive, non-negative)
  - to: int (inclusive, >= from)

Returns:
  - []*Chapter: Chapters ordered by number ascending; empty when none exist
  - error: Validation or storage errors
*/
func (service *Service) GetRange(context context.Context, from, to int) ([]*Chapter, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldRange, from < 0 || to < 0, "Range bounds cannot be negative")
	validator.Custom(FieldRange, from > to, "Range start must not exceed range end")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.FindRange(context, from, to)
}

/*
ListChapters retrieves a filtered, paginated page of chapters.

Returns:
  - []*Chapter: One page of chapters
  - int: Total matching chapters for pagination metadata
  - error: Storage or execution errors
*/
func (service *Service) ListChapters(context context.Context, filter ListFilter, limit, offset int) ([]*Chapter, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
CountChapters returns the total number of records in the archive.
*/
func (service *Service) CountChapters(context context.Context) (int64, error) {
	return service.repo.Count(context)
}

// # Internal Helpers

// validateChapter applies the schema-level field constraints before any write.
func (service *Service) validateChapter(chapter *Chapter) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, chapter.Title)
	validator.MaxLen(FieldTitle, chapter.Title, MaxTitleLen)
	validator.Custom(FieldNumber, chapter.Number < 0, "Chapter number cannot be negative")
	validator.Range(FieldBook, chapter.Book, FirstBook, LastBook)
	validator.URL(FieldURL, chapter.URL)

	for _, tag := range chapter.Tags {
		validator.MaxLen(FieldTags, tag, MaxTagLen)
	}

	if chapter.Status != "" {
		validator.Custom(FieldStatus, !chapter.Status.Valid(), "Unknown processing status")
	}

	return validator.Err()
}

// prepare fills in the derived fields on a validated chapter.
func (service *Service) prepare(chapter *Chapter) {
	now := time.Now().UTC()

	if chapter.Status == "" {
		chapter.Status = StatusFetched
	}
	if chapter.Slug == "" {
		chapter.Slug = slug.From(chapter.Title)
	}
	chapter.Filename = CanonicalFilename(chapter.Number)

	if chapter.CreatedAt.IsZero() {
		chapter.CreatedAt = now
	}
	chapter.UpdatedAt = now
}
