// Copyright (c) 2026 Max Ludden. All rights reserved.

package chapter

import "context"

// # Chapter Data Access

// Repository defines the data access contract for chapter records.
//
// # Not-Found Semantics
//
// Reads treat an absent chapter as a normal empty result: [Repository.FindByNumber]
// returns (nil, nil) and [Repository.FindRange] returns an empty slice.
// Mutations of a chapter that does not exist ([Repository.Update],
// [Repository.Delete]) return apperr.NotFound — an explicit write against a
// missing record is a caller error, a read is not.
type Repository interface {

	/*
		Create persists a new chapter to the store.

		Parameters:
		  - context: context.Context
		  - chapter: *Chapter

		Returns:
		  - error: apperr.Conflict when the chapter number is already taken
	*/
	Create(context context.Context, chapter *Chapter) error

	/*
		Upsert inserts the chapter, or fully replaces the existing document
		with the same number.

		Parameters:
		  - context: context.Context
		  - chapter: *Chapter

		Returns:
		  - error: Storage failure
	*/
	Upsert(context context.Context, chapter *Chapter) error

	/*
		FindByNumber returns the chapter with the given ordinal number.

		Parameters:
		  - context: context.Context
		  - number: int (natural key, non-negative)

		Returns:
		  - *Chapter: The hydrated document, or nil when absent
		  - error: Storage failure only — never for an empty result
	*/
	FindByNumber(context context.Context, number int) (*Chapter, error)

	/*
		FindRange returns all chapters with from <= number <= to, ordered by
		number ascending.

		Parameters:
		  - context: context.Context
		  - from: int (inclusive lower bound)
		  - to: int (inclusive upper bound)

		Returns:
		  - []*Chapter: Matching chapters; empty when none match
		  - error: Storage failure
	*/
	FindRange(context context.Context, from, to int) ([]*Chapter, error)

	/*
		List returns a filtered, paginated page of chapters plus the total
		matching count.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter
		  - limit: int
		  - offset: int

		Returns:
		  - []*Chapter: One page of chapters
		  - int: Total matching chapters
		  - error: Storage failure
	*/
	List(context context.Context, filter ListFilter, limit, offset int) ([]*Chapter, int, error)

	/*
		Update overwrites the stored document for the chapter's number.

		Parameters:
		  - context: context.Context
		  - chapter: *Chapter

		Returns:
		  - error: apperr.NotFound when no document matched
	*/
	Update(context context.Context, chapter *Chapter) error

	/*
		Delete physically removes the chapter with the given number.

		Parameters:
		  - context: context.Context
		  - number: int

		Returns:
		  - error: apperr.NotFound when nothing was deleted
	*/
	Delete(context context.Context, number int) error

	/*
		Count returns the total number of chapter records in the archive.

		Parameters:
		  - context: context.Context

		Returns:
		  - int64: Record count
		  - error: Storage failure
	*/
	Count(context context.Context) (int64, error)
}
