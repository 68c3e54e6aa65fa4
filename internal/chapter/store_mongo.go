// Copyright (c) 2026 Max Ludden. All rights reserved.

/*
MongoDB implementation of the chapter [Repository].

It relies on the collection's unique index on 'number' (created at startup by
the mongodb platform package) to enforce the natural-key invariant, and maps
driver errors to application errors at this boundary so callers never see
raw driver types.
*/
package chapter

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maxludden/supergene/internal/platform/apperr"
	"github.com/maxludden/supergene/internal/platform/dberr"
	"github.com/maxludden/supergene/internal/platform/mongodb"
)

// # MongoDB Repository

// mongoRepository implements the [Repository] interface using the official driver.
type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository constructs a MongoDB backed chapter store.
func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{collection: database.Collection(mongodb.CollectionChapters)}
}

// # Writes

/*
Create persists a new chapter document.

Description: The unique index on 'number' rejects duplicates at write time;
the resulting E11000 error surfaces as apperr.Conflict.
*/
func (repository *mongoRepository) Create(context context.Context, chapter *Chapter) error {
	result, err := repository.collection.InsertOne(context, chapter)
	if err != nil {
		return dberr.Wrap(err, "create chapter")
	}

	// Propagate the driver-assigned identity back to the caller.
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		chapter.ID = oid
	}

	return nil
}

/*
Upsert inserts the chapter or replaces the existing document keyed on number.

Description: ReplaceOne with upsert matches on the natural key, so re-fetched
chapters overwrite their previous metadata in a single round-trip.
*/
func (repository *mongoRepository) Upsert(context context.Context, chapter *Chapter) error {
	filter := bson.M{"number": chapter.Number}

	// The _id is immutable; strip it from the replacement so a replace of an
	// existing document does not attempt to rewrite it.
	replacement := *chapter
	replacement.ID = primitive.NilObjectID

	_, err := repository.collection.ReplaceOne(context, filter, &replacement, options.Replace().SetUpsert(true))
	if err != nil {
		return dberr.Wrap(err, "upsert chapter")
	}

	return nil
}

/*
Update overwrites the mutable fields of the stored document for the
chapter's number.

Returns:
  - error: apperr.NotFound when no document matched the number.
*/
func (repository *mongoRepository) Update(context context.Context, chapter *Chapter) error {
	filter := bson.M{"number": chapter.Number}

	update := bson.M{"$set": bson.M{
		"book":          chapter.Book,
		"section":       chapter.Section,
		"title":         chapter.Title,
		"slug":          chapter.Slug,
		"filename":      chapter.Filename,
		"url":           chapter.URL,
		"tags":          chapter.Tags,
		"text":          chapter.Text,
		"html":          chapter.HTML,
		"markdown":      chapter.Markdown,
		"unparsed_text": chapter.UnparsedText,
		"status":        chapter.Status,
		"updated_at":    chapter.UpdatedAt,
	}}

	result, err := repository.collection.UpdateOne(context, filter, update)
	if err != nil {
		return dberr.Wrap(err, "update chapter")
	}

	// Verify a document actually matched
	if result.MatchedCount == 0 {
		return apperr.NotFound("Chapter")
	}

	return nil
}

/*
Delete physically removes the chapter with the given number.

Description: Hard delete — a removed chapter is gone; a subsequent
FindByNumber returns an empty result.
*/
func (repository *mongoRepository) Delete(context context.Context, number int) error {
	result, err := repository.collection.DeleteOne(context, bson.M{"number": number})
	if err != nil {
		return dberr.Wrap(err, "delete chapter")
	}

	// Affected document verification
	if result.DeletedCount == 0 {
		return apperr.NotFound("Chapter")
	}

	return nil
}

// # Reads

/*
FindByNumber returns the chapter with the given ordinal number.

Description: An absent number is a normal empty result, not an error — the
method returns (nil, nil) so callers can distinguish "no chapter" from a
storage failure.
*/
func (repository *mongoRepository) FindByNumber(context context.Context, number int) (*Chapter, error) {
	var chapter Chapter

	err := repository.collection.FindOne(context, bson.M{"number": number}).Decode(&chapter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "find chapter by number")
	}

	return &chapter, nil
}

/*
FindRange returns all chapters with from <= number <= to, ordered by number
ascending.
*/
func (repository *mongoRepository) FindRange(context context.Context, from, to int) ([]*Chapter, error) {
	filter := bson.M{"number": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})

	cursor, err := repository.collection.Find(context, filter, opts)
	if err != nil {
		return nil, dberr.Wrap(err, "find chapter range")
	}
	defer cursor.Close(context)

	// Document hydration
	chapters := []*Chapter{}
	if err := cursor.All(context, &chapters); err != nil {
		return nil, dberr.Wrap(err, "decode chapter range")
	}

	return chapters, nil
}

/*
List returns a filtered, paginated page of chapters plus the total matching
count.

Description: Runs a CountDocuments alongside the page query with the same
filter; for the archive's document counts this is cheaper than maintaining
a materialized counter.
*/
func (repository *mongoRepository) List(context context.Context, filter ListFilter, limit, offset int) ([]*Chapter, int, error) {

	// Filter construction
	query := bson.M{}
	if filter.Book != 0 {
		query["book"] = filter.Book
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	// Ordering and pagination limits
	sortDir := 1
	if filter.SortDir == "desc" {
		sortDir = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "number", Value: sortDir}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := repository.collection.Find(context, query, opts)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list chapters")
	}
	defer cursor.Close(context)

	chapters := []*Chapter{}
	if err := cursor.All(context, &chapters); err != nil {
		return nil, 0, dberr.Wrap(err, "decode chapter list")
	}

	// Total count for pagination metadata
	total, err := repository.collection.CountDocuments(context, query)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "count chapters")
	}

	return chapters, int(total), nil
}

/*
Count returns the total number of chapter records in the archive.
*/
func (repository *mongoRepository) Count(context context.Context) (int64, error) {
	total, err := repository.collection.EstimatedDocumentCount(context)
	if err != nil {
		return 0, dberr.Wrap(err, "count chapters")
	}
	return total, nil
}
