// Copyright (c) 2026 Max Ludden. All rights reserved.

/*
Package mongodb provides a managed MongoDB client for the supergene archive.

It is part of the Infrastructure layer. It manages the physical connection
(the driver's internal pool) and the startup-time index bootstrap, and hands
a ready [*mongo.Database] to the repository constructors.

Core Responsibilities:

  - Connectivity: URI parsing, connect, and fail-fast ping.
  - Bootstrap: Idempotent creation of the unique chapter-number index.
  - Lifecycle: Clean disconnect on shutdown.
*/
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Opinionated timeouts for the archive workload.
const (
	// connectTimeout is the maximum time allowed to establish the initial connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// indexTimeout bounds the startup index bootstrap.
	indexTimeout = 10 * time.Second
)

// CollectionChapters is the single collection managed by this module.
const CollectionChapters = "chapters"

// Client wraps the driver client and the target database handle.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect creates and validates a new MongoDB client.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// connection string.
//   - database: Target database name.
//   - logger: Structured logger for connection events.
func Connect(ctx context.Context, uri, database string, logger *slog.Logger) (*Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to connect: %w", err)
	}

	client := &Client{
		client:   mongoClient,
		database: mongoClient.Database(database),
	}

	// Validate that we can actually reach the database.
	if err := client.Ping(ctx); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongodb client connected",
		slog.String("database", database),
	)

	return client, nil
}

// Database returns the handle for the configured database.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Ping verifies that the MongoDB deployment is reachable.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	return nil
}

// Disconnect closes the underlying driver connections.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the chapter collection relies on.
//
// # Idempotency
//
// CreateMany is a no-op for indexes that already exist with the same
// definition, so this is safe to run on every startup. It occupies the same
// slot in the boot sequence a SQL migration runner would.
func (c *Client) EnsureIndexes(ctx context.Context, logger *slog.Logger) error {
	indexCtx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	collection := c.database.Collection(CollectionChapters)

	models := []mongo.IndexModel{
		{
			// number is the natural key: unique across all chapter records.
			Keys:    bson.D{{Key: "number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_number"),
		},
		{
			// book + status back the filtered list queries.
			Keys:    bson.D{{Key: "book", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_book_status"),
		},
	}

	names, err := collection.Indexes().CreateMany(indexCtx, models)
	if err != nil {
		return fmt.Errorf("mongodb: failed to ensure indexes: %w", err)
	}

	logger.Info("mongodb_indexes_ensured",
		slog.String("collection", CollectionChapters),
		slog.Any("indexes", names),
	)

	return nil
}
