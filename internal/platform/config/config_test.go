// Copyright (c) 2026 Max Ludden. All rights reserved.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxludden/supergene/internal/platform/config"
)

/*
TestLoad_Defaults verifies the default values with only the required
variables set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "supergene", cfg.MongoDatabase)
	assert.Equal(t, "./books", cfg.BooksDir)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

/*
TestLoad_Overrides verifies that environment variables win over defaults.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DATABASE", "supergene_test")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("BOOKS_DIR", "/srv/books")
	t.Setenv("ALLOWED_ORIGIN", "https://archive.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "supergene_test", cfg.MongoDatabase)
	assert.Equal(t, "9999", cfg.ServerPort)
	assert.Equal(t, "/srv/books", cfg.BooksDir)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://archive.example.com", cfg.CORSOrigin())
}
