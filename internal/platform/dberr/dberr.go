// Copyright (c) 2026 Max Ludden. All rights reserved.

// Package dberr provides a bridge between low-level document store errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maxludden/supergene/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried document doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a driver error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type. The action string is folded into the internal cause for logging.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// 2. Unique index violations (E11000) become Conflicts
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("A record with this chapter number already exists")
	}

	// 3. Unknown driver errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("mongo: failed to %s: %w", action, err))
}

// IsConflict reports whether err maps to a unique-constraint violation.
func IsConflict(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "CONFLICT"
}
