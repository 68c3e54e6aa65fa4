// Copyright (c) 2026 Max Ludden. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/maxludden/supergene/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Number retrieves a named URL parameter and parses it as a non-negative
chapter number.

Returns:
  - int: The parsed number
  - error: apperr validation error when the parameter is missing, non-numeric,
    or negative
*/
func Number(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}

	if n < 0 {
		return 0, validate.RequiredError(name, "Must be a non-negative integer")
	}

	return n, nil
}

/*
QueryInt parses an optional integer query parameter.

Returns:
  - int: The parsed value, or the fallback when the parameter is absent or malformed
  - bool: Whether the parameter was present and valid
*/
func QueryInt(request *http.Request, name string) (int, bool) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return n, true
}
