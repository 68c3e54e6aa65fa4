// Copyright (c) 2026 Max Ludden. All rights reserved.

package chapter_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxludden/supergene/internal/chapter"
)

// # HTTP Fixtures

func newTestRouter() http.Handler {
	service, _ := newTestService()
	return chapter.NewHandler(service).Routes()
}

// do executes a request against the chapters router and returns the recorder.
func do(t *testing.T, router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	request := httptest.NewRequest(method, target, &buf)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

// decode unmarshals the recorded response body into out.
func decode(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func chapterPayload(number int) map[string]interface{} {
	return map[string]interface{}{
		"number": number,
		"book":   1,
		"title":  fmt.Sprintf("Chapter %d", number),
		"url":    fmt.Sprintf("https://example.com/chapter/%d", number),
	}
}

// # Endpoint Tests

/*
TestHandler_CreateChapter verifies POST /chapters for the happy path.
*/
func TestHandler_CreateChapter(t *testing.T) {
	router := newTestRouter()

	recorder := do(t, router, http.MethodPost, "/", chapterPayload(1))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data chapter.Chapter `json:"data"`
	}
	decode(t, recorder, &envelope)

	assert.Equal(t, 1, envelope.Data.Number)
	assert.Equal(t, "chapter-1", envelope.Data.Slug)
	assert.Equal(t, "chapter-0001", envelope.Data.Filename)
	assert.Equal(t, chapter.StatusFetched, envelope.Data.Status)
}

/*
TestHandler_CreateChapter_Invalid verifies the 400 path for bad payloads.
*/
func TestHandler_CreateChapter_Invalid(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing_title", map[string]interface{}{"number": 1, "book": 1}},
		{"bad_book", map[string]interface{}{"number": 1, "book": 99, "title": "x"}},
		{"negative_number", map[string]interface{}{"number": -1, "book": 1, "title": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(t, router, http.MethodPost, "/", tt.payload)
			require.Equal(t, http.StatusBadRequest, recorder.Code)

			var envelope struct {
				Code string `json:"code"`
			}
			decode(t, recorder, &envelope)
			assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
		})
	}
}

/*
TestHandler_CreateChapter_Conflict verifies 409 on a duplicate number.
*/
func TestHandler_CreateChapter_Conflict(t *testing.T) {
	router := newTestRouter()

	recorder := do(t, router, http.MethodPost, "/", chapterPayload(7))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, router, http.MethodPost, "/", chapterPayload(7))
	require.Equal(t, http.StatusConflict, recorder.Code)

	var envelope struct {
		Code string `json:"code"`
	}
	decode(t, recorder, &envelope)
	assert.Equal(t, "CONFLICT", envelope.Code)
}

/*
TestHandler_GetChapter_NotFound verifies that a missing number is a 404 at
the HTTP surface even though the accessor treats it as an empty result.
*/
func TestHandler_GetChapter_NotFound(t *testing.T) {
	router := newTestRouter()

	recorder := do(t, router, http.MethodGet, "/123", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope struct {
		Code string `json:"code"`
	}
	decode(t, recorder, &envelope)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

/*
TestHandler_GetChapter_BadNumber verifies rejection of non-numeric path keys.
*/
func TestHandler_GetChapter_BadNumber(t *testing.T) {
	router := newTestRouter()

	recorder := do(t, router, http.MethodGet, "/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHandler_Lifecycle walks a chapter through create, read, patch, and delete.
*/
func TestHandler_Lifecycle(t *testing.T) {
	router := newTestRouter()

	// 1. Create
	recorder := do(t, router, http.MethodPost, "/", chapterPayload(12))
	require.Equal(t, http.StatusCreated, recorder.Code)

	// 2. Read it back
	recorder = do(t, router, http.MethodGet, "/12", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// 3. Patch the title; the slug must follow
	recorder = do(t, router, http.MethodPatch, "/12", map[string]interface{}{
		"title": "The God Blood",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data chapter.Chapter `json:"data"`
	}
	decode(t, recorder, &envelope)
	assert.Equal(t, "The God Blood", envelope.Data.Title)
	assert.Equal(t, "the-god-blood", envelope.Data.Slug)

	// 4. Delete
	recorder = do(t, router, http.MethodDelete, "/12", nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	// 5. Gone
	recorder = do(t, router, http.MethodGet, "/12", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_PutChapter verifies upsert semantics and path-number authority.
*/
func TestHandler_PutChapter(t *testing.T) {
	router := newTestRouter()

	// PUT of a new number inserts; the body's number is ignored
	payload := chapterPayload(999)
	recorder := do(t, router, http.MethodPut, "/20", payload)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data chapter.Chapter `json:"data"`
	}
	decode(t, recorder, &envelope)
	assert.Equal(t, 20, envelope.Data.Number)

	// PUT again replaces without a conflict
	payload["title"] = "Replaced"
	recorder = do(t, router, http.MethodPut, "/20", payload)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = do(t, router, http.MethodGet, "/20", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decode(t, recorder, &envelope)
	assert.Equal(t, "Replaced", envelope.Data.Title)
}

/*
TestHandler_PatchChapter_NotFound verifies 404 on patching a missing chapter.
*/
func TestHandler_PatchChapter_NotFound(t *testing.T) {
	router := newTestRouter()

	recorder := do(t, router, http.MethodPatch, "/404", map[string]interface{}{
		"title": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_ListChapters verifies the paginated list envelope.
*/
func TestHandler_ListChapters(t *testing.T) {
	router := newTestRouter()

	for n := 1; n <= 5; n++ {
		recorder := do(t, router, http.MethodPost, "/", chapterPayload(n))
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := do(t, router, http.MethodGet, "/?limit=2&page=2", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []chapter.Chapter `json:"data"`
		Meta struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	decode(t, recorder, &envelope)

	require.Len(t, envelope.Data, 2)
	assert.Equal(t, 3, envelope.Data[0].Number)
	assert.Equal(t, 2, envelope.Meta.Page)
	assert.Equal(t, 5, envelope.Meta.Total)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
}

/*
TestHandler_ListChapters_RangeMode verifies the from/to query switch.
*/
func TestHandler_ListChapters_RangeMode(t *testing.T) {
	router := newTestRouter()

	for n := 1; n <= 5; n++ {
		recorder := do(t, router, http.MethodPost, "/", chapterPayload(n))
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := do(t, router, http.MethodGet, "/?from=2&to=4", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []chapter.Chapter `json:"data"`
	}
	decode(t, recorder, &envelope)

	require.Len(t, envelope.Data, 3)
	assert.Equal(t, 2, envelope.Data[0].Number)
	assert.Equal(t, 4, envelope.Data[2].Number)
}
