// Copyright (c) 2026 Max Ludden. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxludden/supergene/pkg/pagination"
)

/*
TestFromRequest verifies parsing and clamping of the page/limit parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 50},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"zero_page", "?page=0", 1, 50},
		{"negative_limit", "?limit=-5", 1, 50},
		{"excessive_limit", "?limit=5000", 1, 50},
		{"max_limit", "?limit=200", 1, 200},
		{"garbage", "?page=abc&limit=xyz", 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies the skip calculation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 50}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 2, Limit: 50}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 50}.Offset())
}

/*
TestNewMeta verifies total page calculation.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 50, 120)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 50, meta.Limit)
	assert.Equal(t, 120, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Zero(t, pagination.NewMeta(1, 50, 0).TotalPages)
}
