// Copyright (c) 2026 Max Ludden. All rights reserved.

package chapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxludden/supergene/internal/chapter"
)

/*
TestSequence_SkipsUnpublished verifies that the canonical numbering walks
straight over the gaps the source site never released.
*/
func TestSequence_SkipsUnpublished(t *testing.T) {
	seq := chapter.NewSequence(3094, 3118)

	var numbers []int
	for seq.Next() {
		numbers = append(numbers, seq.Number())
	}

	assert.NotContains(t, numbers, 3095)
	assert.NotContains(t, numbers, 3117)
	assert.Contains(t, numbers, 3094)
	assert.Contains(t, numbers, 3096)
	assert.Contains(t, numbers, 3118)

	// 25 raw numbers minus the two gaps
	assert.Len(t, numbers, 23)
}

/*
TestSequence_Bounds verifies clamping to the canonical first/last chapter.
*/
func TestSequence_Bounds(t *testing.T) {
	seq := chapter.NewSequence(-100, 999999)

	require.True(t, seq.Next())
	assert.Equal(t, chapter.FirstChapter, seq.Number())

	var last int
	for {
		last = seq.Number()
		if !seq.Next() {
			break
		}
	}
	assert.Equal(t, chapter.LastChapter, last)
}

/*
TestSequence_Len verifies the published-chapter count of the full run.
*/
func TestSequence_Len(t *testing.T) {
	full := chapter.NewSequence(chapter.FirstChapter, chapter.LastChapter)

	// 3462 raw numbers minus 2 unpublished gaps
	assert.Equal(t, 3460, full.Len())

	// Len shrinks as the sequence advances
	require.True(t, full.Next())
	assert.Equal(t, 3459, full.Len())
}

/*
TestSequence_Empty verifies an inverted range yields nothing.
*/
func TestSequence_Empty(t *testing.T) {
	seq := chapter.NewSequence(100, 50)

	assert.False(t, seq.Next())
	assert.Zero(t, seq.Len())
}

/*
TestIsPublished tests membership in the canonical run.
*/
func TestIsPublished(t *testing.T) {
	tests := []struct {
		name      string
		number    int
		published bool
	}{
		{"first", 1, true},
		{"last", 3462, true},
		{"middle", 2000, true},
		{"gap_3095", 3095, false},
		{"gap_3117", 3117, false},
		{"zero", 0, false},
		{"beyond_run", 3463, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.published, chapter.IsPublished(tt.number))
		})
	}
}
