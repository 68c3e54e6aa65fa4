// Copyright (c) 2026 Max Ludden. All rights reserved.

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxludden/supergene/internal/chapter"
	"github.com/maxludden/supergene/internal/render"
)

func testChapter() *chapter.Chapter {
	return &chapter.Chapter{
		Number:   42,
		Book:     1,
		Title:    "The God Blood",
		Text:     "Plain body.",
		Markdown: "# The God Blood\n\nMarkdown body.",
	}
}

/*
TestParseMode verifies mode parsing and normalization.
*/
func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    render.Mode
		wantErr bool
	}{
		{"text", "text", render.ModeText, false},
		{"md", "md", render.ModeMarkdown, false},
		{"uppercase", "TEXT", render.ModeText, false},
		{"padded", " md ", render.ModeMarkdown, false},
		{"unknown", "pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestChapter_TextMode verifies the banner and body appear in the output.
*/
func TestChapter_TextMode(t *testing.T) {
	output, err := render.Chapter(testChapter(), render.ModeText, 80)
	require.NoError(t, err)

	assert.Contains(t, output, "The God Blood")
	assert.Contains(t, output, "Chapter 42")
	assert.Contains(t, output, "Plain body.")
}

/*
TestChapter_MarkdownMode verifies the markdown body renders without error.
*/
func TestChapter_MarkdownMode(t *testing.T) {
	output, err := render.Chapter(testChapter(), render.ModeMarkdown, 80)
	require.NoError(t, err)

	assert.Contains(t, output, "Chapter 42")
	assert.Contains(t, output, "Markdown body.")
}

/*
TestChapter_UnknownMode verifies rejection of an unrecognized mode.
*/
func TestChapter_UnknownMode(t *testing.T) {
	_, err := render.Chapter(testChapter(), render.Mode("html"), 80)
	assert.Error(t, err)
}
