// Copyright (c) 2026 Max Ludden. All rights reserved.

/*
Package render draws a chapter to the terminal for the operator CLI.

Two modes are supported:

  - text: a styled title banner above the plain text body.
  - md: the markdown body rendered with glamour (headings, emphasis, rules).
*/
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/maxludden/supergene/internal/chapter"
)

// Mode selects the terminal rendering style.
type Mode string

const (
	ModeText     Mode = "text"
	ModeMarkdown Mode = "md"
)

// defaultWidth is used when the caller does not know the terminal width.
const defaultWidth = 80

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 0)

	subtitleStyle = lipgloss.NewStyle().
			Italic(true).
			Faint(true).
			Align(lipgloss.Center)

	bodyStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// ParseMode converts a user-supplied string into a [Mode].
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeText:
		return ModeText, nil
	case ModeMarkdown:
		return ModeMarkdown, nil
	}
	return "", fmt.Errorf("render: unknown mode %q (want text or md)", s)
}

// Chapter renders the given chapter for the terminal at the given width.
// A width of 0 falls back to the default.
func Chapter(c *chapter.Chapter, mode Mode, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}

	switch mode {
	case ModeMarkdown:
		return markdown(c, width)
	case ModeText:
		return text(c, width), nil
	default:
		return "", fmt.Errorf("render: unknown mode %q", mode)
	}
}

// text renders the banner and the plain body.
func text(c *chapter.Chapter, width int) string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Width(width).Render(c.Title))
	builder.WriteString("\n")
	builder.WriteString(subtitleStyle.Width(width).Render(fmt.Sprintf("Chapter %d", c.Number)))
	builder.WriteString("\n")
	builder.WriteString(bodyStyle.Width(width).Render(c.Text))
	builder.WriteString("\n")

	return builder.String()
}

// markdown renders the markdown body via glamour, with the same banner on top.
func markdown(c *chapter.Chapter, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("render: failed to build markdown renderer: %w", err)
	}

	body, err := renderer.Render(c.Markdown)
	if err != nil {
		return "", fmt.Errorf("render: failed to render markdown: %w", err)
	}

	banner := titleStyle.Width(width).Render(c.Title) + "\n" +
		subtitleStyle.Width(width).Render(fmt.Sprintf("Chapter %d", c.Number))

	return banner + "\n" + body, nil
}
