package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// defaultWrap is used when the terminal width is unknown.
const defaultWrap = 80

// RenderMarkdown renders a Markdown document for the terminal, wrapping at
// width cells (defaultWrap when width is zero or less).
func RenderMarkdown(doc string, width int) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(doc)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
