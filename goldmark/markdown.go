// Package goldmark renders Context7 documentation (markdown) to ANSI-styled
// terminal output using goldmark for parsing and lipgloss for styling.
package goldmark

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/context7"
)

const defaultWidth = 80

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width. Code blocks and
// tables keep their lines without reflow.
func Render(source string, width int, theme context7.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}

// RenderResult renders a lookup result. The header line naming the library
// is styled on its own and the rest is rendered as markdown.
func RenderResult(text string, width int, theme context7.Theme) string {
	header, body, ok := splitHeader(text)
	if !ok {
		return Render(text, width, theme)
	}
	style := lipgloss.NewStyle().Foreground(ansiColor(theme.Header)).Bold(true)
	out := style.Render(header)
	if rendered := Render(body, width, theme); rendered != "" {
		out += "\n\n" + rendered
	}
	return out
}

func splitHeader(text string) (header, body string, ok bool) {
	if !strings.HasPrefix(text, context7.HeaderDirect) && !strings.HasPrefix(text, context7.HeaderResolved) {
		return "", "", false
	}
	header, body, _ = strings.Cut(text, "\n")
	return header, strings.TrimLeft(body, "\n"), true
}
