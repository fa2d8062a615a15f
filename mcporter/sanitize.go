package mcporter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize strips ANSI escape codes and control characters from bridge
// output. Tabs and newlines survive, CRLF becomes LF, and a lone CR keeps
// only the text after it, the way a progress line ends up on a terminal.
// Surrounding whitespace is trimmed.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if j := strings.LastIndexByte(line, '\r'); j >= 0 {
			line = line[j+1:]
		}
		lines[i] = strings.Map(func(r rune) rune {
			if r == '\t' || r > 0x1F && r != 0x7F {
				return r
			}
			return -1
		}, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// TailLines keeps the last maxLines lines of s, prefixed by a note with the
// number of lines dropped.
func TailLines(s string, maxLines int) string {
	if maxLines <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	dropped := len(lines) - maxLines
	return fmt.Sprintf("[%d earlier lines omitted]\n", dropped) + strings.Join(lines[dropped:], "\n")
}
