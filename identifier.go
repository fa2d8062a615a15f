package context7

import (
	"regexp"
	"strings"
)

// libraryIDPattern matches a path-style token: a slash followed by characters
// that are neither whitespace nor quotes. Whitespace includes vertical tab
// and the byte order mark. Backticks count as quotes because resolver output
// is markdown and commonly wraps IDs in code spans.
var libraryIDPattern = regexp.MustCompile("/[^\\s\\v\\x{FEFF}\\p{Z}\"'`]+")

// IsLibraryID reports whether s, after trimming, is a caller-supplied library
// ID such as "/tiangolo/fastapi" or "/vercel/next.js/v14.3.0".
func IsLibraryID(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "/")
}

// ExtractLibraryID returns the first path-style token found in resolver text.
// It is a heuristic: URLs or file paths embedded in the text can match too.
func ExtractLibraryID(text string) (string, bool) {
	id := libraryIDPattern.FindString(text)
	if id == "" {
		return "", false
	}
	return id, true
}
