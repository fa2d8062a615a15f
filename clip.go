package context7

import (
	"fmt"
	"unicode/utf8"
)

// Clip truncates s to at most n characters (runes). When s is longer, the
// first n runes are kept and a marker "\n\n[clipped to n chars]" is appended.
// Clipping already-clipped output at the same bound returns it unchanged.
func Clip(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	cut := 0
	for range n {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
	}
	return s[:cut] + fmt.Sprintf("\n\n[clipped to %d chars]", n)
}
