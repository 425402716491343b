// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
)

// SanitizeName strips control characters from a caller-supplied name and
// trims surrounding whitespace. Names are single-line, so tab and newline
// are stripped along with the rest; inner spacing is preserved verbatim so
// that greetings echo the name exactly as given.
func SanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 32 && r != 127 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Truncate shortens s to at most max runes, for log output of
// caller-supplied values.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
