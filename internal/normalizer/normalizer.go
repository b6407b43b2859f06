// Package normalizer produces the canonical form of paragraph and page text
// used as comparison keys.
package normalizer

import (
	"strings"
	"unicode"
)

const noBreakSpace = '\u00a0'

// NormalizeText replaces non-breaking spaces with ordinary spaces, collapses
// every run of whitespace (newlines included) into a single space and trims
// the result. NormalizeText(NormalizeText(s)) == NormalizeText(s).
//
// Invalid UTF-8 bytes are replaced by U+FFFD, so distinct malformed inputs
// can share a key.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))

	pendingSpace := false
	for _, r := range text {
		if r == noBreakSpace || isSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		pendingSpace = false
		sb.WriteRune(r)
	}

	return sb.String()
}

// isSpace matches unicode.IsSpace plus the ASCII information separators
// (U+001C..U+001F), which are also treated as whitespace by most text tooling.
func isSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}
