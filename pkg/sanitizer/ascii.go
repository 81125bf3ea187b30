// Package sanitizer projects user input onto text that is safe to draw with
// the standard PDF fonts.
package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nonPrintable matches every rune that is not printable ASCII. Whitespace is
// kept so ASCII can collapse it into single spaces. Invalid UTF-8 decodes to
// utf8.RuneError, which is removed as well.
var nonPrintable = runes.Predicate(func(r rune) bool {
	if r > unicode.MaxASCII {
		return true
	}
	return (r < 0x20 && !unicode.IsSpace(r)) || r == 0x7f
})

// ASCII drops non-ASCII bytes and control characters, collapses whitespace
// runs into a single space and trims the result. ASCII(ASCII(s)) == ASCII(s).
func ASCII(s string) string {
	if s == "" {
		return ""
	}
	// runes.Remove cannot fail on a complete in-memory string.
	out, _, _ := transform.String(runes.Remove(nonPrintable), s)
	return strings.Join(strings.Fields(out), " ")
}
