package normalize

import (
	"regexp"
	"strings"
)

var (
	phonePattern  = regexp.MustCompile(`\+?1?[\s\-.]?\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`)
	nonPhoneChars = regexp.MustCompile(`[^\d+]`)
)

// ExtractPhoneDigits returns the first North-American phone number found in
// free text, reduced to digits and an optional leading "+". Returns "" when
// no number is present.
func ExtractPhoneDigits(text string) string {
	m := phonePattern.FindString(text)
	if m == "" {
		return ""
	}
	return nonPhoneChars.ReplaceAllString(strings.TrimSpace(m), "")
}
