package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskString replaces every character of s except the first start and the
// last end with maskChar. Strings too short to keep both ends are fully masked.
func MaskString(s string, start, end int, maskChar string) string {
	n := utf8.RuneCountInString(s)
	if n <= start+end {
		return strings.Repeat(maskChar, n)
	}
	runes := []rune(s)
	return string(runes[:start]) + strings.Repeat(maskChar, n-start-end) + string(runes[n-end:])
}

// MaskDocument hides a tax id or payment key for logging
func MaskDocument(s string) string {
	return MaskString(s, 3, 2, "*")
}
