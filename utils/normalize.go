package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace, composes the text to NFC and
// lowercases it, so "Tomato" and " tomato " compare equal.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// Casers keep state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// TrimKey only strips surrounding whitespace; used for keys such as e-mail
// addresses that are compared verbatim.
func TrimKey(s string) string {
	return strings.TrimSpace(s)
}
