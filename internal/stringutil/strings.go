// Package stringutil provides common string manipulation utilities.
package stringutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s with diacritics removed and Unicode case folding applied,
// so "José" and "JOSE" both become "jose".
//
// Example:
//
//	Fold("Dr. Ñuñez") returns "dr. nunez"
func Fold(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	// Casers keep state between calls and must not be shared.
	return cases.Fold().String(stripped)
}

// Tokens splits s into runs of letters and digits, dropping everything else.
//
// Example:
//
//	Tokens("Santos, Juan-Paolo") returns ["Santos", "Juan", "Paolo"]
func Tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ContainsFold reports whether substr is within s after folding both.
// An empty substr never matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(Fold(s), Fold(substr))
}
