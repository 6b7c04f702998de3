// Package runeclass classifies runes the way Unicode's derived Alphabetic
// property does: letters, letter numbers and Other_Alphabetic marks such as
// Devanagari vowel signs.
package runeclass

import "unicode"

// IsAlphabetic reports whether r has the Unicode Alphabetic property.
func IsAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// IsAlphanumeric reports whether r is Alphabetic or a number (Nd, Nl, No).
func IsAlphanumeric(r rune) bool {
	return IsAlphabetic(r) || unicode.IsNumber(r)
}
