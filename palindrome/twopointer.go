package palindrome

import (
	"golang.org/x/text/cases"

	"github.com/katalvlaran/seqkit/internal/runeclass"
)

// IsPalindrome reports whether s reads the same in both directions when only
// its alphabetic runes are considered (letters, letter numbers and marks such
// as Devanagari vowel signs). Other runes are skipped from both ends.
//
// By default letters are compared after Unicode case folding, so "loL" is a
// palindrome; WithCaseSensitive compares them exactly.
// The empty string, and any string without letters, is a palindrome.
//
// Complexity: O(n) time, O(n) memory.
func IsPalindrome(s string, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rs := []rune(s)
	eq := equalExact
	if !o.CaseSensitive {
		eq = foldEqual(cases.Fold())
	}

	for lo, hi := 0, len(rs)-1; lo < hi; {
		switch {
		case !runeclass.IsAlphabetic(rs[lo]):
			lo++
		case !runeclass.IsAlphabetic(rs[hi]):
			hi--
		case !eq(rs[lo], rs[hi]):
			return false
		default:
			lo++
			hi--
		}
	}

	return true
}

func equalExact(a, b rune) bool { return a == b }

// foldEqual compares two runes by their full case folding,
// so 'ß' and 'ẞ' or 'K' and the Kelvin sign are equal.
func foldEqual(c cases.Caser) func(a, b rune) bool {
	return func(a, b rune) bool {
		if a == b {
			return true
		}

		return c.String(string(a)) == c.String(string(b))
	}
}
