package text

import (
	"golang.org/x/text/cases"
)

// IsAnagram reports whether a and b hold the same runes with the same
// multiplicities. Runes are compared exactly.
//
// Both strings are walked position by position: the rune of a increments
// its count, the rune of b decrements it, and the strings are anagrams when
// every count returns to zero.
//
// Complexity: O(n) time, O(distinct runes) memory.
func IsAnagram(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}

	diff := make(map[rune]int, len(ra))
	for i := range ra {
		diff[ra[i]]++
		diff[rb[i]]--
	}
	for _, v := range diff {
		if v != 0 {
			return false
		}
	}

	return true
}

// IsAnagramFold is IsAnagram after full Unicode case folding of both
// strings, so "Listen" and "Silent" are anagrams. Folding may change the
// rune count ('ß' folds to "ss").
func IsAnagramFold(a, b string) bool {
	fold := cases.Fold()

	return IsAnagram(fold.String(a), fold.String(b))
}
