package window

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/seqkit/internal/runeclass"
)

// MatchWordPattern checks that pattern and the words of s are in one-to-one,
// onto correspondence: replacing every pattern rune by its word rebuilds the
// word sequence, and no two runes share a word.
//
// Words are separated by ASCII whitespace. The checks run in this order:
//  1. s holds only alphabetic, numeric and whitespace runes, else ErrInvalidCharacter;
//  2. the word count equals the rune count of pattern, else ErrTokenCount;
//  3. pattern runes and words are bound in lock-step; the first binding that
//     disagrees in either direction returns ErrNoBijection.
//
// It returns nil on a match. The empty pattern matches a blank s.
//
// Complexity: O(|s|) time and memory.
func MatchWordPattern(pattern, s string) error {
	for i, r := range s {
		if !runeclass.IsAlphanumeric(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, r, i)
		}
	}

	words := strings.FieldsFunc(s, isASCIISpace)
	if n := utf8.RuneCountInString(pattern); n != len(words) {
		return fmt.Errorf("%w: %d runes, %d words", ErrTokenCount, n, len(words))
	}

	m := newBimap[rune, string](len(words))
	i := 0
	for _, r := range pattern {
		if !m.bind(r, words[i]) {
			return fmt.Errorf("%w: %q and %q at position %d", ErrNoBijection, r, words[i], i)
		}
		i++
	}

	return nil
}

// WordPattern reports whether MatchWordPattern succeeds. Malformed input
// and genuine mismatches both yield false.
//
// Example:
//
//	WordPattern("abba", "lol kek kek lol")          // true
//	WordPattern("aaa", "lol kek lol")               // false: 'a' → "lol" and "kek"
//	WordPattern("ab", "lol lol")                    // false: "lol" ← 'a' and 'b'
//	WordPattern("aabbaa", "lol lol kek kek lol lol") // true
func WordPattern(pattern, s string) bool {
	return MatchWordPattern(pattern, s) == nil
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}

	return false
}
