package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/seqkit/internal/runeclass"
)

// LengthOfLastWord returns the length in runes of the last word of s.
// Runes that are neither alphabetic, numeric nor whitespace are dropped first,
// so "Hello world!" yields 5. A blank s yields 0.
func LengthOfLastWord(s string) int {
	kept := strings.Map(func(r rune) rune {
		if runeclass.IsAlphanumeric(r) || unicode.IsSpace(r) {
			return r
		}

		return -1
	}, s)

	words := strings.Fields(kept)
	if len(words) == 0 {
		return 0
	}

	return utf8.RuneCountInString(words[len(words)-1])
}

// brackets maps every closing bracket to its opening partner.
var brackets = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// Balanced reports whether the brackets (), [] and {} in s are properly
// nested and closed. Every other rune is ignored; the empty string is balanced.
//
// Complexity: O(n) time, O(depth) memory.
func Balanced(s string) bool {
	stack := make([]rune, 0, len(s)/2)
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != brackets[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0
}
