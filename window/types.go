// Package window defines sentinel errors and constants for the window matchers.
package window

import "errors"

// Sentinel errors returned by the error-reporting matchers.
var (
	// ErrAlphabet indicates a byte outside the lowercase ASCII alphabet.
	ErrAlphabet = errors.New("window: byte outside lowercase ASCII alphabet")

	// ErrInvalidCharacter indicates a rune that is neither a letter, a number nor whitespace.
	ErrInvalidCharacter = errors.New("window: string must hold only letters, numbers and whitespace")

	// ErrTokenCount indicates the number of words differs from the pattern length.
	ErrTokenCount = errors.New("window: word count does not match pattern length")

	// ErrNoBijection indicates the pattern and the words are not in one-to-one correspondence.
	ErrNoBijection = errors.New("window: pattern and words are not a bijection")
)

// alphabetSize is the number of slots of the fixed difference table ('a'..'z').
const alphabetSize = 26

// table is a per-letter count difference between a pattern and a window.
type table [alphabetSize]int

// zero reports whether every slot is 0, i.e. the window is a permutation of the pattern.
func (t *table) zero() bool {
	for _, v := range t {
		if v != 0 {
			return false
		}
	}

	return true
}
