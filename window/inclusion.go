package window

import "fmt"

// CheckInclusion reports whether some window of text of length len(pattern)
// is a permutation of pattern.
//
// Both strings must consist of lowercase ASCII letters; otherwise
// CheckInclusion returns ErrAlphabet wrapped with the offending byte.
// A pattern longer than text yields false. The empty pattern is included
// in every text (the empty window is its permutation).
//
// Algorithm:
//  1. table[c]++ for every byte of pattern, table[c]-- for the first k bytes of text.
//  2. All slots zero → the first window matches.
//  3. Slide by one: table[out]++, table[in]--, test again.
//
// Complexity: O(|text|) time, O(1) memory.
func CheckInclusion(pattern, text string) (bool, error) {
	if err := validateLower("pattern", pattern); err != nil {
		return false, err
	}
	if err := validateLower("text", text); err != nil {
		return false, err
	}

	k := len(pattern)
	if k > len(text) {
		return false, nil
	}

	var diff table
	for i := 0; i < k; i++ {
		diff[pattern[i]-'a']++
		diff[text[i]-'a']--
	}
	if diff.zero() {
		return true, nil
	}

	for i := k; i < len(text); i++ {
		diff[text[i-k]-'a']++
		diff[text[i]-'a']--
		if diff.zero() {
			return true, nil
		}
	}

	return false, nil
}

// Includes is CheckInclusion without the error: input outside the
// lowercase ASCII alphabet is reported as false.
//
// Example:
//
//	Includes("abbc", "gfaabbcqqw") // true, "abbc" at offset 3
//	Includes("abbc", "wqqwe")      // false
//	Includes("abbc", "ab")         // false, pattern longer than text
func Includes(pattern, text string) bool {
	ok, err := CheckInclusion(pattern, text)

	return err == nil && ok
}

// IncludesRunes answers the same question as Includes for any alphabet.
// Runes are counted in a sparse map and the number of non-zero slots is
// kept alongside, so each slide stays O(1).
//
// Lengths are measured in runes. Invalid UTF-8 bytes count as U+FFFD.
//
// Complexity: O(|text|) time, O(distinct runes) memory.
func IncludesRunes(pattern, text string) bool {
	p, t := []rune(pattern), []rune(text)
	k := len(p)
	if k > len(t) {
		return false
	}

	c := newCounter(k)
	for i := 0; i < k; i++ {
		c.add(p[i], 1)
		c.add(t[i], -1)
	}
	if c.zero() {
		return true
	}

	for i := k; i < len(t); i++ {
		c.add(t[i-k], 1)
		c.add(t[i], -1)
		if c.zero() {
			return true
		}
	}

	return false
}

// counter is the sparse difference table used by IncludesRunes.
type counter struct {
	diff    map[rune]int
	nonZero int
}

func newCounter(hint int) *counter {
	return &counter{diff: make(map[rune]int, hint)}
}

func (c *counter) add(r rune, delta int) {
	before := c.diff[r]
	after := before + delta
	switch {
	case after == 0:
		delete(c.diff, r)
		c.nonZero--
	case before == 0:
		c.diff[r] = after
		c.nonZero++
	default:
		c.diff[r] = after
	}
}

func (c *counter) zero() bool { return c.nonZero == 0 }

// validateLower returns ErrAlphabet for the first byte of s outside 'a'..'z'.
func validateLower(name, s string) error {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 'a' || b > 'z' {
			return fmt.Errorf("%w: %s byte %q at offset %d", ErrAlphabet, name, b, i)
		}
	}

	return nil
}
