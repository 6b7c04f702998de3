// Package window provides matchers that scan raw strings with a moving
// position: a fixed-size sliding-window permutation check and a
// word-pattern bijection check.
//
// ✨ Matchers:
//   - Includes / CheckInclusion — does any window of text of len(pattern)
//     hold a permutation of pattern? Lowercase ASCII, 26-slot difference table.
//   - IncludesRunes — same question over any Unicode alphabet, sparse counts.
//   - WordPattern / MatchWordPattern — is there a one-to-one, onto mapping
//     between pattern runes and the whitespace-separated words of s?
//
// Error model:
//
//	The bool forms (Includes, WordPattern) report malformed input as false,
//	exactly like a genuine non-match. The error forms (CheckInclusion,
//	MatchWordPattern) return a sentinel instead, matched with errors.Is:
//	  • ErrAlphabet         — a byte outside 'a'..'z' reached the fixed table
//	  • ErrInvalidCharacter — s holds a rune that is not a letter, number or space
//	  • ErrTokenCount       — the word count differs from the pattern length
//	  • ErrNoBijection      — well-formed input without a bijection
//
// Performance:
//
//   - Includes:      O(|text|) time, O(1) memory
//   - IncludesRunes: O(|text|) time, O(|alphabet|) memory
//   - WordPattern:   O(|s|) time and memory
package window
