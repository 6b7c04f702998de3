// Package palindrome finds and tests palindromes in strings.
//
// 🚀 What is inside?
//
//	• Transform — interleaves the input with separator cells and wraps it
//	  in two guard cells, so odd and even palindromes share one center model.
//	• Radii     — Manacher's algorithm: radius of the longest palindrome
//	  centered at every cell of a transformed Buffer, in linear time.
//	• Longest   — the longest palindromic substring (leftmost on ties).
//	• IsPalindrome — two-pointer check that skips non-letters, with
//	  case-folding or case-sensitive comparison.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqkit/palindrome"
//
//	palindrome.Longest("abcded")                       // "ded"
//	palindrome.LongestSpan("abcded")                   // Span{Start: 3, End: 6}
//	palindrome.IsPalindrome("A man, a plan, a canal: Panama") // true
//	palindrome.IsPalindrome("loL", palindrome.WithCaseSensitive()) // false
//
// Strings are processed as UTF-8 runes: "été" is a palindrome, and spans
// are byte offsets into the original string.
//
// Performance:
//
//   - Longest / Radii: O(n) time, O(n) memory
//   - IsPalindrome:    O(n) time, O(n) memory (rune slice)
package palindrome
