// Package seqkit is a small, dependency-light toolbox of string and
// sequence analysis routines.
//
// 🚀 What is seqkit?
//
//	A pure-Go library of self-contained, allocation-local algorithms:
//		• Palindromes: Manacher's longest palindromic substring, two-pointer check
//		• Window matchers: sliding-window permutation inclusion, word-pattern bijection
//		• Collections: duplicates, majority, two-sum, missing/single number, binary search
//		• Numbers: decimal palindrome, parity
//		• Text: anagrams, last word length, balanced brackets
//
// ✨ Why seqkit?
//
//   - Total functions – "not found" is false or ok=false, never a panic
//   - Unicode aware – strings are processed as runes, spans as byte offsets
//   - Generic – collection scans work on any comparable or ordered type
//   - Stateless – every call is independent and safe for concurrent use
//
// Everything is organized under subpackages:
//
//	palindrome/  — Transform, Radii (Manacher), Longest, IsPalindrome
//	window/      — Includes, CheckInclusion, IncludesRunes, WordPattern, MatchWordPattern
//	collections/ — IsDuplicate, FindDuplicate, Majority, TwoSum, MissingNumber, SingleNumber, BinarySearch
//	number/      — IsPalindrome, IsOdd, IsEven
//	text/        — IsAnagram, IsAnagramFold, LengthOfLastWord, Balanced
//	cmd/seqkit/  — command-line driver
//
// Quick example:
//
//	palindrome.Longest("abcdcbaaerfqsfq")           // "abcdcba"
//	window.Includes("abbc", "gfaabbcqqw")           // true
//	window.WordPattern("abba", "lol kek kek lol")   // true
//
//	go get github.com/katalvlaran/seqkit
package seqkit
