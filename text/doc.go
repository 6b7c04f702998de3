// Package text holds small rune-level string checks: anagrams,
// length of the last word and balanced brackets.
//
//	text.IsAnagram("lol", "llo")           // true
//	text.IsAnagramFold("Listen", "Silent") // true
//	text.LengthOfLastWord("Hello world!")  // 5
//	text.Balanced("{[()]}")                // true
//
// All functions work on runes and are total: malformed UTF-8 bytes are
// treated as U+FFFD, never as an error.
package text
