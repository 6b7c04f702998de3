package palindrome_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqkit/palindrome"
)

// benchmarkLongest runs Longest on s, resetting the timer after setup.
func benchmarkLongest(b *testing.B, s string) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = palindrome.Longest(s)
	}
}

// BenchmarkLongest_Uniform is the best case for mirror reuse: every cell is a center.
func BenchmarkLongest_Uniform(b *testing.B) {
	benchmarkLongest(b, strings.Repeat("a", 10_000))
}

// BenchmarkLongest_Periodic mixes short palindromes across 10k runes.
func BenchmarkLongest_Periodic(b *testing.B) {
	benchmarkLongest(b, strings.Repeat("abcba", 2_000))
}

// BenchmarkIsPalindrome_Fold measures the case-folding comparison.
func BenchmarkIsPalindrome_Fold(b *testing.B) {
	s := strings.Repeat("Ab, ", 1_000) + strings.Repeat(" ,bA", 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = palindrome.IsPalindrome(s)
	}
}
