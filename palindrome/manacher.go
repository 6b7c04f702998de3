package palindrome

// Manacher — longest palindromic substring in linear time
//
// Description:
//
//	For every cell i of a transformed Buffer, compute radius[i]: the number
//	of cells matching symmetrically on each side of i. Because separators
//	are interleaved with symbols, radius[i] is also the length (in runes)
//	of the longest source palindrome centered at i.
//
// Algorithm Outline:
//  1. Keep the rightmost palindrome found so far as (center c, right edge r).
//  2. For i = 1..len-2:
//     if i < r, seed radius[i] = min(r-i, radius[2c-i]) from the mirror of i;
//     extend while cells i-1-radius[i] and i+1+radius[i] match
//     (guards never match, which ends the loop at both buffer ends);
//     if i+radius[i] > r, move (c, r) to (i, i+radius[i]).
//  3. The cell with the largest radius (first one on ties) is the answer.
//
// Complexity:
//
//	Time   = O(n), since r only moves right and each successful comparison moves it.
//	Memory = O(n) for the buffer and the radius array.

// Radii returns the radius of the longest palindrome centered at each cell
// of b. Guard cells get radius 0.
func Radii(b *Buffer) []int {
	m := b.Len()
	radius := make([]int, m)
	center, right := 0, 0
	for i := 1; i < m-1; i++ {
		if i < right {
			mirror := 2*center - i
			radius[i] = min(right-i, radius[mirror])
		}
		for b.Match(i-1-radius[i], i+1+radius[i]) {
			radius[i]++
		}
		if i+radius[i] > right {
			center, right = i, i+radius[i]
		}
	}

	return radius
}

// LongestSpan returns the byte range of the longest palindromic substring
// of s. When several palindromes share the maximal length, the leftmost one
// is returned. The empty string yields Span{0, 0}.
func LongestSpan(s string) Span {
	b := Transform(s)
	center, radius := longest(b)

	return b.Span(center, radius)
}

// Longest returns the longest palindromic substring of s, leftmost on ties.
//
// Example:
//
//	Longest("abcdcbaaerfqsfq") // "abcdcba"
//	Longest("abcded")          // "ded"
//	Longest("")                // ""
func Longest(s string) string {
	sp := LongestSpan(s)

	return s[sp.Start:sp.End]
}

// longest runs Radii over b and returns the first cell with maximal radius.
func longest(b *Buffer) (center, radius int) {
	radii := Radii(b)
	center = 1
	for i := 1; i < len(radii)-1; i++ {
		if radii[i] > radius {
			center, radius = i, radii[i]
		}
	}

	return center, radius
}
