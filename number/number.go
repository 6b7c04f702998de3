// Package number provides integer property checks: decimal palindromes
// and parity.
package number

import "golang.org/x/exp/constraints"

// IsPalindrome reports whether the decimal digits of x read the same in
// both directions. Negative numbers and non-zero multiples of 10 are never
// palindromes.
//
// Only the lower half of the digits is reversed: the loop stops once the
// reversed part is no smaller than what remains, so it cannot overflow.
//
// Complexity: O(log10 x) time, O(1) memory.
func IsPalindrome(x int) bool {
	if x < 0 || (x%10 == 0 && x != 0) {
		return false
	}

	rev := 0
	for x > rev {
		rev = rev*10 + x%10
		x /= 10
	}

	// Odd digit counts leave the middle digit in rev.
	return x == rev || x == rev/10
}

// IsOdd reports whether x is odd.
func IsOdd[T constraints.Integer](x T) bool {
	return x&1 == 1
}

// IsEven reports whether x is even.
func IsEven[T constraints.Integer](x T) bool {
	return x&1 == 0
}
