package collections

import "golang.org/x/exp/constraints"

// TwoSum returns indices i < j such that nums[i]+nums[j] == target.
// The first pair completed while scanning left to right wins.
// ok is false when no pair exists.
//
// Complexity: O(n) time, O(n) memory.
func TwoSum[T constraints.Integer | constraints.Float](nums []T, target T) (i, j int, ok bool) {
	seen := make(map[T]int, len(nums))
	for k, v := range nums {
		if first, hit := seen[target-v]; hit {
			return first, k, true
		}
		if _, dup := seen[v]; !dup {
			seen[v] = k
		}
	}

	return -1, -1, false
}

// MissingNumber returns the one value of 0..n absent from nums, where
// n = len(nums) and nums holds distinct values of that range.
// It uses the closed form n(n+1)/2 minus the sum of nums.
//
// Complexity: O(n) time, O(1) memory.
func MissingNumber(nums []int) int {
	n := len(nums)
	want := n * (n + 1) / 2
	for _, v := range nums {
		want -= v
	}

	return want
}

// SingleNumber returns the element that appears once in nums when every
// other element appears exactly twice, by XOR-reducing the slice.
// The result is 0 for empty input.
//
// Complexity: O(n) time, O(1) memory.
func SingleNumber[T constraints.Integer](nums []T) T {
	var acc T
	for _, v := range nums {
		acc ^= v
	}

	return acc
}
