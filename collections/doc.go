// Package collections provides single-pass scans over generic slices:
// duplicate and majority detection, two-sum, missing and single number,
// and classic binary search.
//
// "Not found" is never an error: it is reported as false,
// a zero value plus ok=false, or -1.
//
//	collections.IsDuplicate([]int{1, 2, 3, 3, 5})   // true
//	collections.FindDuplicate([]int{1, 2, 3, 3, 5}) // 3, true
//	collections.Majority([]string{"a", "b", "a"})   // "a", true
//	collections.TwoSum([]int{2, 7, 11, 15}, 9)      // 0, 1, true
//	collections.MissingNumber([]int{3, 0, 1})       // 2
//	collections.SingleNumber([]int{4, 1, 2, 1, 2})  // 4
//	collections.BinarySearch([]int{1, 3, 5}, 5)     // 2, true
package collections
