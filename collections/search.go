package collections

import "cmp"

// BinarySearch looks for target in sorted (ascending) and returns its index.
// When target occurs several times any matching index may be returned.
// It returns -1, false when target is absent.
//
// Complexity: O(log n) time, O(1) memory.
func BinarySearch[T cmp.Ordered](sorted []T, target T) (int, bool) {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := cmp.Compare(sorted[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1, false
}
