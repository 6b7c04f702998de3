package collections

// IsDuplicate reports whether any element of list occurs more than once.
//
// Complexity: O(n) time, O(n) memory.
func IsDuplicate[T comparable](list []T) bool {
	_, ok := FindDuplicate(list)

	return ok
}

// FindDuplicate returns the first element seen a second time while scanning
// list from the left. ok is false when all elements are distinct.
//
// Complexity: O(n) time, O(n) memory.
func FindDuplicate[T comparable](list []T) (dup T, ok bool) {
	seen := make(map[T]struct{}, len(list))
	for _, item := range list {
		if _, hit := seen[item]; hit {
			return item, true
		}
		seen[item] = struct{}{}
	}

	return dup, false
}

// Majority returns the element occurring at least ⌊n/2⌋+1 times in list.
// The scan stops as soon as an element reaches that threshold.
// ok is false when no element holds a strict majority (including empty input).
//
// Complexity: O(n) time, O(n) memory.
func Majority[T comparable](list []T) (major T, ok bool) {
	threshold := len(list)/2 + 1
	counts := make(map[T]int)
	for _, item := range list {
		counts[item]++
		if counts[item] >= threshold {
			return item, true
		}
	}

	return major, false
}
