// Package sliceutil provides generic slice manipulation utilities.
package sliceutil

// Deduplicate removes duplicate items from a slice while preserving order.
// The keyFunc extracts a unique key from each item for comparison.
// Only the first occurrence of each key is kept.
//
// Example:
//
//	rooms := []string{"Room 301", "Lab 2", "Room 301"}
//	unique := sliceutil.Deduplicate(rooms, func(r string) string { return r })
//	// Result: ["Room 301", "Lab 2"]
func Deduplicate[T any, K comparable](items []T, keyFunc func(T) K) []T {
	if len(items) == 0 {
		return items
	}

	seen := make(map[K]struct{}, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		key := keyFunc(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, item)
	}

	return result
}

// Head returns at most the first n items. The result shares the backing
// array with items. A negative n is treated as zero.
func Head[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	return items[:min(len(items), n)]
}
