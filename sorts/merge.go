package sorts

// MergeSort - Sorts s by splitting it at the midpoint, sorting copies of both halves recursively and merging
// them back into s. On a tie the element from the left half is taken first, which keeps the sort stable.
// O(n log n) time, O(n) extra space per level.
func MergeSort[T any](s []T, cmp func(a, b T) int) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2
	left := append([]T(nil), s[:mid]...)
	right := append([]T(nil), s[mid:]...)

	MergeSort(left, cmp)
	MergeSort(right, cmp)

	merge(s, left, right, cmp)
}

// merge - Writes the sorted union of left and right into dst, len(dst) must be len(left) + len(right)
func merge[T any](dst, left, right []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
