package sorts

// BinarySearchFunc - Searches the sorted slice s for an element that compares equal to target.
// cmp is called as cmp(element, target) and must agree with the order s is sorted in.
// If several elements compare equal, which one is found is unspecified.
//
// It returns:
//   - index is the position of a matching element, or -1 when not found
//   - found is true if a matching element was found
func BinarySearchFunc[T, E any](s []T, target E, cmp func(element T, target E) int) (index int, found bool) {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		c := cmp(s[mid], target)
		switch {
		case c == 0:
			return mid, true
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1, false
}
