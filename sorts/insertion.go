package sorts

// InsertionSort - Sorts s in place by shifting every element left past all strictly greater elements.
// O(n²) worst case, O(n) on nearly sorted input, O(1) extra space, stable.
func InsertionSort[T any](s []T, cmp func(a, b T) int) {
	for i := 1; i < len(s); i++ {
		current := s[i]
		j := i - 1
		for j >= 0 && cmp(s[j], current) > 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = current
	}
}
