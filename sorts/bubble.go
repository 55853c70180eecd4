package sorts

// BubbleSort - Sorts s in place by repeatedly swapping adjacent elements that are out of order.
// Equal elements are never swapped, which keeps the sort stable. A pass without swaps ends the sort early.
// O(n²) time, O(1) extra space.
func BubbleSort[T any](s []T, cmp func(a, b T) int) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if cmp(s[j], s[j+1]) > 0 {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
