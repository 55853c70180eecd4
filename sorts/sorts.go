// Package sorts holds the sort algorithms used to order catalog listings together with a binary search.
// Every algorithm is stable, sorts in place and gives the same result for a given comparator, they only
// differ in time and allocation. None of them folds case, that is up to the comparator.
package sorts

import (
	"fmt"
	"slices"
	"strings"
)

// Algorithm - Identifies one of the sort algorithms
type Algorithm int

const (
	// Builtin - slices.SortStableFunc from the standard library
	Builtin Algorithm = iota
	// Bubble - BubbleSort
	Bubble
	// Merge - MergeSort
	Merge
	// Insertion - InsertionSort
	Insertion
)

// Algorithms - All algorithms in menu order
var Algorithms = []Algorithm{Bubble, Merge, Insertion, Builtin}

// String - Returns the name of the algorithm as accepted by ParseAlgorithm
func (A Algorithm) String() string {
	switch A {
	case Bubble:
		return "bubble"
	case Merge:
		return "merge"
	case Insertion:
		return "insertion"
	case Builtin:
		return "builtin"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(A))
	}
}

// ParseAlgorithm - Returns the algorithm given its name or its menu number (1 bubble, 2 merge, 3 insertion,
// 4 builtin). For anything else it returns Builtin together with an error, callers that want to carry on
// with the builtin sort may log the error and use the returned algorithm.
func ParseAlgorithm(s string) (algorithm Algorithm, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "bubble":
		algorithm = Bubble
	case "2", "merge":
		algorithm = Merge
	case "3", "insertion":
		algorithm = Insertion
	case "4", "builtin", "":
		algorithm = Builtin
	default:
		algorithm = Builtin
		err = fmt.Errorf("unknown sort algorithm %q, using builtin", s)
	}

	return
}

// Sort - Sorts s in place with the given algorithm
func Sort[T any](algorithm Algorithm, s []T, cmp func(a, b T) int) {
	switch algorithm {
	case Bubble:
		BubbleSort(s, cmp)
	case Merge:
		MergeSort(s, cmp)
	case Insertion:
		InsertionSort(s, cmp)
	default:
		slices.SortStableFunc(s, cmp)
	}
}
