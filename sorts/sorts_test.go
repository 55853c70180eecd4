//go:build unit

package sorts

import (
	"cmp"
	"fmt"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

type item struct {
	year  int
	order int
}

func byYear(a, b item) int {
	return cmp.Compare(a.year, b.year)
}

func TestSort(t *testing.T) {
	t.Run("sorts by year with every algorithm", func(t *testing.T) {
		for _, algorithm := range Algorithms {
			// Prepare
			s := []item{{year: 2002}, {year: 2001}, {year: 2003}}

			// Execute
			Sort(algorithm, s, byYear)

			// Check
			years := []int{s[0].year, s[1].year, s[2].year}
			assert.Equalf(t, []int{2001, 2002, 2003}, years, "sorted by %s", algorithm)
		}
	})

	t.Run("handles nil and single element input", func(t *testing.T) {
		for _, algorithm := range Algorithms {
			// Prepare
			var empty []item
			single := []item{{year: 1}}

			// Execute
			Sort(algorithm, empty, byYear)
			Sort(algorithm, single, byYear)

			// Check
			assert.Nilf(t, empty, "nil stays nil for %s", algorithm)
			assert.Equalf(t, []item{{year: 1}}, single, "single element unchanged for %s", algorithm)
		}
	})

	t.Run("all algorithms agree and are stable", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		for round := 0; round < 50; round++ {
			input := make([]item, rnd.Intn(200))
			for i := range input {
				input[i] = item{year: rnd.Intn(20), order: i}
			}

			results := make(map[Algorithm][]item)
			for _, algorithm := range Algorithms {
				s := append([]item(nil), input...)

				// Execute
				Sort(algorithm, s, byYear)
				results[algorithm] = s
			}

			// Check
			for _, algorithm := range Algorithms {
				s := results[algorithm]
				assert.Equalf(t, results[Builtin], s, "%s agrees with builtin in round %d", algorithm, round)
				assert.Lenf(t, s, len(input), "%s keeps all elements", algorithm)
				for i := 1; i < len(s); i++ {
					assert.LessOrEqualf(t, s[i-1].year, s[i].year, "%s non-decreasing at %d", algorithm, i)
					if s[i-1].year == s[i].year {
						assert.Lessf(t, s[i-1].order, s[i].order, "%s keeps input order of ties at %d", algorithm, i)
					}
				}
			}
		}
	})

	t.Run("sorts strings with a caller supplied comparator only", func(t *testing.T) {
		for _, algorithm := range Algorithms {
			// Prepare
			s := []string{"b", "B", "a", "A"}

			// Execute
			Sort(algorithm, s, cmp.Compare[string])

			// Check
			assert.Equalf(t, []string{"A", "B", "a", "b"}, s, "no case folding in %s", algorithm)
		}
	})
}

func TestParseAlgorithm(t *testing.T) {
	t.Run("parses names and menu numbers", func(t *testing.T) {
		// Prepare
		tests := map[string]Algorithm{"1": Bubble, "merge": Merge, " Insertion ": Insertion, "4": Builtin, "": Builtin}

		for in, want := range tests {
			// Execute
			got, err := ParseAlgorithm(in)

			// Check
			assert.NoErrorf(t, err, "%q accepted", in)
			assert.Equalf(t, want, got, "%q parsed", in)
		}
	})

	t.Run("falls back to builtin on unknown input", func(t *testing.T) {
		// Execute
		got, err := ParseAlgorithm("quick")

		// Check
		assert.Error(t, err, "unknown algorithm reported")
		assert.Equal(t, Builtin, got, "builtin returned")
		assert.Equal(t, "merge", Merge.String(), "name of merge")
		assert.Equal(t, "Algorithm(9)", fmt.Sprint(Algorithm(9)), "name of unknown")
	})
}

func TestBinarySearchFunc(t *testing.T) {
	t.Run("finds every element", func(t *testing.T) {
		// Prepare
		s := []int{1, 3, 5, 7, 9, 11}

		for i, v := range s {
			// Execute
			index, found := BinarySearchFunc(s, v, cmp.Compare[int])

			// Check
			assert.Truef(t, found, "%d found", v)
			assert.Equalf(t, i, index, "%d at correct index", v)
		}
	})

	t.Run("reports missing elements", func(t *testing.T) {
		// Prepare
		s := []int{1, 3, 5}

		for _, v := range []int{0, 2, 4, 6} {
			// Execute
			index, found := BinarySearchFunc(s, v, cmp.Compare[int])

			// Check
			assert.Falsef(t, found, "%d not found", v)
			assert.Equalf(t, -1, index, "index -1 for %d", v)
		}
	})

	t.Run("returns not found on empty input", func(t *testing.T) {
		// Execute
		_, found := BinarySearchFunc([]int(nil), 1, cmp.Compare[int])

		// Check
		assert.False(t, found, "nothing found")
	})

	t.Run("finds one of several duplicates", func(t *testing.T) {
		// Prepare
		s := []item{{year: 1, order: 0}, {year: 2, order: 1}, {year: 2, order: 2}, {year: 2, order: 3}, {year: 3, order: 4}}

		// Execute
		index, found := BinarySearchFunc(s, 2, func(e item, year int) int { return cmp.Compare(e.year, year) })

		// Check
		assert.True(t, found, "duplicate found")
		assert.Equal(t, 2, s[index].year, "matching element returned")
	})
}
