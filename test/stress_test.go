//go:build stress

package test

import (
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/gostonefire/bookshelf/catalog"
	"github.com/gostonefire/bookshelf/crt"
	"github.com/gostonefire/bookshelf/keyedtable"
	"github.com/gostonefire/bookshelf/sorts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

type testRecord struct {
	key   string
	value int
}

func createTestdata(rnd *rand.Rand, amount int) []testRecord {
	data := make([]byte, 20)
	records := make([]testRecord, amount)
	for i := range records {
		rnd.Read(data)
		records[i] = testRecord{key: hex.EncodeToString(data), value: rnd.Int()}
	}

	return records
}

func setTestdata(records []testRecord, kt *keyedtable.KeyedTable[string, int]) {
	for _, r := range records {
		kt.Put(r.key, r.value)
	}
}

func popTestdata(records []testRecord, kt *keyedtable.KeyedTable[string, int]) error {
	for _, r := range records {
		value, err := kt.Pop(r.key)
		if err != nil {
			return err
		}
		if value != r.value {
			return fmt.Errorf("popped wrong value")
		}
	}

	return nil
}

func getTestdata(records []testRecord, kt *keyedtable.KeyedTable[string, int], shouldNotExist bool) error {
	for _, r := range records {
		value, err := kt.Get(r.key)
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("get should not get data")
			} else if !errors.Is(err, crt.NoRecordFound{}) {
				return err
			}
		} else {
			if err != nil {
				return err
			}
			if value != r.value {
				return fmt.Errorf("got wrong value")
			}
		}
	}

	return nil
}

type TestCaseStressTest struct {
	crtName   string
	crt       int
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all CRTs", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{crtName: "SeparateChaining", crt: crt.SeparateChaining, nTestdata: 1000000},
			{crtName: "LinearProbing", crt: crt.LinearProbing, nTestdata: 1000000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress and growth for %s", test.crtName), func(t *testing.T) {
				// Prepare test data
				rnd := rand.New(rand.NewSource(123))
				set1 := createTestdata(rnd, test.nTestdata)
				set2 := createTestdata(rnd, test.nTestdata)
				set3 := createTestdata(rnd, test.nTestdata)

				kt, err := keyedtable.NewWithOptions[string, int](keyedtable.Options[string]{CollisionResolutionTechnique: test.crt})
				require.NoError(t, err, "create keyed table")

				// Set first two sets of test data
				setTestdata(set1, kt)
				setTestdata(set2, kt)

				// Remove first set
				err = popTestdata(set1, kt)
				assert.NoError(t, err, "pop test set 1")

				// Set third set of test data
				setTestdata(set3, kt)

				// Check all three test sets
				err = getTestdata(set1, kt, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(set2, kt, false)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata(set3, kt, false)
				assert.NoError(t, err, "get test set 3")

				// Remove second set
				err = popTestdata(set2, kt)
				assert.NoError(t, err, "pop test set 2")

				// Check all three test sets
				err = getTestdata(set1, kt, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(set2, kt, true)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata(set3, kt, false)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				stat := kt.Stat(false)
				assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")
				assert.Equal(t, int64(4194304), stat.NumberOfBuckets, "grown to fit two sets")
				assert.LessOrEqual(t, stat.Load, keyedtable.LoadFactor, "load below load factor")
				assert.Len(t, kt.Values(), test.nTestdata, "all values in snapshot")
			})
		}
	})
}

func TestSortStress(t *testing.T) {
	t.Run("all algorithms agree on large random input", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		original := make([]int, 3000)
		for i := range original {
			original[i] = rnd.Intn(1000)
		}
		want := slices.Clone(original)
		slices.Sort(want)

		for _, algorithm := range sorts.Algorithms {
			s := slices.Clone(original)

			// Execute
			sorts.Sort(algorithm, s, func(a, b int) int { return a - b })

			// Check
			assert.Equalf(t, want, s, "sorted with %s", algorithm)
		}
	})

	t.Run("merge and builtin handle sorted, reversed and equal input", func(t *testing.T) {
		// Prepare
		n := 100000
		inputs := map[string][]int{"sorted": make([]int, n), "reversed": make([]int, n), "equal": make([]int, n)}
		for i := 0; i < n; i++ {
			inputs["sorted"][i] = i
			inputs["reversed"][i] = n - i
			inputs["equal"][i] = 7
		}

		for name, input := range inputs {
			for _, algorithm := range []sorts.Algorithm{sorts.Merge, sorts.Builtin} {
				s := slices.Clone(input)

				// Execute
				sorts.Sort(algorithm, s, func(a, b int) int { return a - b })

				// Check
				assert.Truef(t, slices.IsSorted(s), "%s input sorted with %s", name, algorithm)
			}
		}
	})

	t.Run("binary search finds every element", func(t *testing.T) {
		// Prepare
		n := 100000
		s := make([]int, n)
		for i := range s {
			s[i] = i * 2
		}

		for i := 0; i < n; i++ {
			// Execute
			index, found := sorts.BinarySearchFunc(s, i*2, func(e, target int) int { return e - target })
			_, foundOdd := sorts.BinarySearchFunc(s, i*2+1, func(e, target int) int { return e - target })

			// Check
			if !found || index != i || foundOdd {
				t.Fatalf("binary search failed for %d", i*2)
			}
		}
	})
}

func TestCatalogStress(t *testing.T) {
	t.Run("large book collection", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		c, err := catalog.New(catalog.Options{PasswordCost: bcrypt.MinCost})
		require.NoError(t, err, "create catalog")
		bookCount := 5000

		// Execute
		for i := 0; i < bookCount; i++ {
			_, err = c.AddBook(fmt.Sprintf("Book%d", i), fmt.Sprintf("Author%d", i%100), 2000+i%24)
			require.NoError(t, err, "add book")
		}

		// Check
		assert.Equal(t, bookCount, c.Len(), "all books stored")
		for i := 0; i < 100; i++ {
			n := rnd.Intn(bookCount)
			assert.NotEmptyf(t, c.Search(fmt.Sprintf("Book%d", n)), "search Book%d", n)
			book, err := c.FindExactByTitle(fmt.Sprintf("book%d", n))
			assert.NoErrorf(t, err, "find Book%d", n)
			assert.Equalf(t, fmt.Sprintf("Author%d", n%100), book.Author, "author of Book%d", n)
		}
		for _, algorithm := range []sorts.Algorithm{sorts.Merge, sorts.Insertion, sorts.Builtin} {
			books := c.SortBooks(catalog.ByAuthor, algorithm)
			assert.Truef(t, slices.IsSortedFunc(books, catalog.CompareAuthor), "sorted by author with %s", algorithm)
		}
	})

	t.Run("many users", func(t *testing.T) {
		// Prepare
		c, err := catalog.New(catalog.Options{PasswordCost: bcrypt.MinCost})
		require.NoError(t, err, "create catalog")
		userCount := 2000

		// Execute
		for i := 0; i < userCount; i++ {
			require.NoError(t, c.Register(fmt.Sprintf("user%d", i), fmt.Sprintf("password%d", i)), "register")
		}

		// Check
		assert.Equal(t, userCount+1, c.Users(), "all users and admin")
		for i := 0; i < userCount; i += 97 {
			assert.ErrorIs(t, c.Register(fmt.Sprintf("user%d", i), "again"), catalog.UserExists{}, "duplicate rejected")
			session, err := c.Login(fmt.Sprintf("user%d", i), fmt.Sprintf("password%d", i))
			assert.NoError(t, err, "login")
			assert.True(t, strings.HasPrefix(session.Username, "user"), "session user")
		}
	})
}
