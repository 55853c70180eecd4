//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRoundUp2(t *testing.T) {
	t.Run("rounds up to nearest power of two", func(t *testing.T) {
		// Prepare
		tests := map[int64]int64{-5: 1, 0: 1, 1: 1, 2: 2, 3: 4, 10: 16, 16: 16, 17: 32, 1000: 1024}

		for in, want := range tests {
			// Execute
			got := RoundUp2(in)

			// Check
			assert.Equalf(t, want, got, "RoundUp2(%d)", in)
			assert.Truef(t, IsPowerOf2(got), "result of RoundUp2(%d) is a power of two", in)
		}
	})
}

func TestIsPowerOf2(t *testing.T) {
	t.Run("detects powers of two", func(t *testing.T) {
		// Check
		assert.True(t, IsPowerOf2(1), "1 is a power of two")
		assert.True(t, IsPowerOf2(64), "64 is a power of two")
		assert.False(t, IsPowerOf2(0), "0 is not a power of two")
		assert.False(t, IsPowerOf2(12), "12 is not a power of two")
	})
}

func TestCompareFoldASCII(t *testing.T) {
	t.Run("ignores ASCII case", func(t *testing.T) {
		// Check
		assert.Zero(t, CompareFoldASCII("Alpha", "aLPHA"), "equal ignoring case")
		assert.Negative(t, CompareFoldASCII("alpha", "Beta"), "alpha before Beta")
		assert.Positive(t, CompareFoldASCII("Zeta", "mu"), "Zeta after mu")
	})

	t.Run("shorter prefix orders first", func(t *testing.T) {
		// Check
		assert.Negative(t, CompareFoldASCII("Dune", "dune messiah"), "prefix first")
		assert.Positive(t, CompareFoldASCII("dune messiah", "DUNE"), "longer last")
		assert.Zero(t, CompareFoldASCII("", ""), "empty strings equal")
	})

	t.Run("does not fold non-ASCII letters", func(t *testing.T) {
		// Check
		assert.NotZero(t, CompareFoldASCII("Ä", "ä"), "non-ASCII compared bytewise")
	})
}

func TestContainsFoldASCII(t *testing.T) {
	t.Run("finds substrings ignoring case", func(t *testing.T) {
		// Check
		assert.True(t, ContainsFoldASCII("The Hobbit", "HOBB"), "found in the middle")
		assert.True(t, ContainsFoldASCII("The Hobbit", ""), "empty substring always found")
		assert.False(t, ContainsFoldASCII("The Hobbit", "rings"), "not found")
		assert.False(t, ContainsFoldASCII("abc", "abcd"), "longer substring not found")
		assert.True(t, EqualFoldASCII("MU", "mu"), "equal fold")
	})
}
