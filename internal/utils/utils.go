package utils

import "math/bits"

// RoundUp2 - Returns the nearest 2 to the power of x that is equal to or bigger than a.
// Values less than 1 give 1.
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	return 1 << bits.Len64(uint64(a-1))
}

// IsPowerOf2 - Returns true if a is a positive power of two
func IsPowerOf2(a int64) bool {
	return a > 0 && a&(a-1) == 0
}

// lowerASCII - Folds an upper case ASCII letter to lower case, all other bytes are returned as is
func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// CompareFoldASCII - Three-way comparison of a and b after folding ASCII letters to lower case.
// Bytes outside A-Z are compared as they are, so non-ASCII text orders by its UTF-8 encoding.
// It returns a negative number if a < b, zero if equal and a positive number if a > b.
func CompareFoldASCII(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
	}

	return len(a) - len(b)
}

// EqualFoldASCII - Returns true if a and b are equal after folding ASCII letters to lower case
func EqualFoldASCII(a, b string) bool {
	return len(a) == len(b) && CompareFoldASCII(a, b) == 0
}

// ContainsFoldASCII - Returns true if substr is within s after folding ASCII letters to lower case
func ContainsFoldASCII(s, substr string) bool {
	if len(substr) == 0 {
		return true
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if EqualFoldASCII(s[i:i+len(substr)], substr) {
			return true
		}
	}

	return false
}
