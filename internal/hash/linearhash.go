package hash

import (
	"github.com/gostonefire/bookshelf/internal/utils"
)

// LinearProbingHashAlgorithm - The internally used bucket selection algorithm is implemented using Sum to
// create a hash value over the key and then applying bucket = hash & (actualTableSize - 1) to get the bucket number,
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
type LinearProbingHashAlgorithm[K comparable] struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm[K comparable](tableSize int64) *LinearProbingHashAlgorithm[K] {
	ha := &LinearProbingHashAlgorithm[K]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (L *LinearProbingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	L.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(Sum(key)) & (L.tableSize - 1)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm[K]) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) & (L.tableSize - 1)
}
