package hash

import (
	"github.com/gostonefire/bookshelf/internal/utils"
)

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm is implemented using Sum to
// create a hash value over the key and then applying bucket = hash & (actualTableSize - 1) to get the bucket number,
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
type SeparateChainingHashAlgorithm[K comparable] struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[K comparable](tableSize int64) *SeparateChainingHashAlgorithm[K] {
	ha := &SeparateChainingHashAlgorithm[K]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets the table will address
func (O *SeparateChainingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	O.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (O *SeparateChainingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(Sum(key)) & (O.tableSize - 1)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (O *SeparateChainingHashAlgorithm[K]) GetTableSize() int64 {
	return O.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution technique, returns hf1Value
func (O *SeparateChainingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	return hf1Value
}
