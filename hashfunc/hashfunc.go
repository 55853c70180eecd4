package hashfunc

// HashAlgorithm - Interface that permits a user of the KeyedTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm[K comparable] interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the table is created and every time it grows. Implementations that round the
	// requested size (for instance up to nearest 2 to the power of x) must report the rounded value in GetTableSize.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in a panic down stream.
	HashFunc1(key K) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns the bucket to visit in iteration given the value from HashFunc1.
	// It is only used by the Linear Probing Collision Resolution Technique, where iteration 0 must
	// return hf1Value and iterations 0 -> table size - 1 must visit every bucket exactly once.
	ProbeIteration(hf1Value, iteration int64) int64
}
