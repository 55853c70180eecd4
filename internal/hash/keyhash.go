package hash

import (
	"hash/crc32"
	"hash/maphash"
)

// seed - Process wide seed for keys that are neither strings nor nil, all tables in one process agree on it
var seed = maphash.MakeSeed()

// Sum - Returns a 32 bit hash value for key.
//   - a nil interface key always hashes to 0
//   - string keys are hashed with crc32.ChecksumIEEE over their bytes, hence stable between runs
//   - all other comparable keys are hashed with maphash.Comparable, stable within one process
func Sum[K comparable](key K) uint32 {
	switch k := any(key).(type) {
	case nil:
		return 0
	case string:
		return crc32.ChecksumIEEE([]byte(k))
	default:
		h := maphash.Comparable(seed, key)
		return uint32(h ^ h>>32)
	}
}
