package openaddressing

import (
	"fmt"
	"github.com/gostonefire/bookshelf/internal/model"
)

// homeBucket - Returns the first bucket in the probe sequence of key
func (O *OATable[K, V]) homeBucket(key K) int64 {
	bucketNo := O.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= int64(len(O.records)) {
		panic(fmt.Sprintf("hash algorithm returned bucket %d outside table of size %d", bucketNo, len(O.records)))
	}

	return bucketNo
}

// find - Walks the probe sequence of key until the key, an empty bucket or the whole table has been visited
func (O *OATable[K, V]) find(key K) (probe int64, found bool) {
	home := O.homeBucket(key)
	tableSize := int64(len(O.records))
	for i := int64(0); i < tableSize; i++ {
		probe = O.hashAlgorithm.ProbeIteration(home, i)
		switch O.records[probe].State {
		case model.RecordEmpty:
			return
		case model.RecordOccupied:
			if O.records[probe].Key == key {
				found = true
				return
			}
		}
	}

	return
}

// freeSlot - Returns the first empty or deleted bucket in the probe sequence of key.
// Running out of buckets means the owner broke the load factor contract, hence the panic.
func (O *OATable[K, V]) freeSlot(key K) int64 {
	home := O.homeBucket(key)
	tableSize := int64(len(O.records))
	for i := int64(0); i < tableSize; i++ {
		probe := O.hashAlgorithm.ProbeIteration(home, i)
		if O.records[probe].State != model.RecordOccupied {
			return probe
		}
	}

	panic(fmt.Sprintf("linear probing table of size %d has no free bucket", tableSize))
}
