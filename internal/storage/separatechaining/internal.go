package separatechaining

import (
	"fmt"
	"github.com/gostonefire/bookshelf/internal/model"
)

// bucketNo - Returns the bucket for key, panics if a custom hash algorithm returns a bucket outside the table
func (S *SCTable[K, V]) bucketNo(key K) int64 {
	bucketNo := S.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= int64(len(S.buckets)) {
		panic(fmt.Sprintf("hash algorithm returned bucket %d outside table of size %d", bucketNo, len(S.buckets)))
	}

	return bucketNo
}

// indexInChain - Returns the position of key within the chain of bucketNo, or -1 if not present
func (S *SCTable[K, V]) indexInChain(bucketNo int64, key K) int {
	for i, record := range S.buckets[bucketNo] {
		if record.Key == key {
			return i
		}
	}

	return -1
}

// appendRecord - Appends a new record to the chain of bucketNo, the chain is created on first use
func (S *SCTable[K, V]) appendRecord(bucketNo int64, key K, value V) {
	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Record[K, V]{
		State: model.RecordOccupied,
		Key:   key,
		Value: value,
	})
	S.nOccupied++
}
