package separatechaining

import (
	"fmt"
	"github.com/gostonefire/bookshelf/crt"
	"github.com/gostonefire/bookshelf/hashfunc"
	"github.com/gostonefire/bookshelf/internal/hash"
	"github.com/gostonefire/bookshelf/internal/model"
	"slices"
)

// SCTable - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket is a chain of records that is allocated the first time a record hashes to it. Colliding keys
// are appended to the chain, so records within one chain are in insertion order.
type SCTable[K comparable, V any] struct {
	buckets           [][]model.Record[K, V]
	hashAlgorithm     hashfunc.HashAlgorithm[K]
	internalAlgorithm bool
	nOccupied         int64
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining implementation.
//   - crtConf is a model.CRTConf struct providing the initial number of buckets and an optional hash algorithm
//
// It returns:
//   - scTable which is a pointer to the created instance
func NewSCTable[K comparable, V any](crtConf model.CRTConf[K]) (scTable *SCTable[K, V]) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm[K](crtConf.NumberOfBuckets)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	scTable = &SCTable[K, V]{
		buckets:           make([][]model.Record[K, V], crtConf.HashAlgorithm.GetTableSize()),
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		NumberOfBuckets:              int64(len(S.buckets)),
		Occupied:                     S.nOccupied,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a bucket with its records given the bucket number
//   - bucketNo is the identifier of a bucket
//
// It returns:
//   - bucket is a model.Bucket holding a copy of the chain
//   - err is a standard error if bucketNo is out of range
func (S *SCTable[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= int64(len(S.buckets)) {
		err = fmt.Errorf("bucket number %d out of range [0, %d)", bucketNo, len(S.buckets))
		return
	}

	bucket = model.Bucket[K, V]{
		BucketNo: bucketNo,
		Records:  slices.Clone(S.buckets[bucketNo]),
	}

	return
}

// Get - Gets record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is the matching record if found
//   - err is of type crt.NoRecordFound if the key is not present
func (S *SCTable[K, V]) Get(key K) (record model.Record[K, V], err error) {
	bucketNo := S.bucketNo(key)
	i := S.indexInChain(bucketNo, key)
	if i < 0 {
		err = crt.NoRecordFound{}
		return
	}

	record = S.buckets[bucketNo][i]

	return
}

// Set - Updates an existing record with new value or appends a new record to the chain if no existing is
// found with same key.
//   - key is the identifier of a record
//   - value is the value to store along with key
//
// It returns:
//   - added is true if a new record was appended and false if an existing was updated
func (S *SCTable[K, V]) Set(key K, value V) (added bool) {
	bucketNo := S.bucketNo(key)
	if i := S.indexInChain(bucketNo, key); i >= 0 {
		S.buckets[bucketNo][i].Value = value
		return
	}

	S.appendRecord(bucketNo, key, value)
	added = true

	return
}

// Delete - Removes the record that corresponds to key from its chain.
//   - key is the identifier of a record
//
// It returns:
//   - record is the removed record
//   - err is of type crt.NoRecordFound if the key is not present
func (S *SCTable[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	bucketNo := S.bucketNo(key)
	i := S.indexInChain(bucketNo, key)
	if i < 0 {
		err = crt.NoRecordFound{}
		return
	}

	record = S.buckets[bucketNo][i]
	S.buckets[bucketNo] = slices.Delete(S.buckets[bucketNo], i, i+1)
	S.nOccupied--

	return
}

// Records - Returns a new slice with all records, bucket by bucket and in chain order within each bucket
func (S *SCTable[K, V]) Records() (records []model.Record[K, V]) {
	records = make([]model.Record[K, V], 0, S.nOccupied)
	for _, chain := range S.buckets {
		records = append(records, chain...)
	}

	return
}

// Rehash - Allocates a new bucket array and reinserts every record since the bucket number of a key
// depends on the table size.
//   - numberOfBuckets is the new requested table size
func (S *SCTable[K, V]) Rehash(numberOfBuckets int64) {
	old := S.buckets

	S.hashAlgorithm.SetTableSize(numberOfBuckets)
	S.buckets = make([][]model.Record[K, V], S.hashAlgorithm.GetTableSize())
	S.nOccupied = 0

	for _, chain := range old {
		for _, record := range chain {
			S.appendRecord(S.bucketNo(record.Key), record.Key, record.Value)
		}
	}
}
