package openaddressing

import (
	"fmt"
	"github.com/gostonefire/bookshelf/crt"
	"github.com/gostonefire/bookshelf/hashfunc"
	"github.com/gostonefire/bookshelf/internal/hash"
	"github.com/gostonefire/bookshelf/internal/model"
)

// OATable - Represents an in memory implementation of the Linear Probing (Open Addressing) Collision Resolution
// Technique. Each bucket holds at most one record. In case of a collision it probes through the table one bucket
// at a time looking for an empty slot. Deleted records leave a tombstone so that probe sequences passing them
// stay intact, tombstones are reused by later inserts and purged on Rehash.
//
// The table never grows by itself, the owner must call Rehash before it runs out of empty buckets.
type OATable[K comparable, V any] struct {
	records           []model.Record[K, V]
	hashAlgorithm     hashfunc.HashAlgorithm[K]
	internalAlgorithm bool
	nOccupied         int64
	nDeleted          int64
}

// NewOATable - Returns a pointer to a new instance of the Linear Probing implementation.
//   - crtConf is a model.CRTConf struct providing the initial number of buckets and an optional hash algorithm
//
// It returns:
//   - oaTable which is a pointer to the created instance
func NewOATable[K comparable, V any](crtConf model.CRTConf[K]) (oaTable *OATable[K, V]) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm[K](crtConf.NumberOfBuckets)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	oaTable = &OATable[K, V]{
		records:           make([]model.Record[K, V], crtConf.HashAlgorithm.GetTableSize()),
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (O *OATable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		NumberOfBuckets:              int64(len(O.records)),
		Occupied:                     O.nOccupied,
		Deleted:                      O.nDeleted,
		InternalAlgorithm:            O.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a bucket given the bucket number, it holds one record if the bucket is occupied and
// none otherwise.
//   - bucketNo is the identifier of a bucket
func (O *OATable[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= int64(len(O.records)) {
		err = fmt.Errorf("bucket number %d out of range [0, %d)", bucketNo, len(O.records))
		return
	}

	bucket.BucketNo = bucketNo
	if O.records[bucketNo].State == model.RecordOccupied {
		bucket.Records = []model.Record[K, V]{O.records[bucketNo]}
	}

	return
}

// Get - Gets record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is the matching record if found
//   - err is of type crt.NoRecordFound if the key is not present
func (O *OATable[K, V]) Get(key K) (record model.Record[K, V], err error) {
	probe, found := O.find(key)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	record = O.records[probe]

	return
}

// Set - Updates an existing record with new value or adds a new record in the first free bucket along the probe
// sequence, where a tombstone counts as free.
//   - key is the identifier of a record
//   - value is the value to store along with key
//
// It returns:
//   - added is true if a new record was added and false if an existing was updated
func (O *OATable[K, V]) Set(key K, value V) (added bool) {
	probe, found := O.find(key)
	if found {
		O.records[probe].Value = value
		return
	}

	probe = O.freeSlot(key)
	if O.records[probe].State == model.RecordDeleted {
		O.nDeleted--
	}
	O.records[probe] = model.Record[K, V]{State: model.RecordOccupied, Key: key, Value: value}
	O.nOccupied++
	added = true

	return
}

// Delete - Removes the record that corresponds to key, leaving a tombstone in its bucket.
//   - key is the identifier of a record
//
// It returns:
//   - record is the removed record
//   - err is of type crt.NoRecordFound if the key is not present
func (O *OATable[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	probe, found := O.find(key)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	record = O.records[probe]
	O.records[probe] = model.Record[K, V]{State: model.RecordDeleted}
	O.nOccupied--
	O.nDeleted++

	return
}

// Records - Returns a new slice with all live records in bucket order
func (O *OATable[K, V]) Records() (records []model.Record[K, V]) {
	records = make([]model.Record[K, V], 0, O.nOccupied)
	for _, record := range O.records {
		if record.State == model.RecordOccupied {
			records = append(records, record)
		}
	}

	return
}

// Rehash - Allocates a new bucket array and reinserts every live record, tombstones are dropped.
//   - numberOfBuckets is the new requested table size, it may equal the current size to only purge tombstones
func (O *OATable[K, V]) Rehash(numberOfBuckets int64) {
	old := O.records

	O.hashAlgorithm.SetTableSize(numberOfBuckets)
	O.records = make([]model.Record[K, V], O.hashAlgorithm.GetTableSize())
	O.nOccupied = 0
	O.nDeleted = 0

	for _, record := range old {
		if record.State == model.RecordOccupied {
			O.records[O.freeSlot(record.Key)] = record
			O.nOccupied++
		}
	}
}
