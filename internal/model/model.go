package model

import "github.com/gostonefire/bookshelf/hashfunc"

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted
const RecordDeleted uint8 = 2

// Record - Represents one key/value entry in a bucket
type Record[K comparable, V any] struct {
	State uint8
	Key   K
	Value V
}

// Bucket - Represents all records in a bucket, in insertion order
type Bucket[K comparable, V any] struct {
	BucketNo int64
	Records  []Record[K, V]
}

// StorageParameters - Represents parameters specific for any implementation of storage
//   - CollisionResolutionTechnique is one of the crt constants
//   - NumberOfBuckets is the current table size (always a power of 2)
//   - Occupied is the number of live records
//   - Deleted is the number of tombstones (only Linear Probing leaves tombstones)
//   - InternalAlgorithm is true when the default hash algorithm is in use
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	Occupied                     int64
	Deleted                      int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXX storage constructors and contains configuration
// that affects storage.
//   - NumberOfBuckets is the requested number of buckets, rounded up to nearest 2 to the power of x
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal algorithm
type CRTConf[K comparable] struct {
	NumberOfBuckets int64
	HashAlgorithm   hashfunc.HashAlgorithm[K]
}
