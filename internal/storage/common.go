package storage

import (
	"github.com/gostonefire/bookshelf/internal/model"
)

// Storage - Interface for any collision resolution technique implementation backing a KeyedTable.
// Implementations are not safe for concurrent use.
type Storage[K comparable, V any] interface {
	// Get - Returns the record for key, or an error of type crt.NoRecordFound
	Get(key K) (record model.Record[K, V], err error)
	// Set - Overwrites the value of an existing record with key or adds a new record, added reports which.
	Set(key K, value V) (added bool)
	// Delete - Removes the record for key and returns it, or returns an error of type crt.NoRecordFound
	Delete(key K) (record model.Record[K, V], err error)
	// Records - Returns all live records in bucket order (and chain order within a bucket)
	Records() []model.Record[K, V]
	// GetBucket - Returns the live records in bucket bucketNo
	GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error)
	// Rehash - Reallocates the table with numberOfBuckets buckets (rounded up to a power of 2) and
	// reinserts every live record at its new position.
	Rehash(numberOfBuckets int64)
	// GetStorageParameters - Returns current sizing and occupancy
	GetStorageParameters() (params model.StorageParameters)
}
