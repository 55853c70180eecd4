// Package keyedtable implements an in memory hash table with explicit collision resolution and
// doubling growth. It is not safe for concurrent use.
package keyedtable

import (
	"github.com/gostonefire/bookshelf/crt"
	"github.com/gostonefire/bookshelf/hashfunc"
	"github.com/gostonefire/bookshelf/internal/model"
	"github.com/gostonefire/bookshelf/internal/storage"
	"github.com/gostonefire/bookshelf/internal/storage/openaddressing"
	"github.com/gostonefire/bookshelf/internal/storage/separatechaining"
)

// DefaultInitialCapacity - Number of buckets a table starts with unless told otherwise
const DefaultInitialCapacity int64 = 16

// LoadFactor - Ratio of records to buckets at which the table doubles before the next insertion
const LoadFactor = 0.75

// Options - Configuration for NewWithOptions, Go zero values give the defaults
//   - InitialCapacity is the initial number of buckets, rounded up to nearest 2 to the power of x (default 16)
//   - CollisionResolutionTechnique is crt.SeparateChaining (default) or crt.LinearProbing
//   - HashAlgorithm is an optional custom bucket selection algorithm
type Options[K comparable] struct {
	InitialCapacity              int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm[K]
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the current capacity
//   - Tombstones is the number of deleted records still occupying a bucket (Linear Probing only)
//   - Grows is the number of times the table has doubled
//   - LongestChain is the highest number of records in a single bucket
//   - Load is Records divided by NumberOfBuckets
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	CollisionResolutionTechnique string  `json:"technique" yaml:"technique"`
	Records                      int64   `json:"records" yaml:"records"`
	NumberOfBuckets              int64   `json:"buckets" yaml:"buckets"`
	Tombstones                   int64   `json:"tombstones" yaml:"tombstones"`
	Grows                        int64   `json:"grows" yaml:"grows"`
	LongestChain                 int64   `json:"longest_chain" yaml:"longest_chain"`
	Load                         float64 `json:"load" yaml:"load"`
	BucketDistribution           []int64 `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

// KeyedTable - The main implementation struct
type KeyedTable[K comparable, V any] struct {
	storage   storage.Storage[K, V]
	technique int
	grows     int64
}

// New - Returns a new empty table with 16 buckets using Separate Chaining and the internal hash algorithm
func New[K comparable, V any]() *KeyedTable[K, V] {
	keyedTable, _ := NewWithOptions[K, V](Options[K]{})
	return keyedTable
}

// NewWithOptions - Returns a new empty table configured by opts.
//   - opts is an Options struct, see Options for defaults
//
// It returns:
//   - keyedTable is a pointer to a KeyedTable struct
//   - err is of type crt.UnknownTechnique if opts names an unsupported collision resolution technique
func NewWithOptions[K comparable, V any](opts Options[K]) (keyedTable *KeyedTable[K, V], err error) {
	if opts.InitialCapacity <= 0 {
		opts.InitialCapacity = DefaultInitialCapacity
	}
	if opts.CollisionResolutionTechnique == 0 {
		opts.CollisionResolutionTechnique = crt.SeparateChaining
	}

	crtConf := model.CRTConf[K]{
		NumberOfBuckets: opts.InitialCapacity,
		HashAlgorithm:   opts.HashAlgorithm,
	}

	var s storage.Storage[K, V]
	switch opts.CollisionResolutionTechnique {
	case crt.SeparateChaining:
		s = separatechaining.NewSCTable[K, V](crtConf)
	case crt.LinearProbing:
		s = openaddressing.NewOATable[K, V](crtConf)
	default:
		err = crt.UnknownTechnique{}
		return
	}

	keyedTable = &KeyedTable[K, V]{
		storage:   s,
		technique: opts.CollisionResolutionTechnique,
	}

	return
}

// Len - Returns the number of records in the table
func (T *KeyedTable[K, V]) Len() int {
	return int(T.storage.GetStorageParameters().Occupied)
}

// Capacity - Returns the current number of buckets, always a power of 2
func (T *KeyedTable[K, V]) Capacity() int64 {
	return T.storage.GetStorageParameters().NumberOfBuckets
}

// Technique - Returns the collision resolution technique in use, one of the crt constants
func (T *KeyedTable[K, V]) Technique() int {
	return T.technique
}

// ensureRoom - Restores the load factor before an insertion.
// The table doubles when the live records reach the threshold. With Linear Probing, tombstones also consume
// buckets, so when live records plus tombstones reach the threshold the table is rehashed at the same capacity.
func (T *KeyedTable[K, V]) ensureRoom() {
	sp := T.storage.GetStorageParameters()
	threshold := float64(sp.NumberOfBuckets) * LoadFactor

	switch {
	case float64(sp.Occupied) >= threshold:
		T.storage.Rehash(sp.NumberOfBuckets * 2)
		T.grows++
	case float64(sp.Occupied+sp.Deleted) >= threshold:
		T.storage.Rehash(sp.NumberOfBuckets)
	}
}

