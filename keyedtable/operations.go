package keyedtable

import "github.com/gostonefire/bookshelf/crt"

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is of type crt.NoRecordFound when the key is absent, no other errors are returned
func (T *KeyedTable[K, V]) Get(key K) (value V, err error) {
	record, err := T.storage.Get(key)
	if err != nil {
		return
	}

	value = record.Value

	return
}

// Has - Returns true if key is present in the table
func (T *KeyedTable[K, V]) Has(key K) bool {
	_, err := T.storage.Get(key)
	return err == nil
}

// Put - Updates an existing record with a new value or adds it if no existing is found with same key.
// If the table already holds capacity * LoadFactor records it doubles first and then inserts.
// This happens also when key is already present.
//   - key is the identifier of a record
//   - value is the value to associate with key
func (T *KeyedTable[K, V]) Put(key K, value V) {
	T.ensureRoom()
	T.storage.Set(key, value)
}

// Remove - Removes the record for key if present. The capacity never shrinks.
//
// It returns:
//   - removed is true if a record was removed
func (T *KeyedTable[K, V]) Remove(key K) (removed bool) {
	_, err := T.storage.Delete(key)
	return err == nil
}

// Pop - Returns the value corresponding to key and removes it from the table.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type crt.NoRecordFound when the key is absent
func (T *KeyedTable[K, V]) Pop(key K) (value V, err error) {
	record, err := T.storage.Delete(key)
	if err != nil {
		return
	}

	value = record.Value

	return
}

// Values - Returns a newly allocated slice with every stored value in bucket then chain order.
// The order has no meaning to callers, sort the result if order matters.
func (T *KeyedTable[K, V]) Values() (values []V) {
	records := T.storage.Records()
	values = make([]V, len(records))
	for i, record := range records {
		values[i] = record.Value
	}

	return
}

// Keys - Returns a newly allocated slice with every stored key in the same order as Values
func (T *KeyedTable[K, V]) Keys() (keys []K) {
	records := T.storage.Records()
	keys = make([]K, len(records))
	for i, record := range records {
		keys[i] = record.Key
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (T *KeyedTable[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	sp := T.storage.GetStorageParameters()

	hms := HashMapStat{
		CollisionResolutionTechnique: crt.Name(sp.CollisionResolutionTechnique),
		Records:                      sp.Occupied,
		NumberOfBuckets:              sp.NumberOfBuckets,
		Tombstones:                   sp.Deleted,
		Grows:                        T.grows,
		Load:                         float64(sp.Occupied) / float64(sp.NumberOfBuckets),
	}
	if includeDistribution {
		hms.BucketDistribution = make([]int64, sp.NumberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		bucket, err := T.storage.GetBucket(i)
		if err != nil {
			break
		}
		n := int64(len(bucket.Records))
		hms.LongestChain = max(hms.LongestChain, n)
		if includeDistribution {
			hms.BucketDistribution[i] = n
		}
	}

	hashMapStat = &hms

	return
}
