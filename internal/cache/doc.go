// Package cache provides a small generic LRU cache.
//
// Cache evicts the least recently used quarter of its entries once it grows
// past its soft limit. Values are created at most once per key with
// GetOrCreate, even under concurrent use.
//
//	fonts := cache.New[uint64, *Font](16)
//	f, err := fonts.GetOrCreate(key, func() (*Font, error) {
//	    return parse(data)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
