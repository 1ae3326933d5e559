package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedQuery holds one rendered statement. Args are cached alongside the
// SQL because statement fingerprints cover bound values: a hit means both
// the text and the argument list are the ones rendered for that tree.
type CachedQuery struct {
	SQL  string
	Args []any
}

type QueryCache interface {
	Get(fingerprint uint64) (*CachedQuery, bool)
	Set(fingerprint uint64, q *CachedQuery)
}

type lruQueryCache struct {
	cache *lru.Cache[uint64, *CachedQuery]
}

const defaultQueryCacheSize = 1024

func NewQueryCache(size int) QueryCache {
	if size <= 0 {
		size = defaultQueryCacheSize
	}
	cache, _ := lru.New[uint64, *CachedQuery](size)
	return &lruQueryCache{cache: cache}
}

func (c *lruQueryCache) Get(fingerprint uint64) (*CachedQuery, bool) {
	return c.cache.Get(fingerprint)
}

func (c *lruQueryCache) Set(fingerprint uint64, q *CachedQuery) {
	c.cache.Add(fingerprint, q)
}
