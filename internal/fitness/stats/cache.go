package stats

import (
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// Cache is the report cache used by the Analyzer. It is deliberately an
// explicit dependency, handed in at construction time.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type FreeCache struct {
	cache      *freecache.Cache
	ttlSeconds int
}

func NewFreeCache(sizeMegabytes, ttlSeconds int) *FreeCache {
	return &FreeCache{
		cache:      freecache.NewCache(sizeMegabytes * 1024 * 1024),
		ttlSeconds: ttlSeconds,
	}
}

func (c *FreeCache) Get(key string) ([]byte, bool) {
	value, err := c.cache.Get([]byte(key))
	if err != nil {
		// freecache returns ErrNotFound for both missing and expired entries
		return nil, false
	}
	return value, true
}

func (c *FreeCache) Set(key string, value []byte) {
	if err := c.cache.Set([]byte(key), value, c.ttlSeconds); err != nil {
		log.Errorf("stats cache, set %s: %s", key, err)
	}
}
