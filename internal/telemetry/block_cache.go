package telemetry

import (
	"encoding/binary"
	"encoding/json"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/coocood/freecache"
)

// blockCache keeps fetched summaries keyed by height. Summaries never change
// once fetched, so entries are only dropped by TTL or eviction.
type blockCache struct {
	cache *freecache.Cache
}

func newBlockCache(sizeBytes int) *blockCache {
	if sizeBytes < minBlockCacheBytes {
		sizeBytes = minBlockCacheBytes
	}
	return &blockCache{cache: freecache.NewCache(sizeBytes)}
}

func (c *blockCache) get(height uint64) (model.BlockSummary, bool) {
	raw, err := c.cache.Get(heightKey(height))
	if err != nil {
		return model.BlockSummary{}, false
	}
	var summary model.BlockSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return model.BlockSummary{}, false
	}
	return summary, true
}

func (c *blockCache) set(summary model.BlockSummary) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	_ = c.cache.Set(heightKey(summary.Height), raw, blockCacheTTLSeconds)
}

func (c *blockCache) len() int64 {
	return c.cache.EntryCount()
}

func heightKey(height uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, height)
	return key
}
