package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
)

const (
	cacheKeyPrefix   = "pipeline"
	cacheKeySep      = ":"
	defaultCacheTTL  = 30 * time.Minute
	defaultMaxCost   = 1024
	cacheBufferItems = 64

	// Each cached outcome counts as one unit of cost.
	outcomeCost = 1
)

// ResultCache memoizes pipeline outcomes for repeated inputs.
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// CacheConfig configures the result cache.
type CacheConfig struct {
	MaxCost int64
	TTL     time.Duration
}

// NewResultCache creates a ResultCache with the given configuration.
func NewResultCache(config *CacheConfig) (*ResultCache, error) {
	maxCost := int64(defaultMaxCost)
	ttl := defaultCacheTTL

	if config != nil {
		if config.MaxCost > 0 {
			maxCost = config.MaxCost
		}
		if config.TTL > 0 {
			ttl = config.TTL
		}
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &ResultCache{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Get retrieves a cached outcome by key.
func (rc *ResultCache) Get(key string) (*Outcome, bool) {
	value, found := rc.cache.Get(key)
	if !found {
		return nil, false
	}

	outcome, ok := value.(*Outcome)
	if !ok {
		return nil, false
	}
	return outcome, true
}

// Set stores an outcome under the key with the configured TTL.
func (rc *ResultCache) Set(key string, outcome *Outcome) bool {
	if outcome == nil {
		return false
	}
	return rc.cache.SetWithTTL(key, outcome, outcomeCost, rc.ttl)
}

// Wait blocks until pending writes are applied.
func (rc *ResultCache) Wait() {
	rc.cache.Wait()
}

// Close releases cache resources.
func (rc *ResultCache) Close() {
	rc.cache.Close()
}

// cacheKey hashes the normalized input together with the options that
// change the outcome, so equivalent requests share one entry.
func cacheKey(input string, opts Options) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(input)), " ")

	var b strings.Builder
	b.WriteString(normalized)
	b.WriteString(cacheKeySep)
	if opts.UseTemplate {
		b.WriteString("t")
	}
	b.WriteString(cacheKeySep)
	if opts.Enhance {
		b.WriteString("e")
		b.WriteString(cacheKeySep)
		b.WriteString(string(opts.Style))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return cacheKeyPrefix + cacheKeySep + hex.EncodeToString(sum[:])
}
