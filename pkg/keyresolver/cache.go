package keyresolver

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// CachingResolver wraps a DIDResolver with a TTL cache keyed on the DID,
// so repeated verifications against the same DID do not refetch within
// ttl. Grounded on the teacher's pkg/trust.CachingTrustEvaluator, which
// wraps a trust.Evaluator the same way around jellydator/ttlcache/v3;
// here the cached capability is narrowed from full x509 trust
// evaluation to the single DID-document fetch this engine needs.
type CachingResolver struct {
	inner DIDResolver
	cache *ttlcache.Cache[string, string]
}

// NewCachingResolver wraps inner with a cache of the given ttl. A ttl of
// zero disables caching and every call passes through to inner.
func NewCachingResolver(inner DIDResolver, ttl time.Duration) *CachingResolver {
	c := &CachingResolver{inner: inner}

	if ttl <= 0 {
		return c
	}

	c.cache = ttlcache.New[string, string](
		ttlcache.WithTTL[string, string](ttl),
	)
	go c.cache.Start()

	return c
}

// GetDIDDocument returns the cached DID document for did if present and
// unexpired, otherwise fetches it via inner and populates the cache.
func (c *CachingResolver) GetDIDDocument(ctx context.Context, did string) (string, error) {
	if c.cache == nil {
		return c.inner.GetDIDDocument(ctx, did)
	}

	if item := c.cache.Get(did); item != nil {
		return item.Value(), nil
	}

	doc, err := c.inner.GetDIDDocument(ctx, did)
	if err != nil {
		return "", err
	}

	c.cache.Set(did, doc, ttlcache.DefaultTTL)

	return doc, nil
}

// Stop releases the cache's background eviction goroutine.
func (c *CachingResolver) Stop() {
	if c.cache != nil {
		c.cache.Stop()
	}
}
