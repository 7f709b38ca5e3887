package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/example/carecompanion/internal/cache"
	"github.com/example/carecompanion/internal/knowledge"
	"github.com/example/carecompanion/internal/observability"
)

// Provider is satisfied by Static and Cached.
type Provider interface {
	Lookup(ctx context.Context, medication string) (knowledge.DrugPricing, bool, error)
}

// Cached stores lookups from Next in a cache, including misses. Cache
// failures are logged and the lookup goes straight to Next.
type Cached struct {
	Next    Provider
	Cache   cache.Cache
	TTL     time.Duration
	Metrics *observability.Metrics
}

type entry struct {
	Found   bool                  `json:"found"`
	Pricing knowledge.DrugPricing `json:"pricing"`
}

func Key(medication string) string {
	return "pricing:v1:" + strings.ToLower(strings.TrimSpace(medication))
}

func (c *Cached) Lookup(ctx context.Context, medication string) (knowledge.DrugPricing, bool, error) {
	logger := observability.LoggerFromContext(ctx)
	key := Key(medication)

	raw, err := c.Cache.Get(ctx, key)
	switch {
	case err == nil:
		var e entry
		if jerr := json.Unmarshal(raw, &e); jerr == nil {
			observability.RecordCacheHit(ctx, c.Metrics, key)
			return e.Pricing, e.Found, nil
		}
		logger.Warn().Str("key", key).Msg("pricing cache: corrupt entry")
	case errors.Is(err, cache.ErrMiss):
		observability.RecordCacheMiss(ctx, c.Metrics, key)
	default:
		logger.Warn().Err(err).Str("key", key).Msg("pricing cache: get failed")
	}

	p, found, err := c.Next.Lookup(ctx, medication)
	if err != nil {
		return knowledge.DrugPricing{}, false, err
	}
	if b, jerr := json.Marshal(entry{Found: found, Pricing: p}); jerr == nil {
		if serr := c.Cache.Set(ctx, key, b, c.TTL); serr != nil {
			logger.Warn().Err(serr).Str("key", key).Msg("pricing cache: set failed")
		}
	}
	return p, found, nil
}
