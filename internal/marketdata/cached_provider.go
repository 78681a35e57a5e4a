package marketdata

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"corrdash/internal/domain"
)

// CachedProvider decorates a Provider with the SQLite series cache.
// Successful fetches are written through; cache failures only log, the
// underlying provider result always wins.
type CachedProvider struct {
	provider Provider
	cache    *Cache
	log      zerolog.Logger
}

// NewCachedProvider wraps provider with cache.
func NewCachedProvider(provider Provider, cache *Cache, log zerolog.Logger) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
		log:      log.With().Str("component", "cached_provider").Logger(),
	}
}

// Fetch returns the cached series when fresh, otherwise delegates to the
// wrapped provider and caches the result. Empty series are not cached so a
// transient upstream gap does not stick for a full TTL.
func (p *CachedProvider) Fetch(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	key := Key(symbol, start, end)

	if series, ok := p.cache.Get(key); ok {
		p.log.Debug().Str("symbol", symbol).Msg("Cache hit")
		return series, nil
	}

	series, err := p.provider.Fetch(ctx, symbol, start, end)
	if err != nil {
		return series, err
	}

	if !series.Empty() {
		if err := p.cache.Set(key, series); err != nil {
			p.log.Warn().Err(err).Str("symbol", symbol).Msg("Failed to cache series")
		}
	}
	return series, nil
}
