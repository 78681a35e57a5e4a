package marketdata

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"corrdash/internal/universe"
)

// SyncJob prefetches the whole ticker universe into the cache so the
// centrality panel does not pay N sequential upstream fetches on first use.
// It implements scheduler.Job and is optional: the request path works the
// same without it, just colder.
type SyncJob struct {
	provider     *CachedProvider
	universe     *universe.Universe
	lookbackDays int
	log          zerolog.Logger
}

// NewSyncJob creates a universe prefetch job.
func NewSyncJob(provider *CachedProvider, u *universe.Universe, lookbackDays int, log zerolog.Logger) *SyncJob {
	return &SyncJob{
		provider:     provider,
		universe:     u,
		lookbackDays: lookbackDays,
		log:          log.With().Str("job", "price_sync").Logger(),
	}
}

// Name returns the job name for scheduler logging.
func (j *SyncJob) Name() string { return "price_sync" }

// Run fetches every universe symbol sequentially. Per-symbol failures are
// logged and skipped so one dead ticker does not starve the rest.
func (j *SyncJob) Run() error {
	end := time.Now()
	start := end.AddDate(0, 0, -j.lookbackDays)
	ctx := context.Background()

	synced := 0
	for _, symbol := range j.universe.Symbols() {
		series, err := j.provider.Fetch(ctx, symbol, start, end)
		if err != nil {
			j.log.Warn().Err(err).Str("symbol", symbol).Msg("Prefetch failed")
			continue
		}
		if series.Empty() {
			j.log.Debug().Str("symbol", symbol).Msg("Prefetch returned no data")
			continue
		}
		synced++
	}

	j.log.Info().Int("synced", synced).Int("universe", j.universe.Size()).Msg("Universe price sync completed")
	return nil
}
