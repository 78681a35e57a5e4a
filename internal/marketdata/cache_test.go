package marketdata

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"corrdash/internal/domain"
)

func setupCacheDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleSeries(symbol string) domain.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.PriceSeries{
		Symbol: symbol,
		Points: []domain.PricePoint{
			{Time: start, Close: 100},
			{Time: start.AddDate(0, 0, 1), Close: 101.5},
		},
	}
}

func TestCache_RoundTrip(t *testing.T) {
	cache, err := NewCache(setupCacheDB(t), time.Hour)
	require.NoError(t, err)

	key := Key("AAPL", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, cache.Set(key, sampleSeries("AAPL")))

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, "AAPL", got.Symbol)
	require.Len(t, got.Points, 2)
	assert.Equal(t, 101.5, got.Points[1].Close)
	assert.True(t, got.Points[0].Time.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	cache, err := NewCache(setupCacheDB(t), time.Hour)
	require.NoError(t, err)

	_, ok := cache.Get("AAPL|2024-01-01|2024-06-01")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryIsMiss(t *testing.T) {
	cache, err := NewCache(setupCacheDB(t), -time.Minute) // already expired on write
	require.NoError(t, err)

	key := Key("MSFT", time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, cache.Set(key, sampleSeries("MSFT")))

	_, ok := cache.Get(key)
	assert.False(t, ok)
}

func TestCache_KeySeparatesRanges(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	key1 := Key("AAPL", start, start.AddDate(0, 1, 0))
	key2 := Key("AAPL", start, start.AddDate(0, 2, 0))
	key3 := Key("MSFT", start, start.AddDate(0, 1, 0))

	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, key1, key3)
}

func TestCache_PruneExpired(t *testing.T) {
	db := setupCacheDB(t)
	expired, err := NewCache(db, -time.Minute)
	require.NoError(t, err)
	fresh, err := NewCache(db, time.Hour)
	require.NoError(t, err)

	require.NoError(t, expired.Set("old", sampleSeries("OLD")))
	require.NoError(t, fresh.Set("new", sampleSeries("NEW")))

	removed, err := fresh.PruneExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, ok := fresh.Get("new")
	assert.True(t, ok)
}
