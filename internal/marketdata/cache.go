package marketdata

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"corrdash/internal/domain"
)

// Cache stores fetched price series in SQLite with TTL-based expiry.
// Keys combine symbol and date range so overlapping requests never alias.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewCache creates a cache on the given database, creating its table if
// needed. ttl controls how long entries stay fresh.
func NewCache(db *sql.DB, ttl time.Duration) (*Cache, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS price_series (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Key builds the cache key for a symbol and date range.
func Key(symbol string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// Get returns the cached series for key. The second return value is false if
// the key is absent or expired.
func (c *Cache) Get(key string) (domain.PriceSeries, bool) {
	var series domain.PriceSeries

	var value []byte
	var expiresAt int64
	err := c.db.QueryRow("SELECT value, expires_at FROM price_series WHERE key = ?", key).
		Scan(&value, &expiresAt)
	if err != nil {
		return series, false
	}
	if time.Now().Unix() >= expiresAt {
		return series, false
	}
	if err := msgpack.Unmarshal(value, &series); err != nil {
		return series, false
	}
	return series, true
}

// Set stores a series under key with the cache's TTL.
func (c *Cache) Set(key string, series domain.PriceSeries) error {
	value, err := msgpack.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to encode series: %w", err)
	}

	expiresAt := time.Now().Add(c.ttl).Unix()
	_, err = c.db.Exec(`
		INSERT INTO price_series (key, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, key, value, expiresAt)
	return err
}

// PruneExpired deletes all expired entries and returns how many were removed.
func (c *Cache) PruneExpired() (int64, error) {
	res, err := c.db.Exec("DELETE FROM price_series WHERE expires_at <= ?", time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
