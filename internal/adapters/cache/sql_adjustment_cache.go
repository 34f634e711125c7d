package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"traverse-adjustment-service/internal/domain"
	"traverse-adjustment-service/internal/platform/obs"

	"github.com/jmoiron/sqlx"
)

// SQLAdjustmentCache is a SQL-backed cache for computed adjustments.
// Queries are written with "?" placeholders and rebound for the driver,
// so the same cache runs on Postgres (pgx) and SQLite.
type SQLAdjustmentCache struct {
	DB  *sqlx.DB
	TTL time.Duration

	now func() time.Time
}

func NewSQLAdjustmentCache(db *sql.DB, driverName string, ttl time.Duration) *SQLAdjustmentCache {
	return &SQLAdjustmentCache{
		DB:  sqlx.NewDb(db, driverName),
		TTL: ttl,
		now: time.Now,
	}
}

func (s *SQLAdjustmentCache) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Fetch a cached adjustment that has not expired.
func (s *SQLAdjustmentCache) Get(ctx context.Context, key string) (_ *domain.Adjustment, _ bool, err error) {
	defer obs.Time(ctx, "adjustment.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("sql adjustment cache: db is nil")
	}
	if key == "" {
		return nil, false, errors.New("get adjustment cache: key must not be empty")
	}

	q := s.DB.Rebind(`
	SELECT payload
	FROM adjustment_cache
	WHERE cache_key = ?
		AND (expires_at = 0 OR expires_at > ?);
	`)

	var payload string
	err = s.DB.GetContext(ctx, &payload, q, key, s.clock().Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get adjustment cache: query adjustment_cache table: %w", err)
	}

	adj, err := decodeAdjustment([]byte(payload))
	if err != nil {
		return nil, false, fmt.Errorf("get adjustment cache: %w", err)
	}
	return adj, true, nil
}

// Store or replace the cached adjustment for key.
func (s *SQLAdjustmentCache) Put(ctx context.Context, key string, adj *domain.Adjustment) (err error) {
	defer obs.Time(ctx, "adjustment.cache.sql.Put")(&err)

	if s.DB == nil {
		return errors.New("sql adjustment cache: db is nil")
	}
	if key == "" {
		return errors.New("insert adjustment cache: key must not be empty")
	}

	b, err := encodeAdjustment(adj)
	if err != nil {
		return fmt.Errorf("insert adjustment cache: %w", err)
	}

	var expiresAt int64
	if s.TTL > 0 {
		expiresAt = s.clock().Add(s.TTL).Unix()
	}

	q := s.DB.Rebind(`
	INSERT INTO adjustment_cache (cache_key, payload, expires_at)
	VALUES (?, ?, ?)
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = excluded.payload,
		expires_at = excluded.expires_at;
	`)

	if _, err := s.DB.ExecContext(ctx, q, key, string(b), expiresAt); err != nil {
		return fmt.Errorf("insert adjustment cache key=%q: %w", key, err)
	}
	return nil
}
