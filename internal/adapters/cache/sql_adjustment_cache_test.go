package cache

import (
	"context"
	"testing"
	"time"
	"traverse-adjustment-service/internal/platform/db"
)

func newSQLiteCache(t *testing.T, ttl time.Duration) *SQLAdjustmentCache {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := InitSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	// Schema creation is idempotent.
	if err := InitSchema(conn); err != nil {
		t.Fatalf("init schema twice: %v", err)
	}

	return NewSQLAdjustmentCache(conn, db.DriverSQLite, ttl)
}

func TestSQLAdjustmentCacheRoundTrip(t *testing.T) {
	c := newSQLiteCache(t, 0)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v, want miss", ok, err)
	}

	want := sampleAdjustment()
	if err := c.Put(ctx, "k1", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Accuracy != want.Accuracy || got.TraverseLength != want.TraverseLength {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSQLAdjustmentCacheOverwrite(t *testing.T) {
	c := newSQLiteCache(t, 0)
	ctx := context.Background()

	first := sampleAdjustment()
	if err := c.Put(ctx, "k", first); err != nil {
		t.Fatalf("put: %v", err)
	}

	second := sampleAdjustment()
	second.InitialBearing = 271.5
	if err := c.Put(ctx, "k", second); err != nil {
		t.Fatalf("put again: %v", err)
	}

	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.InitialBearing != 271.5 {
		t.Fatalf("initial bearing = %v, want 271.5", got.InitialBearing)
	}
}

func TestSQLAdjustmentCacheExpiry(t *testing.T) {
	c := newSQLiteCache(t, time.Minute)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	if err := c.Put(ctx, "k", sampleAdjustment()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatalf("fresh entry missed")
	}

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expired entry: ok=%v err=%v, want miss", ok, err)
	}
}

func TestSQLAdjustmentCacheNilDB(t *testing.T) {
	c := &SQLAdjustmentCache{}
	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
