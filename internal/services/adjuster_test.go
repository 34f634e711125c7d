package services

import (
	"context"
	"errors"
	"testing"
	"traverse-adjustment-service/internal/domain"
)

type memoryCache struct {
	m       map[string]*domain.Adjustment
	gets    int
	puts    int
	failGet bool
	failPut bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{m: map[string]*domain.Adjustment{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) (*domain.Adjustment, bool, error) {
	c.gets++
	if c.failGet {
		return nil, false, errors.New("cache unavailable")
	}
	adj, ok := c.m[key]
	return adj, ok, nil
}

func (c *memoryCache) Put(ctx context.Context, key string, adj *domain.Adjustment) error {
	c.puts++
	if c.failPut {
		return errors.New("cache unavailable")
	}
	c.m[key] = adj
	return nil
}

func TestAdjusterServesRepeatFromCache(t *testing.T) {
	cache := newMemoryCache()
	a := NewAdjuster(cache)
	ctx := context.Background()

	first, err := a.Adjust(ctx, squareTraverse(), AdjustOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Adjust(ctx, squareTraverse(), AdjustOptions{LengthMode: LengthByDistance})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.puts != 1 {
		t.Fatalf("puts = %d, want 1", cache.puts)
	}
	if first != second {
		t.Fatalf("second call did not return the cached adjustment")
	}

	// A different length mode is a different result.
	if _, err := a.Adjust(ctx, squareTraverse(), AdjustOptions{LengthMode: LengthByStationCount}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.puts != 2 {
		t.Fatalf("puts = %d, want 2", cache.puts)
	}
}

func TestAdjusterIgnoresCacheFailures(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet = true
	cache.failPut = true

	adj, err := NewAdjuster(cache).Adjust(context.Background(), squareTraverse(), AdjustOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(adj.Coordinates) != 5 {
		t.Fatalf("len(coordinates) = %d, want 5", len(adj.Coordinates))
	}
}

func TestAdjusterDoesNotCacheErrors(t *testing.T) {
	cache := newMemoryCache()
	tr := squareTraverse()
	tr.Legs = tr.Legs[:2]

	if _, err := NewAdjuster(cache).Adjust(context.Background(), tr, AdjustOptions{}); !errors.Is(err, domain.ErrInsufficientStations) {
		t.Fatalf("err = %v, want ErrInsufficientStations", err)
	}
	if cache.puts != 0 {
		t.Fatalf("puts = %d, want 0", cache.puts)
	}
}

func TestAdjusterWithoutCache(t *testing.T) {
	adj, err := NewAdjuster(nil).Adjust(context.Background(), squareTraverse(), AdjustOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.InitialBearing != 0 {
		t.Fatalf("initial bearing = %v, want 0", adj.InitialBearing)
	}
}

func TestAdjusterKeysOnPropagationMode(t *testing.T) {
	cache := newMemoryCache()
	a := NewAdjuster(cache)
	ctx := context.Background()

	cumulative, err := a.Adjust(ctx, squareTraverse(), AdjustOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reference, err := a.Adjust(ctx, squareTraverse(), AdjustOptions{PropagationMode: PropagateReference})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.puts != 2 {
		t.Fatalf("puts = %d, want 2", cache.puts)
	}
	if cumulative.Legs[1].Bearing != 180 || reference.Legs[1].Bearing != 90 {
		t.Fatalf("bearings = %v / %v, want 180 / 90", cumulative.Legs[1].Bearing, reference.Legs[1].Bearing)
	}
}
