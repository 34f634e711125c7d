package services

import (
	"context"
	"fmt"
	"log"
	"traverse-adjustment-service/internal/domain"
	"traverse-adjustment-service/internal/ports"
)

// Adjuster runs AdjustTraverse behind an optional result cache.
// The computation is pure, so a cached result is identical to a fresh one.
type Adjuster struct {
	Cache ports.AdjustmentCache
}

func NewAdjuster(cache ports.AdjustmentCache) *Adjuster {
	return &Adjuster{Cache: cache}
}

// Adjust returns the adjustment for t, serving it from the cache when present.
// Cache errors are logged and never fail the request.
func (a *Adjuster) Adjust(ctx context.Context, t domain.Traverse, opts AdjustOptions) (*domain.Adjustment, error) {
	if a.Cache == nil {
		return AdjustTraverse(ctx, t, opts)
	}

	key, err := t.Key(opts.Variant())
	if err != nil {
		return nil, fmt.Errorf("adjust: %w", err)
	}

	if adj, ok, err := a.Cache.Get(ctx, key); err != nil {
		log.Printf("adjustment cache get failed: key=%s err=%v", key, err)
	} else if ok {
		return adj, nil
	}

	adj, err := AdjustTraverse(ctx, t, opts)
	if err != nil {
		return nil, err
	}

	if err := a.Cache.Put(ctx, key, adj); err != nil {
		log.Printf("adjustment cache put failed: key=%s err=%v", key, err)
	}

	return adj, nil
}
