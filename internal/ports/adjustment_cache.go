package ports

import (
	"context"
	"traverse-adjustment-service/internal/domain"
)

// Contract for memoising computed adjustments by input key.
// A cache stores derived results only; a miss is never an error.
type AdjustmentCache interface {
	// Return the cached adjustment for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (adj *domain.Adjustment, ok bool, err error)
	// Store the adjustment computed for key.
	Put(ctx context.Context, key string, adj *domain.Adjustment) error
}
