package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"traverse-adjustment-service/internal/domain"
)

// JSON cannot carry +Inf, so a perfect closure is stored as a flag.
type cachedAdjustment struct {
	Adjustment     *domain.Adjustment `json:"adjustment"`
	PerfectClosure bool               `json:"perfect_closure"`
}

func encodeAdjustment(adj *domain.Adjustment) ([]byte, error) {
	if adj == nil {
		return nil, errors.New("encode adjustment: adjustment is nil")
	}

	cp := *adj
	perfect := cp.Accuracy.PerfectClosure()
	if perfect {
		cp.Accuracy.RatioValue = 0
	}

	b, err := json.Marshal(cachedAdjustment{Adjustment: &cp, PerfectClosure: perfect})
	if err != nil {
		return nil, fmt.Errorf("encode adjustment: %w", err)
	}
	return b, nil
}

func decodeAdjustment(b []byte) (*domain.Adjustment, error) {
	var c cachedAdjustment
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode adjustment: %w", err)
	}
	if c.Adjustment == nil {
		return nil, errors.New("decode adjustment: payload has no adjustment")
	}

	if c.PerfectClosure {
		c.Adjustment.Accuracy.RatioValue = math.Inf(1)
	}
	return c.Adjustment, nil
}
