package services

import (
	"fmt"
	"traverse-adjustment-service/internal/domain"
)

// Result of distributing the angular misclosure of a closed traverse.
type AngleAdjustment struct {
	AngleSum        float64
	ExpectedSum     float64
	ClosingError    float64
	CorrectedAngles []float64
}

// AdjustAngles compares the interior angle sum with (n-2)*180 and spreads
// the difference equally over all n angles.
//
// The correction is not weighted by leg length or observation quality.
func AdjustAngles(angles []float64) (AngleAdjustment, error) {
	n := len(angles)
	if n < 3 {
		return AngleAdjustment{}, fmt.Errorf("adjust angles: n=%d: %w", n, domain.ErrInsufficientStations)
	}

	angleSum := 0.0
	for _, a := range angles {
		angleSum += a
	}

	expectedSum := float64(n-2) * 180
	closingError := expectedSum - angleSum
	perAngle := closingError / float64(n)

	corrected := make([]float64, n)
	for i, a := range angles {
		corrected[i] = a + perAngle
	}

	return AngleAdjustment{
		AngleSum:        angleSum,
		ExpectedSum:     expectedSum,
		ClosingError:    closingError,
		CorrectedAngles: corrected,
	}, nil
}
