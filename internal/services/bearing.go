package services

import (
	"fmt"
	"math"
	"traverse-adjustment-service/internal/domain"
)

// InitialBearing returns the whole-circle bearing from station1 to station2 in degrees.
//
// Bearings are measured clockwise from north, so atan2 takes the easting
// difference as its first argument. The result lies in [0, 360).
// Coincident stations yield 0; use ValidateControlPoints to reject them.
func InitialBearing(station1, station2 domain.Point) float64 {
	dE := station2.Easting - station1.Easting
	dN := station2.Northing - station1.Northing

	bearing := math.Atan2(dE, dN) * (180 / math.Pi)
	if bearing < 0 {
		bearing += 360
	}
	return bearing
}

// NormalizeBearing folds any bearing into [0, 360).
func NormalizeBearing(bearing float64) float64 {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	return b
}

// ValidateControlPoints rejects control points that cannot define a bearing.
func ValidateControlPoints(station1, station2 domain.Point) error {
	for _, v := range []float64{station1.Easting, station1.Northing, station2.Easting, station2.Northing} {
		if !isFinite(v) {
			return fmt.Errorf("validate control points: non-finite coordinate: %w", domain.ErrInvalidInput)
		}
	}
	if station1 == station2 {
		return fmt.Errorf("validate control points: station1 == station2 (%g, %g): %w",
			station1.Easting, station1.Northing, domain.ErrDegenerateControlPoints)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
