package domain

import (
	"fmt"
	"math"
)

// A traverse leg with every derived quantity of the adjustment.
// Bearing is the propagated value and is not normalized into [0, 360).
type AdjustedLeg struct {
	Leg
	CorrectedAngle     float64
	Bearing            float64
	Latitude           float64
	Departure          float64
	CorrectedLatitude  float64
	CorrectedDeparture float64
}

// Linear closure of a traverse against its known starting control point.
// RatioValue is +Inf when the traverse closes exactly.
type Accuracy struct {
	ClosingErrorEasting  float64
	ClosingErrorNorthing float64
	ClosingError         float64
	RatioValue           float64
}

// Reports whether the closing error is exactly zero.
func (a Accuracy) PerfectClosure() bool { return math.IsInf(a.RatioValue, 1) }

// Ratio renders the accuracy as "1:N" with four decimals.
func (a Accuracy) Ratio() string {
	if a.PerfectClosure() {
		return "perfect closure"
	}
	return fmt.Sprintf("1:%.4f", a.RatioValue)
}

// Represents the complete output of one traverse adjustment run.
// It is recomputed from scratch for every request and holds no references
// back to the input.
type Adjustment struct {
	InitialBearing      float64
	AngleSum            float64
	ExpectedAngleSum    float64
	AngularClosingError float64
	Legs                []AdjustedLeg
	LatitudeMisclosure  float64
	DepartureMisclosure float64
	TotalDistance       float64
	Coordinates         []Point
	TraverseLength      float64
	Accuracy            Accuracy
}

// Return the last integrated coordinate, or the zero point if none exist.
func (a *Adjustment) LastCoordinate() Point {
	if len(a.Coordinates) == 0 {
		return Point{}
	}
	return a.Coordinates[len(a.Coordinates)-1]
}
