package services

import (
	"math"
	"traverse-adjustment-service/internal/domain"
)

// EvaluateAccuracy measures how far the last integrated coordinate lands from
// the known starting control point and expresses it as a 1:N ratio.
//
// A zero closing error yields an infinite ratio, which callers present as a
// perfect closure rather than an error.
func EvaluateAccuracy(station1, last domain.Point, traverseLength float64) domain.Accuracy {
	dE := last.Easting - station1.Easting
	dN := last.Northing - station1.Northing
	closingError := math.Sqrt(dE*dE + dN*dN)

	ratio := math.Inf(1)
	if closingError != 0 {
		ratio = traverseLength / closingError
	}

	return domain.Accuracy{
		ClosingErrorEasting:  dE,
		ClosingErrorNorthing: dN,
		ClosingError:         closingError,
		RatioValue:           ratio,
	}
}
