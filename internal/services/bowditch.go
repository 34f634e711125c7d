package services

import (
	"fmt"
	"traverse-adjustment-service/internal/domain"
)

// Bowditch-corrected components plus the misclosure they remove.
type Correction struct {
	TotalLatitude       float64
	TotalDeparture      float64
	TotalDistance       float64
	CorrectedLatitudes  []float64
	CorrectedDepartures []float64
}

// BowditchCorrect distributes the linear misclosure over the legs in
// proportion to each leg's share of the total traverse length.
//
// After correction the latitudes and departures each sum to zero, up to
// floating-point rounding.
func BowditchCorrect(latitudes, departures, distances []float64) (Correction, error) {
	n := len(distances)
	if len(latitudes) != n || len(departures) != n {
		return Correction{}, fmt.Errorf(
			"bowditch correct: got %d latitudes, %d departures, %d distances: %w",
			len(latitudes), len(departures), n, domain.ErrInvalidInput,
		)
	}

	var totalLat, totalDep, totalDist float64
	for i := 0; i < n; i++ {
		totalLat += latitudes[i]
		totalDep += departures[i]
		totalDist += distances[i]
	}

	if totalDist == 0 {
		return Correction{}, fmt.Errorf("bowditch correct: %w", domain.ErrZeroTotalDistance)
	}

	out := Correction{
		TotalLatitude:       totalLat,
		TotalDeparture:      totalDep,
		TotalDistance:       totalDist,
		CorrectedLatitudes:  make([]float64, n),
		CorrectedDepartures: make([]float64, n),
	}

	for i, d := range distances {
		factor := d / totalDist
		out.CorrectedLatitudes[i] = latitudes[i] - factor*totalLat
		out.CorrectedDepartures[i] = departures[i] - factor*totalDep
	}

	return out, nil
}

// IntegrateCoordinates accumulates corrected components from start and
// returns n+1 points: start followed by the station reached after each leg.
func IntegrateCoordinates(correctedLatitudes, correctedDepartures []float64, start domain.Point) ([]domain.Point, error) {
	if len(correctedLatitudes) != len(correctedDepartures) {
		return nil, fmt.Errorf(
			"integrate coordinates: %d latitudes but %d departures: %w",
			len(correctedLatitudes), len(correctedDepartures), domain.ErrInvalidInput,
		)
	}

	coords := make([]domain.Point, 0, len(correctedLatitudes)+1)
	coords = append(coords, start)

	for i, lat := range correctedLatitudes {
		coords = append(coords, coords[i].Offset(correctedDepartures[i], lat))
	}

	return coords, nil
}
