package services

import (
	"fmt"
	"math"
	"traverse-adjustment-service/internal/domain"
)

// Per-leg bearings and rectangular components, in leg order.
type Components struct {
	Bearings   []float64
	Latitudes  []float64
	Departures []float64
}

// Propagate derives a bearing for every leg from the initial bearing and the
// corrected angles, then resolves each leg into latitude (northing component)
// and departure (easting component).
//
// In cumulative mode (the default for "") each station's angle is added to the
// previous leg's bearing; in reference mode it is added to the initial bearing.
// Bearings are not normalized and may exceed 360; the trigonometric results
// are unaffected.
func Propagate(initialBearing float64, correctedAngles, distances []float64, mode PropagationMode) (Components, error) {
	if len(correctedAngles) != len(distances) {
		return Components{}, fmt.Errorf(
			"propagate: %d angles but %d distances: %w",
			len(correctedAngles), len(distances), domain.ErrInvalidInput,
		)
	}

	if mode == "" {
		mode = PropagateCumulative
	}
	if mode != PropagateCumulative && mode != PropagateReference {
		return Components{}, fmt.Errorf("propagate: unknown propagation mode %q: %w", mode, domain.ErrInvalidInput)
	}

	n := len(correctedAngles)
	out := Components{
		Bearings:   make([]float64, n),
		Latitudes:  make([]float64, n),
		Departures: make([]float64, n),
	}

	bearing := initialBearing
	for i, angle := range correctedAngles {
		if mode == PropagateReference {
			bearing = initialBearing
		}
		bearing += angle
		rad := bearing * math.Pi / 180

		out.Bearings[i] = bearing
		out.Latitudes[i] = distances[i] * math.Cos(rad)
		out.Departures[i] = distances[i] * math.Sin(rad)
	}

	return out, nil
}
