package services

import (
	"context"
	"fmt"
	"strings"
	"traverse-adjustment-service/internal/domain"
	"traverse-adjustment-service/internal/platform/obs"
)

// Selects the traverse length used as the numerator of the accuracy ratio.
type LengthMode string

const (
	// Sum of all leg distances.
	LengthByDistance LengthMode = "distance"
	// Number of stations, as the original field calculator computed it.
	LengthByStationCount LengthMode = "station_count"
)

// ParseLengthMode accepts "" (default distance mode) or one of the LengthMode values.
func ParseLengthMode(s string) (LengthMode, error) {
	switch LengthMode(strings.TrimSpace(strings.ToLower(s))) {
	case "", LengthByDistance:
		return LengthByDistance, nil
	case LengthByStationCount:
		return LengthByStationCount, nil
	default:
		return "", fmt.Errorf("parse length mode %q: %w", s, domain.ErrInvalidInput)
	}
}

// Selects how leg bearings are derived from the corrected angles.
type PropagationMode string

const (
	// Each bearing is the previous leg's bearing plus the station's angle.
	PropagateCumulative PropagationMode = "cumulative"
	// Each bearing is the initial bearing plus the station's angle, as the
	// original field calculator computed it.
	PropagateReference PropagationMode = "reference"
)

// ParsePropagationMode accepts "" (default cumulative mode) or one of the PropagationMode values.
func ParsePropagationMode(s string) (PropagationMode, error) {
	switch PropagationMode(strings.TrimSpace(strings.ToLower(s))) {
	case "", PropagateCumulative:
		return PropagateCumulative, nil
	case PropagateReference:
		return PropagateReference, nil
	default:
		return "", fmt.Errorf("parse propagation mode %q: %w", s, domain.ErrInvalidInput)
	}
}

type AdjustOptions struct {
	LengthMode      LengthMode
	PropagationMode PropagationMode
}

// withDefaults fills unset modes with their defaults.
func (o AdjustOptions) withDefaults() AdjustOptions {
	if o.LengthMode == "" {
		o.LengthMode = LengthByDistance
	}
	if o.PropagationMode == "" {
		o.PropagationMode = PropagateCumulative
	}
	return o
}

// Variant identifies the option set in cache keys.
func (o AdjustOptions) Variant() string {
	o = o.withDefaults()
	return string(o.LengthMode) + "|" + string(o.PropagationMode)
}

// ValidateTraverse checks a traverse against every condition that would make
// the adjustment meaningless. Valid input passes through unchanged.
func ValidateTraverse(t domain.Traverse) error {
	if len(t.Legs) < 3 {
		return fmt.Errorf("validate traverse: %d legs: %w", len(t.Legs), domain.ErrInsufficientStations)
	}

	if err := ValidateControlPoints(t.Station1, t.Station2); err != nil {
		return fmt.Errorf("validate traverse: %w", err)
	}

	total := 0.0
	for i, l := range t.Legs {
		if !isFinite(l.Angle) || !isFinite(l.Distance) {
			return fmt.Errorf("validate traverse: leg %d has a non-finite value: %w", i+1, domain.ErrInvalidInput)
		}
		total += l.Distance
	}

	if total == 0 {
		return fmt.Errorf("validate traverse: %w", domain.ErrZeroTotalDistance)
	}
	if !isFinite(total) {
		return fmt.Errorf("validate traverse: total distance overflows: %w", domain.ErrInvalidInput)
	}

	for i, l := range t.Legs {
		if l.Distance <= 0 {
			return fmt.Errorf("validate traverse: leg %d distance %g must be positive: %w", i+1, l.Distance, domain.ErrInvalidInput)
		}
	}

	return nil
}

// AdjustTraverse runs the full closed traverse adjustment.
//
// Stages run in order (initial bearing, angle adjustment, bearing and
// component propagation, Bowditch correction, coordinate integration,
// accuracy) and each consumes the typed output of the previous one.
// Any stage failure aborts the run.
func AdjustTraverse(ctx context.Context, t domain.Traverse, opts AdjustOptions) (_ *domain.Adjustment, err error) {
	defer obs.Time(ctx, "traverse.adjust")(&err)

	if err := ValidateTraverse(t); err != nil {
		return nil, fmt.Errorf("adjust traverse: %w", err)
	}

	opts = opts.withDefaults()

	initial := InitialBearing(t.Station1, t.Station2)
	distances := t.Distances()

	angles, err := AdjustAngles(t.Angles())
	if err != nil {
		return nil, fmt.Errorf("adjust traverse: %w", err)
	}

	comps, err := Propagate(initial, angles.CorrectedAngles, distances, opts.PropagationMode)
	if err != nil {
		return nil, fmt.Errorf("adjust traverse: %w", err)
	}

	corr, err := BowditchCorrect(comps.Latitudes, comps.Departures, distances)
	if err != nil {
		return nil, fmt.Errorf("adjust traverse: %w", err)
	}

	coords, err := IntegrateCoordinates(corr.CorrectedLatitudes, corr.CorrectedDepartures, t.Station2)
	if err != nil {
		return nil, fmt.Errorf("adjust traverse: %w", err)
	}

	var length float64
	switch opts.LengthMode {
	case LengthByDistance:
		length = corr.TotalDistance
	case LengthByStationCount:
		length = float64(len(t.Legs))
	default:
		return nil, fmt.Errorf("adjust traverse: unknown length mode %q: %w", opts.LengthMode, domain.ErrInvalidInput)
	}

	legs := make([]domain.AdjustedLeg, len(t.Legs))
	for i, l := range t.Legs {
		legs[i] = domain.AdjustedLeg{
			Leg:                l,
			CorrectedAngle:     angles.CorrectedAngles[i],
			Bearing:            comps.Bearings[i],
			Latitude:           comps.Latitudes[i],
			Departure:          comps.Departures[i],
			CorrectedLatitude:  corr.CorrectedLatitudes[i],
			CorrectedDeparture: corr.CorrectedDepartures[i],
		}
	}

	adj := &domain.Adjustment{
		InitialBearing:      initial,
		AngleSum:            angles.AngleSum,
		ExpectedAngleSum:    angles.ExpectedSum,
		AngularClosingError: angles.ClosingError,
		Legs:                legs,
		LatitudeMisclosure:  corr.TotalLatitude,
		DepartureMisclosure: corr.TotalDeparture,
		TotalDistance:       corr.TotalDistance,
		Coordinates:         coords,
		TraverseLength:      length,
	}
	adj.Accuracy = EvaluateAccuracy(t.Station1, adj.LastCoordinate(), length)

	if err := checkFinite(adj); err != nil {
		return nil, fmt.Errorf("adjust traverse: %w", err)
	}

	return adj, nil
}

// checkFinite rejects results whose magnitude overflowed float64.
// An infinite accuracy ratio is a perfect closure and is allowed.
func checkFinite(adj *domain.Adjustment) error {
	values := []float64{
		adj.InitialBearing, adj.AngleSum, adj.AngularClosingError,
		adj.LatitudeMisclosure, adj.DepartureMisclosure, adj.TotalDistance, adj.TraverseLength,
		adj.Accuracy.ClosingError,
	}
	for _, l := range adj.Legs {
		values = append(values, l.CorrectedAngle, l.Bearing, l.Latitude, l.Departure, l.CorrectedLatitude, l.CorrectedDeparture)
	}
	for _, c := range adj.Coordinates {
		values = append(values, c.Easting, c.Northing)
	}

	for _, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("result overflows float64 range: %w", domain.ErrInvalidInput)
		}
	}
	return nil
}
