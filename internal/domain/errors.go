package domain

import "errors"

var (
	// Fewer than three legs cannot form a closed polygon.
	ErrInsufficientStations = errors.New("at least 3 stations are required")

	// Leg distances sum to zero, so Bowditch weights are undefined.
	ErrZeroTotalDistance = errors.New("total traverse distance must be greater than zero")

	// Both control points coincide and define no bearing.
	ErrDegenerateControlPoints = errors.New("control points must not coincide")

	// A required value is missing, non-finite or out of range.
	ErrInvalidInput = errors.New("invalid traverse input")
)
