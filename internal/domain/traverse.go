package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// A single measured traverse leg: the interior angle observed at the station
// and the distance to the next station.
type Leg struct {
	Angle    float64 `json:"angle"`
	Distance float64 `json:"distance"`
}

// Represents one closed traverse as measured in the field.
// Station1 and Station2 are the known control points; Station2 is the first
// occupied station and the origin of coordinate integration.
type Traverse struct {
	Station1 Point `json:"station1"`
	Station2 Point `json:"station2"`
	Legs     []Leg `json:"legs"`
}

// Return the measured angles in leg order.
func (t Traverse) Angles() []float64 {
	out := make([]float64, len(t.Legs))
	for i, l := range t.Legs {
		out[i] = l.Angle
	}
	return out
}

// Return the measured distances in leg order.
func (t Traverse) Distances() []float64 {
	out := make([]float64, len(t.Legs))
	for i, l := range t.Legs {
		out[i] = l.Distance
	}
	return out
}

// Key returns a stable digest of the traverse and the given variant tag.
// Identical inputs always produce the same key.
func (t Traverse) Key(variant string) (string, error) {
	b, err := json.Marshal(struct {
		Traverse
		Variant string `json:"variant"`
	}{t, variant})
	if err != nil {
		return "", fmt.Errorf("traverse key: marshal: %w", err)
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
