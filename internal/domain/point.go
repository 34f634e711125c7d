package domain

// Immutable plane coordinates (Easting, Northing) in meters.
// Used both for the known control points and for integrated stations.
type Point struct {
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
}

// Return the point shifted by the given departure (easting) and latitude (northing) components.
func (p Point) Offset(departure, latitude float64) Point {
	return Point{Easting: p.Easting + departure, Northing: p.Northing + latitude}
}
