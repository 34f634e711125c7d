package handlers

import (
	"traverse-adjustment-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// coordinateFrame is set on every feature. Positions are plane
// Easting/Northing in meters, not the WGS84 lon/lat RFC 7946 assumes.
const coordinateFrame = "plane_easting_northing"

func toOrbPoint(p domain.Point) orb.Point { return orb.Point{p.Easting, p.Northing} }

func newFeature(g orb.Geometry, kind string) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties["kind"] = kind
	f.Properties["coordinate_frame"] = coordinateFrame
	return f
}

// toFeatureCollection renders the adjusted traverse: one LineString through
// all stations, a Point per station and the two control points. Positions
// are [easting, northing] in the traverse's own plane frame, so GIS tools
// must not read them as longitude/latitude.
func toFeatureCollection(t domain.Traverse, adj *domain.Adjustment) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(adj.Coordinates))
	for _, c := range adj.Coordinates {
		line = append(line, toOrbPoint(c))
	}
	path := newFeature(line, "traverse")
	path.Properties["closing_error"] = adj.Accuracy.ClosingError
	path.Properties["ratio_text"] = adj.Accuracy.Ratio()
	fc.Append(path)

	for i, c := range adj.Coordinates {
		f := newFeature(toOrbPoint(c), "station")
		f.Properties["station"] = i + 1
		fc.Append(f)
	}

	for i, c := range []domain.Point{t.Station1, t.Station2} {
		f := newFeature(toOrbPoint(c), "control")
		f.Properties["control_point"] = i + 1
		fc.Append(f)
	}

	return fc
}
