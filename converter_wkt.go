package plot4gmns

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// parseLineStringWKT returns LineString from WKT representation. MultiLineString gives its first part
func parseLineStringWKT(str string) (orb.LineString, error) {
	geom, err := wkt.Unmarshal(str)
	if err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal WKT")
	}
	switch g := geom.(type) {
	case orb.LineString:
		return g, nil
	case orb.MultiLineString:
		if len(g) == 0 {
			return nil, errors.New("Empty MULTILINESTRING")
		}
		return g[0], nil
	default:
		return nil, errors.Errorf("Unexpected geometry type '%s' (LINESTRING expected)", geom.GeoJSONType())
	}
}

// parsePolygonWKT returns Polygon from WKT representation. MultiPolygon gives its largest part
func parsePolygonWKT(str string) (orb.Polygon, error) {
	geom, err := wkt.Unmarshal(str)
	if err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal WKT")
	}
	switch g := geom.(type) {
	case orb.Polygon:
		return g, nil
	case orb.MultiPolygon:
		if len(g) == 0 {
			return nil, errors.New("Empty MULTIPOLYGON")
		}
		largest := g[0]
		largestArea := planar.Area(largest)
		for _, poly := range g[1:] {
			if area := planar.Area(poly); area > largestArea {
				largest, largestArea = poly, area
			}
		}
		return largest, nil
	default:
		return nil, errors.Errorf("Unexpected geometry type '%s' (POLYGON expected)", geom.GeoJSONType())
	}
}

// parsePointWKT returns Point from WKT representation
func parsePointWKT(str string) (orb.Point, error) {
	geom, err := wkt.Unmarshal(str)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "Can't unmarshal WKT")
	}
	pt, ok := geom.(orb.Point)
	if !ok {
		return orb.Point{}, errors.Errorf("Unexpected geometry type '%s' (POINT expected)", geom.GeoJSONType())
	}
	return pt, nil
}

// polygonCentroid returns area-weighted centroid of polygon.
// Degenerated polygons (zero area) give the centroid of the outer ring vertices
func polygonCentroid(poly orb.Polygon) orb.Point {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return orb.Point{}
	}
	centroid, area := planar.CentroidArea(poly)
	if area != 0 {
		return centroid
	}
	x, y := 0.0, 0.0
	for _, pt := range poly[0] {
		x += pt.X()
		y += pt.Y()
	}
	n := float64(len(poly[0]))
	return orb.Point{x / n, y / n}
}
