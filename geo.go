package plot4gmns

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
)

const (
	earthR = 20037508.34
	// Web Mercator is undefined at poles
	maxMercatorLat = 85.05112878
)

// Supported figure projections
const (
	ProjectionNone     = "none"
	ProjectionMercator = "mercator"
)

func epsg4326To3857(lon, lat float64) (float64, float64) {
	lat = math.Max(-maxMercatorLat, math.Min(maxMercatorLat, lat))
	x := lon * earthR / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthR / 180
	return x, y
}

// pointToEuclidean converts WGS84 point (EPSG:4326) to Web Mercator (EPSG:3857)
func pointToEuclidean(pt orb.Point) orb.Point {
	euclideanX, euclideanY := epsg4326To3857(pt.Lon(), pt.Lat())
	return orb.Point{euclideanX, euclideanY}
}

// projectionByName returns function which converts data coordinates before drawing.
// Nil means coordinates are drawn as is
func projectionByName(name string) func(orb.Point) orb.Point {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProjectionMercator, "epsg:3857":
		return pointToEuclidean
	default:
		return nil
	}
}

// projectBound converts bound with given projection. Both supported projections are monotonic
// along each axis separately, so converting corners is enough
func projectBound(bound orb.Bound, project func(orb.Point) orb.Point) orb.Bound {
	if project == nil {
		return bound
	}
	return orb.Bound{Min: project(bound.Min), Max: project(bound.Max)}
}
