package plot4gmns

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineStringWKT(t *testing.T) {
	line, err := parseLineStringWKT("LINESTRING (37.6417 55.7518, 37.6685 55.7326)")
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{37.6417, 55.7518}, {37.6685, 55.7326}}, line)

	line, err = parseLineStringWKT("MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))")
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 1}}, line)

	_, err = parseLineStringWKT("POINT (1 2)")
	assert.Error(t, err)
	_, err = parseLineStringWKT("LINESTRING (1 2")
	assert.Error(t, err)
}

func TestParsePolygonWKT(t *testing.T) {
	poly, err := parsePolygonWKT("MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((0 0, 4 0, 4 4, 0 4, 0 0)))")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{4, 0}, poly[0][1])

	poly, err = parsePolygonWKT("POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 2 1, 2 2, 1 1))")
	require.NoError(t, err)
	require.Len(t, poly, 2)
	assert.Len(t, poly[0], 5)
	assert.Equal(t, orb.Ring{{1, 1}, {2, 1}, {2, 2}, {1, 1}}, poly[1])

	_, err = parsePolygonWKT("LINESTRING (0 0, 1 1)")
	assert.Error(t, err)
}

func TestPolygonCentroid(t *testing.T) {
	centroid := polygonCentroid(orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}})
	assert.InDelta(t, 1, centroid.X(), 1e-9)
	assert.InDelta(t, 1, centroid.Y(), 1e-9)

	// Zero area
	centroid = polygonCentroid(orb.Polygon{{{0, 0}, {2, 0}, {4, 0}}})
	assert.InDelta(t, 2, centroid.X(), 1e-9)
	assert.InDelta(t, 0, centroid.Y(), 1e-9)

	assert.Equal(t, orb.Point{}, polygonCentroid(nil))
}

func TestSelectionGeoJSON(t *testing.T) {
	mnet := testNetwork(t)

	sel := ExtractByNetworkModes(mnet, []string{"bike"})
	fc := sel.GeoJSON()
	// 4 nodes, 2 links and 3 POIs
	require.Len(t, fc.Features, 9)
	assert.Equal(t, "node", fc.Features[0].Properties["kind"])
	assert.Equal(t, "other", fc.Features[0].Properties["group"])
	link := fc.Features[4]
	assert.Equal(t, "link", link.Properties["kind"])
	assert.Equal(t, int64(2), link.Properties["link_id"])
	assert.Equal(t, "primary", link.Properties["link_type_name"])
	assert.True(t, link.Geometry.IsLineString())
	assert.True(t, fc.Features[8].Geometry.IsPolygon())

	dist, err := ExtractByLinkAttrDistribution(mnet, AttrLanes)
	require.NoError(t, err)
	fc = dist.GeoJSON()
	assert.Equal(t, 2.0, fc.Features[6].Properties["value"])

	od := ExtractByDemandOD(mnet, true).GeoJSON()
	// 3 OD lines and 2 zones
	require.Len(t, od.Features, 5)
	assert.Equal(t, 120.0, od.Features[0].Properties["volume"])
	assert.Equal(t, "west", od.Features[3].Properties["name"])
	assert.Equal(t, "zone", od.Features[3].Properties["kind"])
	assert.True(t, od.Features[3].Geometry.IsPolygon())
}
