package plot4gmns

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// GeoJSON returns feature collection of selected nodes, links and POIs.
// Nodes carry 'group' property, links and POIs carry their identifiers and 'value' for distributions
func (sel *Selection) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, group := range sel.NodeGroups {
		for _, pt := range group.Points {
			f := geojson.NewPointFeature(pointToSlice(pt))
			f.SetProperty("kind", "node")
			f.SetProperty("group", group.Type)
			fc.AddFeature(f)
		}
	}
	for i, line := range sel.LinkCoords {
		f := geojson.NewLineStringFeature(lineToSlice(line))
		f.SetProperty("kind", "link")
		if i < len(sel.Links) {
			link := sel.Links[i]
			f.SetProperty("link_id", int64(link.ID))
			f.SetProperty("link_type_name", link.LinkTypeName)
		}
		if i < len(sel.LinkValues) {
			f.SetProperty("value", sel.LinkValues[i])
		}
		fc.AddFeature(f)
	}
	for i, poly := range sel.POICoords {
		f := geojson.NewPolygonFeature(polygonToSlice(poly))
		f.SetProperty("kind", "poi")
		if i < len(sel.POIs) {
			f.SetProperty("poi_id", int64(sel.POIs[i].ID))
			f.SetProperty("poi_type", sel.POIs[i].Type())
		}
		if i < len(sel.POIValues) {
			f.SetProperty("value", sel.POIValues[i])
		}
		fc.AddFeature(f)
	}
	return fc
}

// GeoJSON returns feature collection of OD desire lines with 'volume' property and zones
func (sel *ODSelection) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, line := range sel.Lines {
		f := geojson.NewLineStringFeature(lineToSlice(line))
		f.SetProperty("kind", "od")
		f.SetProperty("volume", sel.Volumes[i])
		fc.AddFeature(f)
	}
	for i, poly := range sel.Zones {
		f := geojson.NewPolygonFeature(polygonToSlice(poly))
		f.SetProperty("kind", "zone")
		if i < len(sel.Labels) {
			f.SetProperty("name", sel.Labels[i].Text)
		}
		fc.AddFeature(f)
	}
	return fc
}

func writeGeoJSON(fname string, fc *geojson.FeatureCollection) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't convert features to geojson format")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrapf(err, "Can't write '%s'", fname)
	}
	return nil
}

func pointToSlice(pt orb.Point) []float64 {
	return []float64{pt.X(), pt.Y()}
}

func lineToSlice(line orb.LineString) [][]float64 {
	pts := make([][]float64, len(line))
	for i := range line {
		pts[i] = pointToSlice(line[i])
	}
	return pts
}

func polygonToSlice(poly orb.Polygon) [][][]float64 {
	rings := make([][][]float64, len(poly))
	for i := range poly {
		rings[i] = lineToSlice(orb.LineString(poly[i]))
	}
	return rings
}
