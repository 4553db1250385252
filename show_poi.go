package plot4gmns

import (
	"image/color"
)

// ShowNetworkByPOITypes draws POIs which building type (or amenity) is one of given types
func ShowNetworkByPOITypes(mnet *MultiNet, poiTypes interface{}, options ...func(*PlotOptions)) (*Figure, error) {
	poiTypesList, err := normalizeFilter(poiTypes)
	if err != nil {
		return nil, err
	}
	p := newPlot(mnet, options...)
	sel := ExtractByPOITypes(mnet, poiTypesList)
	p.drawSelection(sel)
	return p.finish("network_by_poi_type", sel.GeoJSON())
}

// ShowNetworkByPOIProductionDistribution draws POIs colored by their production
func ShowNetworkByPOIProductionDistribution(mnet *MultiNet, options ...func(*PlotOptions)) (*Figure, error) {
	return showPOIAttrDistribution(mnet, AttrProduction, "network_by_poi_production_distribution", options...)
}

// ShowNetworkByPOIAttractionDistribution draws POIs colored by their attraction
func ShowNetworkByPOIAttractionDistribution(mnet *MultiNet, options ...func(*PlotOptions)) (*Figure, error) {
	return showPOIAttrDistribution(mnet, AttrAttraction, "network_by_poi_attraction_distribution", options...)
}

func showPOIAttrDistribution(mnet *MultiNet, attr, fname string, options ...func(*PlotOptions)) (*Figure, error) {
	sel, err := ExtractByPOIAttrDistribution(mnet, attr)
	if err != nil {
		return nil, err
	}
	p := newPlot(mnet, options...)
	if mnet.NodeLoaded {
		for _, group := range sel.NodeGroups {
			p.drawNodes(group.Points, group.Type)
		}
	}
	if mnet.LinkLoaded {
		p.drawLinks(sel.LinkCoords, nil)
	}
	if mnet.POILoaded {
		cmap := GetColormap(p.style.Cmap)
		minValue, maxValue := valuesRange(sel.POIValues)
		faces := make([]color.Color, len(sel.POIValues))
		for i, v := range sel.POIValues {
			faces[i] = cmap.Normalize(v, minValue, maxValue)
		}
		p.drawPOIs(sel.POICoords, faces)
		p.fig.SetColorbar(cmap, minValue, maxValue)
	}
	return p.finish(fname, sel.GeoJSON())
}
