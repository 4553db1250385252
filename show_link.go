package plot4gmns

import (
	"fmt"
)

// ShowNetworkByLinkLanes draws links with number of lanes in [minLanes; maxLanes].
// When minLanes > maxLanes warning is logged and no links are drawn
func ShowNetworkByLinkLanes(mnet *MultiNet, minLanes, maxLanes int, options ...func(*PlotOptions)) (*Figure, error) {
	p := newPlot(mnet, options...)
	if minLanes > maxLanes {
		p.opts.logger.Warn("ValueError: 'min_lanes' should not less than 'max_lanes'", "min_lanes", minLanes, "max_lanes", maxLanes)
	}
	sel := ExtractByLinkLanes(mnet, minLanes, maxLanes)
	p.drawSelection(sel)
	return p.finish("network_by_link_lane", sel.GeoJSON())
}

// ShowNetworkByLinkFreeSpeed draws links with free speed in [minSpeed; maxSpeed]
func ShowNetworkByLinkFreeSpeed(mnet *MultiNet, minSpeed, maxSpeed float64, options ...func(*PlotOptions)) (*Figure, error) {
	p := newPlot(mnet, options...)
	if minSpeed > maxSpeed {
		p.opts.logger.Warn("ValueError: 'min_free_speed' should not less than 'max_free_speed'", "min_free_speed", minSpeed, "max_free_speed", maxSpeed)
	}
	sel := ExtractByLinkFreeSpeed(mnet, minSpeed, maxSpeed)
	p.drawSelection(sel)
	return p.finish("network_by_link_free_speed", sel.GeoJSON())
}

// ShowNetworkByLinkLength draws links with length in [minLength; maxLength]
func ShowNetworkByLinkLength(mnet *MultiNet, minLength, maxLength float64, options ...func(*PlotOptions)) (*Figure, error) {
	p := newPlot(mnet, options...)
	if minLength > maxLength {
		p.opts.logger.Warn("ValueError: 'min_length' should not less than 'max_length'", "min_length", minLength, "max_length", maxLength)
	}
	sel := ExtractByLinkLength(mnet, minLength, maxLength)
	p.drawSelection(sel)
	return p.finish("network_by_link_length", sel.GeoJSON())
}

// ShowNetworkByLinkLaneDistribution draws every link with width proportional to its number of lanes
func ShowNetworkByLinkLaneDistribution(mnet *MultiNet, options ...func(*PlotOptions)) (*Figure, error) {
	return showLinkAttrDistribution(mnet, AttrLanes, "lanes", "network_by_link_lane_distribution", options...)
}

// ShowNetworkByLinkFreeSpeedDistribution draws every link with width proportional to its free speed
func ShowNetworkByLinkFreeSpeedDistribution(mnet *MultiNet, options ...func(*PlotOptions)) (*Figure, error) {
	return showLinkAttrDistribution(mnet, AttrFreeSpeed, "free speed", "network_by_link_free_speed_distribution", options...)
}

// ShowNetworkByLinkCapacityDistribution draws every link with width proportional to its capacity
func ShowNetworkByLinkCapacityDistribution(mnet *MultiNet, options ...func(*PlotOptions)) (*Figure, error) {
	return showLinkAttrDistribution(mnet, AttrCapacity, "capacity", "network_by_link_capacity_distribution", options...)
}

func showLinkAttrDistribution(mnet *MultiNet, attr, legendName, fname string, options ...func(*PlotOptions)) (*Figure, error) {
	sel, err := ExtractByLinkAttrDistribution(mnet, attr)
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
		widths, minValue, maxValue := distributionWidths(sel.LinkValues)
		p.drawLinks(sel.LinkCoords, widths)
		p.fig.SetLegend(distributionLegend(legendName, p.linkColor(), minValue, maxValue))
	}
	if mnet.POILoaded {
		p.drawPOIs(sel.POICoords, nil)
	}
	return p.finish(fname, sel.GeoJSON())
}

func legendLabel(name string, value float64) string {
	return fmt.Sprintf("%s:%.4f", name, value)
}
