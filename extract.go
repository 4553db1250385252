package plot4gmns

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Link and POI attributes which could be shown as distribution
const (
	AttrLanes      = "lanes"
	AttrFreeSpeed  = "free_speed"
	AttrCapacity   = "capacity"
	AttrProduction = "production"
	AttrAttraction = "attraction"
)

// NodeGroup is a set of node coordinates sharing single node type
type NodeGroup struct {
	Type   string
	Points []orb.Point
}

// Selection is a subset of network coordinates prepared for drawing
type Selection struct {
	NodeGroups []NodeGroup
	Links      []*Link
	LinkCoords []orb.LineString
	// Per-link values for distribution charts (same length as LinkCoords)
	LinkValues []float64
	POIs       []*POI
	POICoords  []orb.Polygon
	// Per-POI values for distribution charts (same length as POICoords)
	POIValues []float64
}

// NodePoints returns every selected node point regardless of its group
func (sel *Selection) NodePoints() []orb.Point {
	total := 0
	for _, group := range sel.NodeGroups {
		total += len(group.Points)
	}
	points := make([]orb.Point, 0, total)
	for _, group := range sel.NodeGroups {
		points = append(points, group.Points...)
	}
	return points
}

func (sel *Selection) addLink(link *Link) {
	sel.Links = append(sel.Links, link)
	sel.LinkCoords = append(sel.LinkCoords, link.Geom)
}

func (sel *Selection) addPOI(poi *POI) {
	sel.POIs = append(sel.POIs, poi)
	sel.POICoords = append(sel.POICoords, poi.Geom)
}

func allNodes(mnet *MultiNet) NodeGroup {
	group := NodeGroup{Type: nodeTypeOther, Points: make([]orb.Point, 0, len(mnet.Nodes))}
	for _, node := range mnet.Nodes {
		group.Points = append(group.Points, node.Geom)
	}
	return group
}

// endpointNodes returns nodes which are source or target of selected links, in load order
func endpointNodes(mnet *MultiNet, links []*Link) NodeGroup {
	used := make(map[NodeID]struct{}, len(links)*2)
	for _, link := range links {
		used[link.SourceNodeID] = struct{}{}
		used[link.TargetNodeID] = struct{}{}
	}
	group := NodeGroup{Type: nodeTypeOther, Points: make([]orb.Point, 0, len(used))}
	for _, node := range mnet.Nodes {
		if _, ok := used[node.ID]; ok {
			group.Points = append(group.Points, node.Geom)
		}
	}
	return group
}

func withAllPOIs(mnet *MultiNet, sel *Selection) {
	for _, poi := range mnet.POIs {
		sel.addPOI(poi)
	}
}

func withAllLinks(mnet *MultiNet, sel *Selection) {
	for _, link := range mnet.Links {
		sel.addLink(link)
	}
}

// selectLinks keeps links matching predicate, nodes are their endpoints and POIs are all
func selectLinks(mnet *MultiNet, keep func(link *Link) bool) *Selection {
	sel := &Selection{}
	for _, link := range mnet.Links {
		if keep(link) {
			sel.addLink(link)
		}
	}
	sel.NodeGroups = []NodeGroup{endpointNodes(mnet, sel.Links)}
	withAllPOIs(mnet, sel)
	return sel
}

// ExtractByNetworkModes selects links allowing any of given modes. Mode 'all' selects every link
func ExtractByNetworkModes(mnet *MultiNet, modes []string) *Selection {
	for _, mode := range modes {
		if strings.ToLower(strings.TrimSpace(mode)) == NetworkModeAll {
			sel := &Selection{NodeGroups: []NodeGroup{allNodes(mnet)}}
			withAllLinks(mnet, sel)
			withAllPOIs(mnet, sel)
			return sel
		}
	}
	return selectLinks(mnet, func(link *Link) bool {
		for _, mode := range modes {
			if link.Allows(mode) {
				return true
			}
		}
		return false
	})
}

// ExtractByNodeTypes groups nodes by requested `osm_highway` values. Groups follow request order
// and could be empty. Links and POIs are kept as is
func ExtractByNodeTypes(mnet *MultiNet, nodeTypes []string) *Selection {
	sel := &Selection{NodeGroups: make([]NodeGroup, len(nodeTypes))}
	index := make(map[string]int, len(nodeTypes))
	for i, nodeType := range nodeTypes {
		sel.NodeGroups[i] = NodeGroup{Type: nodeType, Points: make([]orb.Point, 0)}
		if _, ok := index[nodeType]; !ok {
			index[nodeType] = i
		}
	}
	for _, node := range mnet.Nodes {
		if i, ok := index[node.OsmHighway]; ok {
			sel.NodeGroups[i].Points = append(sel.NodeGroups[i].Points, node.Geom)
		}
	}
	withAllLinks(mnet, sel)
	withAllPOIs(mnet, sel)
	return sel
}

// ExtractByLinkTypes selects links which `link_type_name` is in the given list
func ExtractByLinkTypes(mnet *MultiNet, linkTypes []string) *Selection {
	wanted := make(map[string]struct{}, len(linkTypes))
	for _, linkType := range linkTypes {
		wanted[strings.ToLower(strings.TrimSpace(linkType))] = struct{}{}
	}
	return selectLinks(mnet, func(link *Link) bool {
		_, ok := wanted[strings.ToLower(link.LinkTypeName)]
		return ok
	})
}

// ExtractByLinkLanes selects links with minLanes <= lanes <= maxLanes
func ExtractByLinkLanes(mnet *MultiNet, minLanes, maxLanes int) *Selection {
	return selectLinks(mnet, func(link *Link) bool {
		return link.Lanes >= minLanes && link.Lanes <= maxLanes
	})
}

// ExtractByLinkFreeSpeed selects links with minSpeed <= free speed <= maxSpeed
func ExtractByLinkFreeSpeed(mnet *MultiNet, minSpeed, maxSpeed float64) *Selection {
	return selectLinks(mnet, func(link *Link) bool {
		return link.FreeSpeed >= minSpeed && link.FreeSpeed <= maxSpeed
	})
}

// ExtractByLinkLength selects links with minLength <= length <= maxLength
func ExtractByLinkLength(mnet *MultiNet, minLength, maxLength float64) *Selection {
	return selectLinks(mnet, func(link *Link) bool {
		return link.Length >= minLength && link.Length <= maxLength
	})
}

// ExtractByLinkAttrDistribution selects every link and collects values of given attribute
func ExtractByLinkAttrDistribution(mnet *MultiNet, attr string) (*Selection, error) {
	var value func(link *Link) float64
	switch attr {
	case AttrLanes:
		value = func(link *Link) float64 { return float64(link.Lanes) }
	case AttrFreeSpeed:
		value = func(link *Link) float64 { return link.FreeSpeed }
	case AttrCapacity:
		value = func(link *Link) float64 { return link.Capacity }
	default:
		return nil, errors.Wrapf(ErrUnknownAttribute, "link attribute '%s'", attr)
	}
	sel := &Selection{NodeGroups: []NodeGroup{allNodes(mnet)}}
	sel.LinkValues = make([]float64, 0, len(mnet.Links))
	for _, link := range mnet.Links {
		sel.addLink(link)
		sel.LinkValues = append(sel.LinkValues, value(link))
	}
	withAllPOIs(mnet, sel)
	return sel, nil
}

// ExtractByPOITypes selects POIs which building type (or amenity) is in the given list
func ExtractByPOITypes(mnet *MultiNet, poiTypes []string) *Selection {
	wanted := make(map[string]struct{}, len(poiTypes))
	for _, poiType := range poiTypes {
		wanted[strings.ToLower(strings.TrimSpace(poiType))] = struct{}{}
	}
	sel := &Selection{NodeGroups: []NodeGroup{allNodes(mnet)}}
	withAllLinks(mnet, sel)
	for _, poi := range mnet.POIs {
		if _, ok := wanted[strings.ToLower(poi.Type())]; ok {
			sel.addPOI(poi)
		}
	}
	return sel
}

// ExtractByPOIAttrDistribution selects every POI and collects values of given attribute
func ExtractByPOIAttrDistribution(mnet *MultiNet, attr string) (*Selection, error) {
	var value func(poi *POI) float64
	switch attr {
	case AttrProduction:
		value = func(poi *POI) float64 { return poi.Production }
	case AttrAttraction:
		value = func(poi *POI) float64 { return poi.Attraction }
	default:
		return nil, errors.Wrapf(ErrUnknownAttribute, "POI attribute '%s'", attr)
	}
	sel := &Selection{NodeGroups: []NodeGroup{allNodes(mnet)}}
	withAllLinks(mnet, sel)
	sel.POIValues = make([]float64, 0, len(mnet.POIs))
	for _, poi := range mnet.POIs {
		sel.addPOI(poi)
		sel.POIValues = append(sel.POIValues, value(poi))
	}
	return sel, nil
}

// DemandMatrix returns square matrix of volumes between zones (in load order) and zone identifiers.
// Flows referencing unknown zones are ignored
func DemandMatrix(mnet *MultiNet) ([][]float64, []ZoneID) {
	ids := make([]ZoneID, len(mnet.Zones))
	position := make(map[ZoneID]int, len(mnet.Zones))
	for i, zone := range mnet.Zones {
		ids[i] = zone.ID
		position[zone.ID] = i
	}
	matrix := make([][]float64, len(mnet.Zones))
	for i := range matrix {
		matrix[i] = make([]float64, len(mnet.Zones))
	}
	for _, flow := range mnet.Demand.Flows {
		from, okFrom := position[flow.OriginZoneID]
		to, okTo := position[flow.DestinationZoneID]
		if !okFrom || !okTo {
			continue
		}
		matrix[from][to] += flow.Volume
	}
	return matrix, ids
}

// ZoneLabel is text placed at zone centroid
type ZoneLabel struct {
	Text string
	At   orb.Point
}

// ODSelection is a set of OD desire lines with zones they connect
type ODSelection struct {
	Lines   []orb.LineString
	Volumes []float64
	Zones   []orb.Polygon
	Labels  []ZoneLabel
}

// ExtractByDemandOD builds desire line from origin centroid to destination centroid for
// every flow with positive volume. Zones and labels are filled when loadZone is true
func ExtractByDemandOD(mnet *MultiNet, loadZone bool) *ODSelection {
	sel := &ODSelection{}
	for _, flow := range mnet.Demand.Flows {
		if flow.Volume <= 0 {
			continue
		}
		origin, okOrigin := mnet.zoneByID(flow.OriginZoneID)
		destination, okDestination := mnet.zoneByID(flow.DestinationZoneID)
		if !okOrigin || !okDestination {
			continue
		}
		sel.Lines = append(sel.Lines, orb.LineString{origin.Centroid, destination.Centroid})
		sel.Volumes = append(sel.Volumes, flow.Volume)
	}
	if loadZone {
		for _, zone := range mnet.Zones {
			sel.Zones = append(sel.Zones, zone.Geom)
			sel.Labels = append(sel.Labels, ZoneLabel{Text: zone.Name, At: zone.Centroid})
		}
	}
	return sel
}
