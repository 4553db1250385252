package plot4gmns

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Nodes stuff */

type NodeID int

type Node struct {
	ID         NodeID
	OsmNodeID  osm.NodeID
	OsmHighway string
	ZoneID     int
	Geom       orb.Point
}

/* Links stuff */

type LinkID int

type Link struct {
	ID           LinkID
	OsmWayID     osm.WayID
	SourceNodeID NodeID
	TargetNodeID NodeID
	LinkTypeName string
	LinkType     LinkType
	AllowedUses  []string
	Lanes        int
	FreeSpeed    float64
	Capacity     float64
	Length       float64
	Geom         orb.LineString
}

// Allows checks if link could be used by given network mode.
// Empty allowed uses means that link is open for every mode
func (link *Link) Allows(mode string) bool {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == NetworkModeAll {
		return true
	}
	if byType, ok := networkModeByLinkType[link.LinkType]; ok {
		return byType.String() == mode
	}
	if len(link.AllowedUses) == 0 {
		return true
	}
	for _, use := range link.AllowedUses {
		if strings.ToLower(use) == mode {
			return true
		}
	}
	return false
}

/* POI stuff */

type PoiID int

type POI struct {
	ID         PoiID
	Building   string
	Amenity    string
	Production float64
	Attraction float64
	Geom       orb.Polygon
	Centroid   orb.Point
}

// Type returns building type of POI or its amenity when building is not set
func (poi *POI) Type() string {
	if poi.Building != "" {
		return poi.Building
	}
	return poi.Amenity
}

/* Zones and demand stuff */

type ZoneID int

type Zone struct {
	ID       ZoneID
	Name     string
	Geom     orb.Polygon
	Centroid orb.Point
}

type ODFlow struct {
	OriginZoneID      ZoneID
	DestinationZoneID ZoneID
	Volume            float64
}

type Demand struct {
	Flows []ODFlow
}

// MultiNet is in-memory GMNS network: nodes, links, POIs, zones and demand
type MultiNet struct {
	Nodes  []*Node
	Links  []*Link
	POIs   []*POI
	Zones  []*Zone
	Demand Demand

	NodeLoaded   bool
	LinkLoaded   bool
	POILoaded    bool
	ZoneLoaded   bool
	DemandLoaded bool

	Style *Style

	nodesIndex map[NodeID]*Node
}

// NewMultiNet returns empty network with default style
func NewMultiNet() *MultiNet {
	return &MultiNet{
		Nodes:      make([]*Node, 0),
		Links:      make([]*Link, 0),
		POIs:       make([]*POI, 0),
		Zones:      make([]*Zone, 0),
		Style:      DefaultStyle(),
		nodesIndex: make(map[NodeID]*Node),
	}
}

// AddNode appends node and marks nodes as loaded
func (mnet *MultiNet) AddNode(node *Node) {
	if mnet.nodesIndex == nil {
		mnet.nodesIndex = make(map[NodeID]*Node)
	}
	mnet.Nodes = append(mnet.Nodes, node)
	mnet.nodesIndex[node.ID] = node
	mnet.NodeLoaded = true
}

// AddLink appends link and marks links as loaded
func (mnet *MultiNet) AddLink(link *Link) {
	mnet.Links = append(mnet.Links, link)
	mnet.LinkLoaded = true
}

// AddPOI appends POI and marks POIs as loaded
func (mnet *MultiNet) AddPOI(poi *POI) {
	mnet.POIs = append(mnet.POIs, poi)
	mnet.POILoaded = true
}

// AddZone appends zone and marks zones as loaded
func (mnet *MultiNet) AddZone(zone *Zone) {
	mnet.Zones = append(mnet.Zones, zone)
	mnet.ZoneLoaded = true
}

// AddFlow appends OD flow and marks demand as loaded
func (mnet *MultiNet) AddFlow(flow ODFlow) {
	mnet.Demand.Flows = append(mnet.Demand.Flows, flow)
	mnet.DemandLoaded = true
}

// Node returns node by its identifier
func (mnet *MultiNet) Node(id NodeID) (*Node, bool) {
	node, ok := mnet.nodesIndex[id]
	return node, ok
}

// Bound returns bounding box of every loaded geometry. Second value is false when nothing is loaded
func (mnet *MultiNet) Bound() (orb.Bound, bool) {
	var bound orb.Bound
	found := false
	extend := func(b orb.Bound) {
		if !found {
			bound = b
			found = true
			return
		}
		bound = bound.Union(b)
	}
	if mnet.NodeLoaded {
		for _, node := range mnet.Nodes {
			extend(node.Geom.Bound())
		}
	}
	if mnet.LinkLoaded {
		for _, link := range mnet.Links {
			if len(link.Geom) > 0 {
				extend(link.Geom.Bound())
			}
		}
	}
	if mnet.POILoaded {
		for _, poi := range mnet.POIs {
			if len(poi.Geom) > 0 {
				extend(poi.Geom.Bound())
			}
		}
	}
	if mnet.ZoneLoaded {
		for _, zone := range mnet.Zones {
			if len(zone.Geom) > 0 {
				extend(zone.Geom.Bound())
			}
		}
	}
	return bound, found
}

func (mnet *MultiNet) zoneByID(id ZoneID) (*Zone, bool) {
	for _, zone := range mnet.Zones {
		if zone.ID == id {
			return zone, true
		}
	}
	return nil, false
}
