package plot4gmns

import (
	"image/color"

	"github.com/LdDl/ch"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var pathColor = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

type nodesPair struct {
	source NodeID
	target NodeID
}

// PathFinder answers shortest path queries over network links. Link length is used as weight
type PathFinder struct {
	graph *ch.Graph
	// Shortest link for each pair of connected nodes
	links map[nodesPair]*Link
}

// NewPathFinder prepares contraction hierarchies for network links
func NewPathFinder(mnet *MultiNet) (*PathFinder, error) {
	pf := &PathFinder{
		graph: &ch.Graph{},
		links: make(map[nodesPair]*Link, len(mnet.Links)),
	}
	for _, link := range mnet.Links {
		key := nodesPair{source: link.SourceNodeID, target: link.TargetNodeID}
		if existing, ok := pf.links[key]; ok && existing.Length <= link.Length {
			continue
		}
		pf.links[key] = link
	}
	// Iterate links again to add edges in load order
	for _, link := range mnet.Links {
		key := nodesPair{source: link.SourceNodeID, target: link.TargetNodeID}
		if pf.links[key] != link {
			continue
		}
		source := int64(link.SourceNodeID)
		target := int64(link.TargetNodeID)
		err := pf.graph.CreateVertex(source)
		if err != nil {
			return nil, errors.Wrap(err, "Can't create source vertex")
		}
		err = pf.graph.CreateVertex(target)
		if err != nil {
			return nil, errors.Wrap(err, "Can't create target vertex")
		}
		err = pf.graph.AddEdge(source, target, link.Length)
		if err != nil {
			return nil, errors.Wrap(err, "Can't wrap source and target vertices as edge")
		}
	}
	if len(pf.links) > 0 {
		pf.graph.PrepareContractionHierarchies()
	}
	return pf, nil
}

// ShortestPath returns links of shortest path between two nodes and its total length.
// ErrNoPath is returned when nodes are unknown or not connected
func (pf *PathFinder) ShortestPath(source, target NodeID) ([]*Link, float64, error) {
	if len(pf.links) == 0 {
		return nil, -1, errors.Wrapf(ErrNoPath, "from %d to %d", source, target)
	}
	cost, vertices := pf.graph.ShortestPath(int64(source), int64(target))
	if cost < 0 || len(vertices) == 0 {
		return nil, -1, errors.Wrapf(ErrNoPath, "from %d to %d", source, target)
	}
	links := make([]*Link, 0, len(vertices))
	for i := 1; i < len(vertices); i++ {
		link, ok := pf.links[nodesPair{source: NodeID(vertices[i-1]), target: NodeID(vertices[i])}]
		if !ok {
			return nil, -1, errors.Errorf("Can't find link between nodes %d and %d", vertices[i-1], vertices[i])
		}
		links = append(links, link)
	}
	return links, cost, nil
}

// ExtractByShortestPath selects links of shortest path between two nodes and nodes along it
func ExtractByShortestPath(mnet *MultiNet, source, target NodeID) (*Selection, float64, error) {
	for _, id := range []NodeID{source, target} {
		if _, ok := mnet.Node(id); !ok {
			return nil, -1, errors.Wrapf(ErrNoPath, "unknown node %d", id)
		}
	}
	pf, err := NewPathFinder(mnet)
	if err != nil {
		return nil, -1, err
	}
	links, cost, err := pf.ShortestPath(source, target)
	if err != nil {
		return nil, -1, err
	}
	sel := &Selection{}
	for _, link := range links {
		sel.addLink(link)
	}
	group := NodeGroup{Type: nodeTypeOther, Points: make([]orb.Point, 0, len(links)+1)}
	if node, ok := mnet.Node(source); ok {
		group.Points = append(group.Points, node.Geom)
	}
	for _, link := range links {
		if node, ok := mnet.Node(link.TargetNodeID); ok {
			group.Points = append(group.Points, node.Geom)
		}
	}
	sel.NodeGroups = []NodeGroup{group}
	return sel, cost, nil
}

// ShowNetworkByShortestPath draws whole network and highlights shortest path between two nodes
func ShowNetworkByShortestPath(mnet *MultiNet, source, target NodeID, options ...func(*PlotOptions)) (*Figure, error) {
	sel, cost, err := ExtractByShortestPath(mnet, source, target)
	if err != nil {
		return nil, err
	}
	p := newPlot(mnet, options...)
	p.opts.logger.Debug("Shortest path has been found", "source", source, "target", target, "length", cost, "links", len(sel.Links))

	base := ExtractByNetworkModes(mnet, []string{NetworkModeAll})
	p.drawSelection(base)

	width := p.style.LinkStyle.LineWidth * 3
	if width <= 0 {
		width = maxDistWidth
	}
	p.fig.Lines(sel.LinkCoords, []color.Color{pathColor}, []float64{width}, ZOrderNode)
	endpoints := sel.NodeGroups[0].Points
	if len(endpoints) > 0 {
		p.fig.Scatter(
			[]orb.Point{endpoints[0], endpoints[len(endpoints)-1]},
			"o",
			pathColor,
			color.Black,
			p.style.NodeStyle.Size*4,
			ZOrderZone,
		)
	}
	p.fig.SetLegend([]LegendEntry{{Label: legendLabel("length", cost), Color: pathColor, LineWidth: width}})
	return p.finish("network_by_shortest_path", sel.GeoJSON())
}
