package plot4gmns

// ShowNetworkByModes draws links which allow any of given network modes.
// Modes could be string or []string; nil or empty list means 'all'
func ShowNetworkByModes(mnet *MultiNet, modes interface{}, options ...func(*PlotOptions)) (*Figure, error) {
	if modes == nil {
		modes = []string{NetworkModeAll}
	}
	modesList, err := normalizeFilter(modes)
	if err != nil {
		return nil, err
	}
	if len(modesList) == 0 {
		modesList = []string{NetworkModeAll}
	}
	p := newPlot(mnet, options...)
	sel := ExtractByNetworkModes(mnet, modesList)
	p.drawSelection(sel)
	return p.finish("network_by_mode", sel.GeoJSON())
}

// ShowNetworkByNodeTypes draws nodes of given `osm_highway` types, each type with its own marker and color
func ShowNetworkByNodeTypes(mnet *MultiNet, nodeTypes interface{}, options ...func(*PlotOptions)) (*Figure, error) {
	nodeTypesList, err := normalizeFilter(nodeTypes)
	if err != nil {
		return nil, err
	}
	p := newPlot(mnet, options...)
	sel := ExtractByNodeTypes(mnet, nodeTypesList)
	// Empty groups are not drawn at all
	groups := make([]NodeGroup, 0, len(sel.NodeGroups))
	for _, group := range sel.NodeGroups {
		if len(group.Points) > 0 {
			groups = append(groups, group)
		}
	}
	sel.NodeGroups = groups
	p.drawSelection(sel)
	return p.finish("network_by_node_type", sel.GeoJSON())
}

// ShowNetworkByLinkTypes draws links which `link_type_name` is one of given types
func ShowNetworkByLinkTypes(mnet *MultiNet, linkTypes interface{}, options ...func(*PlotOptions)) (*Figure, error) {
	linkTypesList, err := normalizeFilter(linkTypes)
	if err != nil {
		return nil, err
	}
	p := newPlot(mnet, options...)
	sel := ExtractByLinkTypes(mnet, linkTypesList)
	p.drawSelection(sel)
	return p.finish("network_by_link_type", sel.GeoJSON())
}
