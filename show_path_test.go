package plot4gmns

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath(t *testing.T) {
	mnet := testNetwork(t)
	pf, err := NewPathFinder(mnet)
	require.NoError(t, err)

	tests := []struct {
		name      string
		source    NodeID
		target    NodeID
		wantLinks []LinkID
		wantCost  float64
	}{
		{name: "straight", source: 1, target: 3, wantLinks: []LinkID{1, 2}, wantCost: 200},
		{name: "through long link", source: 4, target: 3, wantLinks: []LinkID{3, 7}, wantCost: 600},
		{name: "single link", source: 2, target: 5, wantLinks: []LinkID{5}, wantCost: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links, cost, err := pf.ShortestPath(tt.source, tt.target)
			require.NoError(t, err)
			ids := make([]LinkID, 0, len(links))
			for _, link := range links {
				ids = append(ids, link.ID)
			}
			assert.Equal(t, tt.wantLinks, ids)
			assert.InDelta(t, tt.wantCost, cost, 1e-9)
		})
	}

	// Node 3 has no outgoing links
	_, _, err = pf.ShortestPath(3, 1)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestExtractByShortestPath(t *testing.T) {
	mnet := testNetwork(t)
	sel, cost, err := ExtractByShortestPath(mnet, 4, 3)
	require.NoError(t, err)
	assert.InDelta(t, 600, cost, 1e-9)
	require.Len(t, sel.NodeGroups, 1)
	assert.Equal(t, []orb.Point{{0, 1}, {1, 1}, {2, 0}}, sel.NodeGroups[0].Points)
	assert.Len(t, sel.LinkCoords, 2)

	_, _, err = ExtractByShortestPath(mnet, 1, 42)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestShowNetworkByShortestPath(t *testing.T) {
	mnet := testNetwork(t)
	fig, err := ShowNetworkByShortestPath(mnet, 1, 3, WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	// Base network (nodes, links, POIs), path lines and endpoints
	assert.Equal(t, 5, fig.Layers())
	require.Len(t, fig.Legend(), 1)
	assert.Equal(t, "length:200.0000", fig.Legend()[0].Label)

	_, err = ShowNetworkByShortestPath(mnet, 3, 1, WithSave2PNG(false), WithLogger(quietLogger()))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestShortestPathEmptyNetwork(t *testing.T) {
	pf, err := NewPathFinder(NewMultiNet())
	require.NoError(t, err)
	_, _, err = pf.ShortestPath(1, 2)
	assert.ErrorIs(t, err, ErrNoPath)
}
