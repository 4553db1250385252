package main

import (
	"path/filepath"
	"testing"

	"github.com/LdDl/plot4gmns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	input := filepath.Join("..", "..", "testdata", "network")
	style := filepath.Join("..", "..", "testdata", "styles", "custom.toml")
	output := t.TempDir()

	tests := []struct {
		name  string
		args  []string
		fname string
	}{
		{name: "modes", args: []string{"modes", "auto", "bike"}, fname: "network_by_mode"},
		{name: "node types", args: []string{"node-types", "traffic_signals"}, fname: "network_by_node_type"},
		{name: "lanes", args: []string{"lanes", "--min", "1", "--max", "2"}, fname: "network_by_link_lane"},
		{name: "capacity distribution", args: []string{"capacity-dist"}, fname: "network_by_link_capacity_distribution"},
		{name: "poi production", args: []string{"poi-production"}, fname: "network_by_poi_production_distribution"},
		{name: "heatmap", args: []string{"demand-heatmap", "--annot"}, fname: "network_by_demand_matrix_heatmap"},
		{name: "shortest path", args: []string{"shortest-path", "--source", "1", "--target", "3"}, fname: "network_by_shortest_path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(append(tt.args, "--input", input, "--output", output, "--style", style))
			require.NoError(t, root.Execute())
			assert.FileExists(t, filepath.Join(output, plot4gmns.ResultsFolder, tt.fname+".png"))
		})
	}
}

func TestCommandsErrors(t *testing.T) {
	input := filepath.Join("..", "..", "testdata", "network")

	root := newRootCmd()
	root.SetArgs([]string{"node-types", "--input", input})
	assert.Error(t, root.Execute(), "node types are required")

	root = newRootCmd()
	root.SetArgs([]string{"modes", "--input", input, "--style", "no_such_style.toml"})
	assert.Error(t, root.Execute())

	root = newRootCmd()
	root.SetArgs([]string{"shortest-path", "--input", input, "--output", t.TempDir(), "--source", "3", "--target", "1"})
	err := root.Execute()
	assert.ErrorIs(t, err, plot4gmns.ErrNoPath)
}
