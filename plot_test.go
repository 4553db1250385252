package plot4gmns

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    []string
		wantErr bool
	}{
		{name: "string", value: "auto", want: []string{"auto"}},
		{name: "list", value: []string{"auto", "walk"}, want: []string{"auto", "walk"}},
		{name: "empty list", value: []string{}, want: []string{}},
		{name: "int", value: 42, wantErr: true},
		{name: "list of ints", value: []int{1, 2}, wantErr: true},
		{name: "nil", value: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeFilter(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFilterType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOutputDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dir := t.TempDir()
	got, ok := resolveOutputDir(dir)
	assert.True(t, ok)
	assert.Equal(t, dir, got)

	got, ok = resolveOutputDir("")
	assert.False(t, ok)
	assert.Equal(t, cwd, got)

	got, ok = resolveOutputDir(filepath.Join(dir, "does", "not", "exist"))
	assert.False(t, ok)
	assert.Equal(t, cwd, got)

	fname := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(fname, []byte("not a directory"), 0644))
	got, ok = resolveOutputDir(fname)
	assert.False(t, ok)
	assert.Equal(t, cwd, got)
}

func TestShowSavesPNG(t *testing.T) {
	mnet := testNetwork(t)
	dir := t.TempDir()
	var buf bytes.Buffer

	fig, err := ShowNetworkByModes(mnet, "auto", WithOutputDir(dir), WithLogger(log.New(&buf)))
	require.NoError(t, err)
	require.NotNil(t, fig)

	path := filepath.Join(dir, ResultsFolder, "network_by_mode.png")
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	width, height := mnet.Style.Pixels()
	assert.Equal(t, width, img.Bounds().Dx())
	assert.Equal(t, height, img.Bounds().Dy())

	assert.Contains(t, buf.String(), "The image has been saved to the designated location: "+path)
	xLabel, yLabel := fig.Labels()
	assert.Equal(t, "x_coord", xLabel)
	assert.Equal(t, "y_coord", yLabel)
}

func TestShowWithoutSaving(t *testing.T) {
	mnet := testNetwork(t)
	dir := t.TempDir()

	fig, err := ShowNetworkByModes(mnet, nil, WithOutputDir(dir), WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	// Nodes, links and POIs
	assert.Equal(t, 3, fig.Layers())

	_, err = os.Stat(filepath.Join(dir, ResultsFolder))
	assert.True(t, os.IsNotExist(err))
}

func TestShowNetworkByModesEmptyList(t *testing.T) {
	mnet := testNetwork(t)
	fig, err := ShowNetworkByModes(mnet, []string(nil), WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	// Same as 'all': nodes, links and POIs
	assert.Equal(t, 3, fig.Layers())

	fig, err = ShowNetworkByModes(mnet, []string{}, WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 3, fig.Layers())
}

func TestShowContinuesFigure(t *testing.T) {
	mnet := testNetwork(t)
	noSave := []func(*PlotOptions){WithSave2PNG(false), WithLogger(quietLogger())}

	fig, err := ShowNetworkByLinkTypes(mnet, "primary", noSave...)
	require.NoError(t, err)
	layers := fig.Layers()

	next, err := ShowNetworkByPOITypes(mnet, []string{"school"}, append(noSave, WithFigure(fig))...)
	require.NoError(t, err)
	assert.Same(t, fig, next)
	assert.Equal(t, layers+3, next.Layers())
}

func TestShowFilterType(t *testing.T) {
	mnet := testNetwork(t)
	_, err := ShowNetworkByNodeTypes(mnet, 5, WithSave2PNG(false))
	assert.ErrorIs(t, err, ErrFilterType)
	_, err = ShowNetworkByLinkTypes(mnet, map[string]string{}, WithSave2PNG(false))
	assert.ErrorIs(t, err, ErrFilterType)
	_, err = ShowNetworkByPOITypes(mnet, 1.5, WithSave2PNG(false))
	assert.ErrorIs(t, err, ErrFilterType)
	_, err = ShowNetworkByModes(mnet, []interface{}{"auto"}, WithSave2PNG(false))
	assert.ErrorIs(t, err, ErrFilterType)
}

func TestShowInvalidRange(t *testing.T) {
	mnet := testNetwork(t)
	var buf bytes.Buffer
	opts := []func(*PlotOptions){WithSave2PNG(false), WithLogger(log.New(&buf))}

	fig, err := ShowNetworkByLinkLanes(mnet, 3, 1, opts...)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "'min_lanes' should not less than 'max_lanes'")
	// Only POIs are left since no links (and so no nodes) are selected
	assert.Equal(t, 1, fig.Layers())

	buf.Reset()
	_, err = ShowNetworkByLinkFreeSpeed(mnet, 100, 10, opts...)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "'min_free_speed' should not less than 'max_free_speed'")

	buf.Reset()
	_, err = ShowNetworkByLinkLength(mnet, 100, 10, opts...)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "'min_length' should not less than 'max_length'")
}

func TestShowNodeTypesSkipsEmptyGroups(t *testing.T) {
	mnet := testNetwork(t)
	fig, err := ShowNetworkByNodeTypes(mnet, []string{"traffic_signals", "stop"}, WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	// One scatter (no 'stop' nodes), links and POIs
	assert.Equal(t, 3, fig.Layers())
}

func TestShowLinkDistributionLegend(t *testing.T) {
	mnet := testNetwork(t)
	fig, err := ShowNetworkByLinkCapacityDistribution(mnet, WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	legend := fig.Legend()
	require.Len(t, legend, 2)
	assert.Equal(t, "capacity:0.0000", legend[0].Label)
	assert.Equal(t, "capacity:2000.0000", legend[1].Label)
	assert.Equal(t, 0.5, legend[0].LineWidth)
	assert.Equal(t, 5.0, legend[1].LineWidth)

	fig, err = ShowNetworkByLinkFreeSpeedDistribution(mnet, WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, "free speed:80.0000", fig.Legend()[1].Label)
}

func TestDistributionWidths(t *testing.T) {
	widths, minValue, maxValue := distributionWidths([]float64{0, 5, 10})
	assert.Equal(t, []float64{0.5, 2.75, 5}, widths)
	assert.Equal(t, 0.0, minValue)
	assert.Equal(t, 10.0, maxValue)

	widths, _, _ = distributionWidths([]float64{0, 0})
	assert.Equal(t, []float64{0.5, 0.5}, widths)

	widths, minValue, maxValue = distributionWidths(nil)
	assert.Empty(t, widths)
	assert.Equal(t, 0.0, minValue)
	assert.Equal(t, 0.0, maxValue)
}

func TestShowPOIDistributionColorbar(t *testing.T) {
	mnet := testNetwork(t)
	fig, err := ShowNetworkByPOIAttractionDistribution(mnet, WithSave2PNG(false), WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.True(t, fig.HasColorbar())
	_, err = fig.Render()
	require.NoError(t, err)
}

func TestShowDemandNotLoaded(t *testing.T) {
	mnet, err := LoadNetwork(filepath.Join("testdata", "network"), WithLoadDemand(false), WithLoaderLogger(quietLogger()))
	require.NoError(t, err)
	_, err = ShowNetworkDemandMatrixHeatmap(mnet, false, WithSave2PNG(false))
	assert.ErrorIs(t, err, ErrDemandNotLoaded)
	_, err = ShowNetworkByDemandOD(mnet, true, false, WithSave2PNG(false))
	assert.ErrorIs(t, err, ErrDemandNotLoaded)
}

func TestShowDemand(t *testing.T) {
	mnet := testNetwork(t)
	noSave := []func(*PlotOptions){WithSave2PNG(false), WithLogger(quietLogger())}

	fig, err := ShowNetworkDemandMatrixHeatmap(mnet, true, noSave...)
	require.NoError(t, err)
	assert.True(t, fig.IsHeatmap())
	xLabel, yLabel := fig.Labels()
	assert.Equal(t, "to_zone_id", xLabel)
	assert.Equal(t, "from_zone_id", yLabel)

	fig, err = ShowNetworkByDemandOD(mnet, true, false, noSave...)
	require.NoError(t, err)
	// Zones, two labels and OD lines
	assert.Equal(t, 4, fig.Layers())
	legend := fig.Legend()
	require.Len(t, legend, 2)
	assert.Equal(t, "volume:5.0000", legend[0].Label)
	assert.Equal(t, "volume:120.0000", legend[1].Label)

	fig, err = ShowNetworkByDemandOD(mnet, false, true, noSave...)
	require.NoError(t, err)
	// Nodes, links, POIs and OD lines
	assert.Equal(t, 4, fig.Layers())
}

func TestShowEveryOperation(t *testing.T) {
	mnet := testNetwork(t)
	dir := t.TempDir()
	opts := []func(*PlotOptions){WithOutputDir(dir), WithSave2GeoJSON(true), WithLogger(quietLogger())}

	tests := []struct {
		name       string
		show       func() (*Figure, error)
		hasGeoJSON bool
	}{
		{"network_by_mode", func() (*Figure, error) { return ShowNetworkByModes(mnet, []string{"auto", "bike"}, opts...) }, true},
		{"network_by_node_type", func() (*Figure, error) { return ShowNetworkByNodeTypes(mnet, "traffic_signals", opts...) }, true},
		{"network_by_link_type", func() (*Figure, error) { return ShowNetworkByLinkTypes(mnet, "primary", opts...) }, true},
		{"network_by_link_lane", func() (*Figure, error) { return ShowNetworkByLinkLanes(mnet, 1, 2, opts...) }, true},
		{"network_by_link_free_speed", func() (*Figure, error) { return ShowNetworkByLinkFreeSpeed(mnet, 30, 60, opts...) }, true},
		{"network_by_link_length", func() (*Figure, error) { return ShowNetworkByLinkLength(mnet, 0, 200, opts...) }, true},
		{"network_by_link_lane_distribution", func() (*Figure, error) { return ShowNetworkByLinkLaneDistribution(mnet, opts...) }, true},
		{"network_by_link_free_speed_distribution", func() (*Figure, error) { return ShowNetworkByLinkFreeSpeedDistribution(mnet, opts...) }, true},
		{"network_by_link_capacity_distribution", func() (*Figure, error) { return ShowNetworkByLinkCapacityDistribution(mnet, opts...) }, true},
		{"network_by_poi_type", func() (*Figure, error) { return ShowNetworkByPOITypes(mnet, "office", opts...) }, true},
		{"network_by_poi_production_distribution", func() (*Figure, error) { return ShowNetworkByPOIProductionDistribution(mnet, opts...) }, true},
		{"network_by_poi_attraction_distribution", func() (*Figure, error) { return ShowNetworkByPOIAttractionDistribution(mnet, opts...) }, true},
		{"network_by_demand_matrix_heatmap", func() (*Figure, error) { return ShowNetworkDemandMatrixHeatmap(mnet, true, opts...) }, false},
		{"network_by_demand_od", func() (*Figure, error) { return ShowNetworkByDemandOD(mnet, true, true, opts...) }, true},
		{"network_by_shortest_path", func() (*Figure, error) { return ShowNetworkByShortestPath(mnet, 1, 3, opts...) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, err := tt.show()
			require.NoError(t, err)
			require.NotNil(t, fig)
			assert.FileExists(t, filepath.Join(dir, ResultsFolder, tt.name+".png"))
			geojsonPath := filepath.Join(dir, ResultsFolder, tt.name+".geojson")
			if !tt.hasGeoJSON {
				assert.NoFileExists(t, geojsonPath)
				return
			}
			data, err := os.ReadFile(geojsonPath)
			require.NoError(t, err)
			fc, err := geojson.UnmarshalFeatureCollection(data)
			require.NoError(t, err)
			assert.NotEmpty(t, fc.Features)
		})
	}
}
