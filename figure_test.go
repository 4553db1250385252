package plot4gmns

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigureRenderSize(t *testing.T) {
	style := smallStyle()
	fig := NewFigure(style)
	img, err := fig.Render()
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	fig.Scatter([]orb.Point{{0, 0}, {1, 1}}, "^", color.Black, transparent, 10, ZOrderNode)
	fig.Lines([]orb.LineString{{{0, 0}, {1, 1}}}, []color.Color{color.Black}, []float64{1}, ZOrderLink)
	fig.Polygons([]orb.Polygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}, []color.Color{color.White}, color.Black, 1, 0.7, ZOrderPOI)
	fig.Annotate("zone", orb.Point{0.5, 0.5}, color.Black, 10, true, ZOrderZone)
	fig.SetLabels("x_coord", "y_coord")
	fig.SetLegend([]LegendEntry{{Label: "lanes:1.0000", Color: color.Black, LineWidth: 0.5}})
	fig.SetColorbar(GetColormap("viridis"), 0, 1)
	assert.Equal(t, 4, fig.Layers())

	var buf bytes.Buffer
	require.NoError(t, fig.EncodePNG(&buf))
	img, err = png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestFigureBadSize(t *testing.T) {
	style := smallStyle()
	style.FigureSize = [2]float64{0.001, 3}
	_, err := NewFigure(style).Render()
	assert.Error(t, err)
}

func TestFigureBound(t *testing.T) {
	fig := NewFigure(nil)
	_, ok := fig.Bound()
	assert.False(t, ok)

	// Empty collections are not added at all
	fig.Lines(nil, nil, nil, ZOrderLink)
	assert.Equal(t, 0, fig.Layers())

	fig.Scatter([]orb.Point{{1, 2}}, "o", color.Black, nil, 10, ZOrderNode)
	fig.Lines([]orb.LineString{{{-1, 0}, {3, 5}}}, nil, nil, ZOrderLink)
	bound, ok := fig.Bound()
	require.True(t, ok)
	assert.Equal(t, orb.Point{-1, 0}, bound.Min)
	assert.Equal(t, orb.Point{3, 5}, bound.Max)
}

func TestAutoscale(t *testing.T) {
	bound := autoscale(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 20}})
	assert.InDelta(t, -0.5, bound.Min.X(), 1e-9)
	assert.InDelta(t, 10.5, bound.Max.X(), 1e-9)
	assert.InDelta(t, -1, bound.Min.Y(), 1e-9)
	assert.InDelta(t, 21, bound.Max.Y(), 1e-9)

	// Single point gives non-degenerated bounds
	bound = autoscale(orb.Bound{Min: orb.Point{5, 0}, Max: orb.Point{5, 0}})
	assert.Greater(t, bound.Max.X(), bound.Min.X())
	assert.Greater(t, bound.Max.Y(), bound.Min.Y())
}

func TestTransform(t *testing.T) {
	tr := newTransform(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}, rect{x: 10, y: 20, w: 100, h: 50})
	x, y := tr.apply(orb.Point{0, 0})
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 70.0, y)
	x, y = tr.apply(orb.Point{10, 10})
	assert.Equal(t, 110.0, x)
	assert.Equal(t, 20.0, y)
}

func TestTransformProjected(t *testing.T) {
	data := projectBound(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}, pointToEuclidean)
	tr := newTransform(data, rect{x: 0, y: 0, w: 100, h: 100})
	tr.project = pointToEuclidean
	x, y := tr.apply(orb.Point{10, 10})
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
	// Mercator stretches latitudes, so middle of data lies below the middle of plot area
	_, y = tr.apply(orb.Point{5, 5})
	assert.Greater(t, y, 50.0)
}

func TestFigureProjectionAndOffset(t *testing.T) {
	style := smallStyle()
	style.Projection = ProjectionMercator
	fig := NewFigure(style)
	fig.LinesOffset([]orb.LineString{{{37.60, 55.70}, {37.65, 55.75}}, {{37.65, 55.75}, {37.60, 55.70}}}, []color.Color{color.Black}, []float64{1}, 2, ZOrderLink)
	fig.Scatter([]orb.Point{{37.60, 55.70}, {37.65, 55.75}}, "o", color.Black, nil, 10, ZOrderNode)
	assert.Equal(t, 2, fig.Layers())

	// Bound stays in data coordinates
	bound, ok := fig.Bound()
	require.True(t, ok)
	assert.Equal(t, orb.Point{37.60, 55.70}, bound.Min)

	img, err := fig.Render()
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestNiceTicks(t *testing.T) {
	ticks, step := niceTicks(0, 1, 5)
	assert.InDelta(t, 0.2, step, 1e-12)
	require.Len(t, ticks, 6)
	assert.Equal(t, 0.0, ticks[0])
	assert.InDelta(t, 1.0, ticks[5], 1e-9)
	assert.Equal(t, "0.2", formatTick(ticks[1], step))

	ticks, step = niceTicks(-3, 1047, 6)
	assert.Equal(t, 200.0, step)
	assert.Equal(t, []float64{0, 200, 400, 600, 800, 1000}, ticks)
	assert.Equal(t, "1000", formatTick(1000, step))

	ticks, step = niceTicks(5, 5, 6)
	assert.Equal(t, []float64{5}, ticks)
	assert.Equal(t, 0.0, step)
}

func TestHeatmap(t *testing.T) {
	matrix := [][]float64{{0, 120}, {30, 5}}
	fig := NewHeatmap(smallStyle(), matrix, []string{"1", "2"}, []string{"1", "2"}, 0, 120, true)
	assert.True(t, fig.IsHeatmap())
	assert.True(t, fig.HasColorbar())
	img, err := fig.Render()
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	// Empty matrix still renders
	_, err = NewHeatmap(smallStyle(), nil, nil, nil, 0, 0, false).Render()
	require.NoError(t, err)
}

func TestHeatmapHelpers(t *testing.T) {
	assert.Equal(t, color.Black, textColorFor(color.White))
	assert.Equal(t, color.White, textColorFor(color.Black))
	assert.Equal(t, "1.2e+02", formatCell(120))
	assert.Equal(t, "5", formatCell(5))
	assert.Equal(t, 1, labelStride(10, 20))
	assert.Equal(t, 3, labelStride(50, 20))
}
