package plot4gmns

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/montanaflynn/stats"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	// ResultsFolder is created inside output directory for every saved figure
	ResultsFolder = "p4g_fig_results"

	xAxisLabel = "x_coord"
	yAxisLabel = "y_coord"

	// Distribution line widths (points) are scaled into [minDistWidth; minDistWidth+distWidthRange]
	minDistWidth   = 0.5
	distWidthRange = 4.5
	maxDistWidth   = minDistWidth + distWidthRange
)

// resolveOutputDir returns directory for results. Empty, missing or non-directory path
// falls back to current working directory
func resolveOutputDir(dir string) (string, bool) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir, true
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ".", false
	}
	return cwd, false
}

// normalizeFilter converts filter argument into list of strings.
// Accepted are string and []string; anything else gives ErrFilterType
func normalizeFilter(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	default:
		return nil, errors.Wrapf(ErrFilterType, "got %T", value)
	}
}

// plot holds state of a single Show* call
type plot struct {
	mnet  *MultiNet
	opts  *PlotOptions
	fig   *Figure
	style *Style
}

func newPlot(mnet *MultiNet, options ...func(*PlotOptions)) *plot {
	opts := newPlotOptions(options...)
	style := mnet.Style
	if style == nil {
		style = DefaultStyle()
	}
	fig := opts.figure
	if fig == nil {
		fig = NewFigure(style)
	}
	return &plot{
		mnet:  mnet,
		opts:  opts,
		fig:   fig,
		style: style,
	}
}

// drawNodes draws points with marker and color of given node type
func (p *plot) drawNodes(points []orb.Point, nodeType string) {
	marker, clr := p.style.NodeStyle.Marker(nodeType)
	p.fig.Scatter(
		points,
		marker,
		mustColor(clr, color.Black),
		mustColor(p.style.NodeStyle.EdgeColor, transparent),
		p.style.NodeStyle.Size,
		ZOrderNode,
	)
}

// drawLinks draws lines with link style. Nil widths means style line width
func (p *plot) drawLinks(lines []orb.LineString, widths []float64) {
	if widths == nil {
		widths = []float64{p.style.LinkStyle.LineWidth}
	}
	p.fig.LinesOffset(
		lines,
		[]color.Color{p.linkColor()},
		widths,
		p.style.LinkStyle.Offset,
		ZOrderLink,
	)
}

// drawPOIs draws polygons with POI style. Nil faces means style face color
func (p *plot) drawPOIs(polygons []orb.Polygon, faces []color.Color) {
	if faces == nil {
		faces = []color.Color{mustColor(p.style.POIStyle.FaceColor, color.Gray{Y: 0xa9})}
	}
	p.fig.Polygons(
		polygons,
		faces,
		mustColor(p.style.POIStyle.EdgeColor, color.Black),
		1,
		p.style.POIStyle.Alpha,
		ZOrderPOI,
	)
}

func (p *plot) linkColor() color.Color {
	return mustColor(p.style.LinkStyle.LineColor, color.Black)
}

// drawSelection draws every group of selection, each one only if corresponding data has been loaded
func (p *plot) drawSelection(sel *Selection) {
	if p.mnet.NodeLoaded {
		for _, group := range sel.NodeGroups {
			p.drawNodes(group.Points, group.Type)
		}
	}
	if p.mnet.LinkLoaded {
		p.drawLinks(sel.LinkCoords, nil)
	}
	if p.mnet.POILoaded {
		p.drawPOIs(sel.POICoords, nil)
	}
}

// distributionLegend builds two line proxies for minimum and maximum values
func distributionLegend(name string, clr color.Color, minValue, maxValue float64) []LegendEntry {
	return []LegendEntry{
		{Label: legendLabel(name, minValue), Color: clr, LineWidth: minDistWidth},
		{Label: legendLabel(name, maxValue), Color: clr, LineWidth: maxDistWidth},
	}
}

// distributionWidths scales values into line widths. Returns widths, minimum and maximum value
func distributionWidths(values []float64) ([]float64, float64, float64) {
	if len(values) == 0 {
		return []float64{}, 0, 0
	}
	minValue, _ := stats.Min(values)
	maxValue, _ := stats.Max(values)
	widths := make([]float64, len(values))
	for i, v := range values {
		if maxValue <= 0 {
			widths[i] = minDistWidth
			continue
		}
		widths[i] = v/maxValue*distWidthRange + minDistWidth
	}
	return widths, minValue, maxValue
}

// valuesRange returns minimum and maximum of values. Empty input gives zeros
func valuesRange(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minValue, _ := stats.Min(values)
	maxValue, _ := stats.Max(values)
	return minValue, maxValue
}

// finish applies axis labels and saves results if needed
func (p *plot) finish(fname string, features *geojson.FeatureCollection) (*Figure, error) {
	if !p.fig.IsHeatmap() {
		p.fig.SetLabels(xAxisLabel, yAxisLabel)
	}
	return p.save(fname, features)
}

func (p *plot) save(fname string, features *geojson.FeatureCollection) (*Figure, error) {
	if !p.opts.save2PNG && !p.opts.save2GeoJSON {
		return p.fig, nil
	}
	outputDir, ok := resolveOutputDir(p.opts.outputDir)
	if !ok && p.opts.outputDir != "" {
		p.opts.logger.Debug("Output directory is not available, current working directory will be used", "requested", p.opts.outputDir, "used", outputDir)
	}
	resultsDir := filepath.Join(outputDir, ResultsFolder)
	err := os.MkdirAll(resultsDir, 0755)
	if err != nil {
		return p.fig, errors.Wrapf(err, "Can't create directory '%s'", resultsDir)
	}
	if p.opts.save2PNG {
		path := filepath.Join(resultsDir, fname+".png")
		err = p.fig.SavePNG(path)
		if err != nil {
			return p.fig, errors.Wrapf(err, "Can't save figure '%s'", path)
		}
		p.opts.logger.Infof("The image has been saved to the designated location: %s", path)
	}
	if p.opts.save2GeoJSON && features != nil {
		path := filepath.Join(resultsDir, fname+".geojson")
		err = writeGeoJSON(path, features)
		if err != nil {
			return p.fig, err
		}
		p.opts.logger.Infof("The features have been saved to the designated location: %s", path)
	}
	return p.fig, nil
}
