package plot4gmns

import (
	"image"
	"image/color"
	"io"
	"sort"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Layers order. Lower values are drawn first
const (
	ZOrderPOI  = 0
	ZOrderLink = 1
	ZOrderNode = 2
	ZOrderZone = 3
)

// Figure is a retained chart scene. Layers are collected first and rasterized on Render,
// so drawing could continue on the same figure from several calls
type Figure struct {
	style    *Style
	project  func(orb.Point) orb.Point
	xLabel   string
	yLabel   string
	layers   []layer
	legend   []LegendEntry
	colorbar *colorbar
	heatmap  *heatmapLayer
}

// LegendEntry is a line proxy shown in the legend box
type LegendEntry struct {
	Label     string
	Color     color.Color
	LineWidth float64 // Points
}

type colorbar struct {
	cmap *Colormap
	vmin float64
	vmax float64
}

type layer interface {
	zOrder() int
	bound() (orb.Bound, bool)
	draw(dc *gg.Context, tr *transform)
}

// NewFigure creates empty figure. Nil style gives DefaultStyle()
func NewFigure(style *Style) *Figure {
	if style == nil {
		style = DefaultStyle()
	}
	return &Figure{
		style:   style,
		project: projectionByName(style.Projection),
		layers:  make([]layer, 0),
	}
}

// Style returns style figure has been created with
func (fig *Figure) Style() *Style {
	return fig.style
}

// Layers returns number of collected layers
func (fig *Figure) Layers() int {
	return len(fig.layers)
}

// SetLabels sets axis labels
func (fig *Figure) SetLabels(xLabel, yLabel string) {
	fig.xLabel = xLabel
	fig.yLabel = yLabel
}

// Labels returns axis labels
func (fig *Figure) Labels() (string, string) {
	return fig.xLabel, fig.yLabel
}

// SetLegend replaces legend entries
func (fig *Figure) SetLegend(entries []LegendEntry) {
	fig.legend = entries
}

// Legend returns current legend entries
func (fig *Figure) Legend() []LegendEntry {
	return fig.legend
}

// SetColorbar attaches colorbar for given value range
func (fig *Figure) SetColorbar(cmap *Colormap, vmin, vmax float64) {
	fig.colorbar = &colorbar{cmap: cmap, vmin: vmin, vmax: vmax}
}

// HasColorbar reports whether colorbar has been attached
func (fig *Figure) HasColorbar() bool {
	return fig.colorbar != nil
}

// Scatter adds point markers. Size is marker area in points^2
func (fig *Figure) Scatter(points []orb.Point, marker string, fill, edge color.Color, size float64, zorder int) {
	if len(points) == 0 {
		return
	}
	fig.layers = append(fig.layers, &scatterLayer{
		points: points,
		marker: marker,
		fill:   fill,
		edge:   edge,
		size:   size,
		z:      zorder,
		dpi:    fig.style.DPI,
	})
}

// Lines adds line collection. Colors and widths are either single values or one per line
func (fig *Figure) Lines(lines []orb.LineString, colors []color.Color, widths []float64, zorder int) {
	fig.LinesOffset(lines, colors, widths, 0, zorder)
}

// LinesOffset adds line collection where every line is shifted by offset points to the right of its direction
func (fig *Figure) LinesOffset(lines []orb.LineString, colors []color.Color, widths []float64, offset float64, zorder int) {
	if len(lines) == 0 {
		return
	}
	fig.layers = append(fig.layers, &lineLayer{
		lines:  lines,
		colors: colors,
		widths: widths,
		offset: offset,
		z:      zorder,
		dpi:    fig.style.DPI,
	})
}

// Polygons adds polygon collection. Faces are either a single color or one per polygon
func (fig *Figure) Polygons(polygons []orb.Polygon, faces []color.Color, edge color.Color, lineWidth, alpha float64, zorder int) {
	if len(polygons) == 0 {
		return
	}
	fig.layers = append(fig.layers, &polygonLayer{
		polygons:  polygons,
		faces:     faces,
		edge:      edge,
		lineWidth: lineWidth,
		alpha:     alpha,
		z:         zorder,
		dpi:       fig.style.DPI,
	})
}

// Annotate adds text with its left baseline at given data point. Size is in points
func (fig *Figure) Annotate(text string, at orb.Point, c color.Color, size float64, bold bool, zorder int) {
	fig.layers = append(fig.layers, &annotationLayer{
		text: text,
		at:   at,
		clr:  c,
		size: size,
		bold: bold,
		z:    zorder,
	})
}

// Bound returns data bounds of every layer. Second value is false for empty figure
func (fig *Figure) Bound() (orb.Bound, bool) {
	var bound orb.Bound
	found := false
	for _, l := range fig.layers {
		b, ok := l.bound()
		if !ok {
			continue
		}
		if !found {
			bound = b
			found = true
			continue
		}
		bound = bound.Union(b)
	}
	return bound, found
}

// Render rasterizes figure
func (fig *Figure) Render() (image.Image, error) {
	dc, err := fig.render()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders figure and writes it to PNG file
func (fig *Figure) SavePNG(fname string) error {
	dc, err := fig.render()
	if err != nil {
		return err
	}
	err = dc.SavePNG(fname)
	if err != nil {
		return errors.Wrap(err, "Can't save PNG")
	}
	return nil
}

// EncodePNG renders figure and writes PNG to given writer
func (fig *Figure) EncodePNG(w io.Writer) error {
	dc, err := fig.render()
	if err != nil {
		return err
	}
	err = dc.EncodePNG(w)
	if err != nil {
		return errors.Wrap(err, "Can't encode PNG")
	}
	return nil
}

func (fig *Figure) render() (*gg.Context, error) {
	width, height := fig.style.Pixels()
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("Bad figure size %dx%d px", width, height)
	}
	faces, err := newFontSet(fig.style.DPI)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	if fig.heatmap != nil {
		fig.renderHeatmap(dc, faces)
		return dc, nil
	}

	bound, ok := fig.Bound()
	if !ok {
		bound = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}
	}
	data := autoscale(projectBound(bound, fig.project))
	area := fig.plotArea(dc, faces, data)
	tr := newTransform(data, area)
	tr.project = fig.project

	fig.drawAxes(dc, faces, tr)

	sorted := make([]layer, len(fig.layers))
	copy(sorted, fig.layers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].zOrder() < sorted[j].zOrder()
	})
	dc.Push()
	dc.DrawRectangle(area.x, area.y, area.w, area.h)
	dc.Clip()
	for _, l := range sorted {
		if ann, ok := l.(*annotationLayer); ok {
			ann.face = faces.face(ann.size, ann.bold)
		}
		l.draw(dc, tr)
	}
	dc.ResetClip()
	dc.Pop()

	fig.drawFrame(dc, area)
	if len(fig.legend) > 0 {
		fig.drawLegend(dc, faces, area)
	}
	if fig.colorbar != nil {
		fig.drawColorbar(dc, faces, area)
	}
	return dc, nil
}

// autoscale pads bounds by 5% on each side. Degenerated bounds are widened
func autoscale(bound orb.Bound) orb.Bound {
	dx := bound.Max.X() - bound.Min.X()
	dy := bound.Max.Y() - bound.Min.Y()
	if dx <= 0 {
		dx = degeneratedSpan(bound.Min.X())
		bound.Min[0] -= dx / 2
		bound.Max[0] += dx / 2
	}
	if dy <= 0 {
		dy = degeneratedSpan(bound.Min.Y())
		bound.Min[1] -= dy / 2
		bound.Max[1] += dy / 2
	}
	padX := dx * 0.05
	padY := dy * 0.05
	return orb.Bound{
		Min: orb.Point{bound.Min.X() - padX, bound.Min.Y() - padY},
		Max: orb.Point{bound.Max.X() + padX, bound.Max.Y() + padY},
	}
}

func degeneratedSpan(v float64) float64 {
	if v == 0 {
		return 1
	}
	if v < 0 {
		v = -v
	}
	return v * 0.02
}

type rect struct {
	x, y, w, h float64
}

// transform maps data coordinates to pixels. Y axis is flipped.
// Data bound is given in projected coordinates
type transform struct {
	data    orb.Bound
	area    rect
	project func(orb.Point) orb.Point
}

func newTransform(data orb.Bound, area rect) *transform {
	return &transform{data: data, area: area}
}

// apply projects data point and maps it to pixels
func (tr *transform) apply(pt orb.Point) (float64, float64) {
	if tr.project != nil {
		pt = tr.project(pt)
	}
	return tr.toPixels(pt)
}

// toPixels maps already projected point to pixels
func (tr *transform) toPixels(pt orb.Point) (float64, float64) {
	x := tr.area.x + (pt.X()-tr.data.Min.X())/(tr.data.Max.X()-tr.data.Min.X())*tr.area.w
	y := tr.area.y + (tr.data.Max.Y()-pt.Y())/(tr.data.Max.Y()-tr.data.Min.Y())*tr.area.h
	return x, y
}
