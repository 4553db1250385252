package plot4gmns

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"golang.org/x/image/font"
)

type scatterLayer struct {
	points []orb.Point
	marker string
	fill   color.Color
	edge   color.Color
	size   float64
	z      int
	// Figure DPI is needed to convert marker area into pixels
	dpi float64
}

func (l *scatterLayer) zOrder() int {
	return l.z
}

func (l *scatterLayer) bound() (orb.Bound, bool) {
	if len(l.points) == 0 {
		return orb.Bound{}, false
	}
	return orb.MultiPoint(l.points).Bound(), true
}

func (l *scatterLayer) draw(dc *gg.Context, tr *transform) {
	dpi := l.dpi
	if dpi <= 0 {
		dpi = 72
	}
	// Marker area is given in points^2: diameter = sqrt(size) points
	r := math.Sqrt(math.Max(l.size, 0)) / 2 * dpi / 72.0
	if r < 0.5 {
		r = 0.5
	}
	for _, pt := range l.points {
		x, y := tr.apply(pt)
		drawMarker(dc, l.marker, x, y, r, l.fill, l.edge)
	}
}

// drawMarker draws single marker centered at (x, y) with radius r (pixels)
func drawMarker(dc *gg.Context, marker string, x, y, r float64, fill, edge color.Color) {
	switch marker {
	case "+", "x":
		dc.SetColor(fill)
		dc.SetLineWidth(math.Max(1, r/3))
		if marker == "+" {
			dc.DrawLine(x-r, y, x+r, y)
			dc.DrawLine(x, y-r, x, y+r)
		} else {
			d := r / math.Sqrt2
			dc.DrawLine(x-d, y-d, x+d, y+d)
			dc.DrawLine(x-d, y+d, x+d, y-d)
		}
		dc.Stroke()
		return
	case ".":
		dc.DrawCircle(x, y, r/2)
	case "s":
		dc.DrawRectangle(x-r, y-r, 2*r, 2*r)
	case "^":
		dc.DrawRegularPolygon(3, x, y, r, -math.Pi/2)
	case "v":
		dc.DrawRegularPolygon(3, x, y, r, math.Pi/2)
	case "<":
		dc.DrawRegularPolygon(3, x, y, r, math.Pi)
	case ">":
		dc.DrawRegularPolygon(3, x, y, r, 0)
	case "D":
		dc.DrawRegularPolygon(4, x, y, r, 0)
	case "d":
		dc.MoveTo(x, y-r)
		dc.LineTo(x+0.6*r, y)
		dc.LineTo(x, y+r)
		dc.LineTo(x-0.6*r, y)
		dc.ClosePath()
	case "p":
		dc.DrawRegularPolygon(5, x, y, r, -math.Pi/2)
	case "h":
		dc.DrawRegularPolygon(6, x, y, r, -math.Pi/2)
	case "*":
		for i := 0; i < 10; i++ {
			radius := r
			if i%2 == 1 {
				radius = r * 0.4
			}
			angle := -math.Pi/2 + float64(i)*math.Pi/5
			px, py := x+radius*math.Cos(angle), y+radius*math.Sin(angle)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.ClosePath()
	default:
		dc.DrawCircle(x, y, r)
	}
	dc.SetColor(fill)
	if edge == nil || isTransparent(edge) {
		dc.Fill()
		return
	}
	dc.FillPreserve()
	dc.SetColor(edge)
	dc.SetLineWidth(1)
	dc.Stroke()
}

type lineLayer struct {
	lines  []orb.LineString
	colors []color.Color
	widths []float64 // Points
	offset float64   // Points
	z      int
	dpi    float64
}

func (l *lineLayer) zOrder() int {
	return l.z
}

func (l *lineLayer) bound() (orb.Bound, bool) {
	var bound orb.Bound
	found := false
	for _, line := range l.lines {
		if len(line) == 0 {
			continue
		}
		if !found {
			bound = line.Bound()
			found = true
			continue
		}
		bound = bound.Union(line.Bound())
	}
	return bound, found
}

func (l *lineLayer) draw(dc *gg.Context, tr *transform) {
	dpi := l.dpi
	if dpi <= 0 {
		dpi = 72
	}
	for i, line := range l.lines {
		if len(line) < 2 {
			continue
		}
		pixels := make(orb.LineString, len(line))
		for j, pt := range line {
			x, y := tr.apply(pt)
			pixels[j] = orb.Point{x, y}
		}
		if l.offset != 0 {
			pixels = offsetCurve(pixels, l.offset*dpi/72.0)
		}
		for j, pt := range pixels {
			if j == 0 {
				dc.MoveTo(pt.X(), pt.Y())
			} else {
				dc.LineTo(pt.X(), pt.Y())
			}
		}
		dc.SetColor(pickColor(l.colors, i, color.Black))
		dc.SetLineWidth(pickFloat(l.widths, i, 1) * dpi / 72.0)
		dc.Stroke()
	}
}

type polygonLayer struct {
	polygons  []orb.Polygon
	faces     []color.Color
	edge      color.Color
	lineWidth float64 // Points
	alpha     float64
	z         int
	dpi       float64
}

func (l *polygonLayer) zOrder() int {
	return l.z
}

func (l *polygonLayer) bound() (orb.Bound, bool) {
	var bound orb.Bound
	found := false
	for _, poly := range l.polygons {
		if len(poly) == 0 || len(poly[0]) == 0 {
			continue
		}
		if !found {
			bound = poly.Bound()
			found = true
			continue
		}
		bound = bound.Union(poly.Bound())
	}
	return bound, found
}

func (l *polygonLayer) draw(dc *gg.Context, tr *transform) {
	dpi := l.dpi
	if dpi <= 0 {
		dpi = 72
	}
	lineWidth := l.lineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	dc.SetFillRuleEvenOdd()
	for i, poly := range l.polygons {
		for _, ring := range poly {
			if len(ring) < 3 {
				continue
			}
			dc.NewSubPath()
			for j, pt := range ring {
				x, y := tr.apply(pt)
				if j == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
		}
		face := pickColor(l.faces, i, transparent)
		if !isTransparent(face) {
			dc.SetColor(withAlpha(face, l.alpha))
			dc.FillPreserve()
		}
		if l.edge != nil && !isTransparent(l.edge) {
			dc.SetColor(withAlpha(l.edge, l.alpha))
			dc.SetLineWidth(lineWidth * dpi / 72.0)
			dc.StrokePreserve()
		}
		dc.ClearPath()
	}
	dc.SetFillRuleWinding()
}

type annotationLayer struct {
	text string
	at   orb.Point
	clr  color.Color
	size float64
	bold bool
	z    int
	face font.Face
}

func (l *annotationLayer) zOrder() int {
	return l.z
}

func (l *annotationLayer) bound() (orb.Bound, bool) {
	return l.at.Bound(), true
}

func (l *annotationLayer) draw(dc *gg.Context, tr *transform) {
	if l.face != nil {
		dc.SetFontFace(l.face)
	}
	x, y := tr.apply(l.at)
	dc.SetColor(l.clr)
	dc.DrawStringAnchored(l.text, x, y, 0, 0)
}

func pickColor(colors []color.Color, i int, fallback color.Color) color.Color {
	switch {
	case len(colors) == 0:
		return fallback
	case len(colors) == 1:
		return colors[0]
	case i < len(colors):
		return colors[i]
	default:
		return fallback
	}
}

func pickFloat(values []float64, i int, fallback float64) float64 {
	switch {
	case len(values) == 0:
		return fallback
	case len(values) == 1:
		return values[0]
	case i < len(values):
		return values[i]
	default:
		return fallback
	}
}
