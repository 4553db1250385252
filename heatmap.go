package plot4gmns

import (
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type heatmapLayer struct {
	matrix    [][]float64
	rowLabels []string
	colLabels []string
	annot     bool
	cmap      *Colormap
	vmin      float64
	vmax      float64
}

// NewHeatmap creates figure which shows matrix as grid of colored cells.
// First row is drawn at the top. When annot is true every cell gets its value written
func NewHeatmap(style *Style, matrix [][]float64, rowLabels, colLabels []string, vmin, vmax float64, annot bool) *Figure {
	fig := NewFigure(style)
	cmap := GetColormap(fig.style.Cmap)
	fig.heatmap = &heatmapLayer{
		matrix:    matrix,
		rowLabels: rowLabels,
		colLabels: colLabels,
		annot:     annot,
		cmap:      cmap,
		vmin:      vmin,
		vmax:      vmax,
	}
	fig.SetColorbar(cmap, vmin, vmax)
	return fig
}

// IsHeatmap reports whether figure has been created by NewHeatmap
func (fig *Figure) IsHeatmap() bool {
	return fig.heatmap != nil
}

func (fig *Figure) renderHeatmap(dc *gg.Context, faces *fontSet) {
	s := fig.scale()
	hm := fig.heatmap
	rows := len(hm.matrix)
	cols := 0
	for _, row := range hm.matrix {
		if len(row) > cols {
			cols = len(row)
		}
	}

	dc.SetFontFace(faces.face(labelFontSize, false))
	_, labelH := dc.MeasureString("Xg")
	dc.SetFontFace(faces.face(tickFontSize, false))
	_, tickH := dc.MeasureString("0")
	rowLabelW := 0.0
	for _, label := range hm.rowLabels {
		w, _ := dc.MeasureString(label)
		rowLabelW = math.Max(rowLabelW, w)
	}
	colLabelW := 0.0
	for _, label := range hm.colLabels {
		w, _ := dc.MeasureString(label)
		colLabelW = math.Max(colLabelW, w)
	}
	cbTicks, cbStep := niceTicks(hm.vmin, hm.vmax, 5)
	cbW := 0.0
	for _, v := range cbTicks {
		w, _ := dc.MeasureString(formatTick(v, cbStep))
		cbW = math.Max(cbW, w)
	}

	width, height := float64(dc.Width()), float64(dc.Height())
	left := 8*s + labelH + 6*s + rowLabelW + 6*s
	bottom := 8*s + labelH + 6*s + tickH + 6*s
	top := 10 * s
	right := 14*s + colorbarGap(s) + colorbarWidth(s) + 6*s + cbW
	area := rect{
		x: left,
		y: top,
		w: math.Max(width-left-right, 1),
		h: math.Max(height-top-bottom, 1),
	}

	if rows > 0 && cols > 0 {
		cw := area.w / float64(cols)
		ch := area.h / float64(rows)
		for i, row := range hm.matrix {
			for j, v := range row {
				clr := hm.cmap.Normalize(v, hm.vmin, hm.vmax)
				x := area.x + float64(j)*cw
				y := area.y + float64(i)*ch
				dc.SetColor(clr)
				// Half a pixel overlap hides seams between neighbouring cells
				dc.DrawRectangle(x, y, cw+0.5, ch+0.5)
				dc.Fill()
				if hm.annot {
					dc.SetColor(textColorFor(clr))
					dc.DrawStringAnchored(formatCell(v), x+cw/2, y+ch/2, 0.5, 0.5)
				}
			}
		}

		dc.SetColor(axisColor)
		dc.SetLineWidth(0.8 * s)
		colStride := labelStride(colLabelW*1.3, cw)
		for j := 0; j < cols && j < len(hm.colLabels); j += colStride {
			cx := area.x + (float64(j)+0.5)*cw
			dc.DrawLine(cx, area.y+area.h, cx, area.y+area.h+4*s)
			dc.Stroke()
			dc.DrawStringAnchored(hm.colLabels[j], cx, area.y+area.h+6*s, 0.5, 1)
		}
		rowStride := labelStride(tickH*1.5, ch)
		for i := 0; i < rows && i < len(hm.rowLabels); i += rowStride {
			cy := area.y + (float64(i)+0.5)*ch
			dc.DrawLine(area.x-4*s, cy, area.x, cy)
			dc.Stroke()
			dc.DrawStringAnchored(hm.rowLabels[i], area.x-6*s, cy, 1, 0.5)
		}
	}

	fig.drawAxisLabels(dc, faces, area)
	fig.drawColorbar(dc, faces, area)
}

// labelStride returns how many cells one label needs so labels do not overlap
func labelStride(labelSize, cellSize float64) int {
	if cellSize <= 0 || labelSize <= cellSize {
		return 1
	}
	return int(math.Ceil(labelSize / cellSize))
}

// formatCell formats value with two significant digits
func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', 2, 64)
}

// textColorFor picks black or white text depending on relative luminance of background
func textColorFor(bg color.Color) color.Color {
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return color.Black
	}
	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > 0.408 {
		return color.Black
	}
	return color.White
}
