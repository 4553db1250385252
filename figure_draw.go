package plot4gmns

import (
	"image/color"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Text sizes in points
const (
	tickFontSize   = 8.0
	labelFontSize  = 10.0
	legendFontSize = 8.0
)

var (
	fontsOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontsErr    error

	axisColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	frameColor = color.Black
)

func parseFonts() error {
	fontsOnce.Do(func() {
		regularFont, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "Can't parse regular font")
			return
		}
		boldFont, fontsErr = truetype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "Can't parse bold font")
		}
	})
	return fontsErr
}

type fontKey struct {
	size float64
	bold bool
}

// fontSet caches font faces of a single render
type fontSet struct {
	dpi   float64
	faces map[fontKey]font.Face
}

func newFontSet(dpi float64) (*fontSet, error) {
	if err := parseFonts(); err != nil {
		return nil, err
	}
	return &fontSet{dpi: dpi, faces: make(map[fontKey]font.Face)}, nil
}

func (fs *fontSet) face(size float64, bold bool) font.Face {
	key := fontKey{size: size, bold: bold}
	if face, ok := fs.faces[key]; ok {
		return face
	}
	f := regularFont
	if bold {
		f = boldFont
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     fs.dpi,
		Hinting: font.HintingFull,
	})
	fs.faces[key] = face
	return face
}

// scale returns number of pixels in one point
func (fig *Figure) scale() float64 {
	return fig.style.DPI / 72.0
}

// plotArea returns rectangle for data, leaving room for ticks, labels and colorbar
func (fig *Figure) plotArea(dc *gg.Context, faces *fontSet, data orb.Bound) rect {
	s := fig.scale()
	width, height := float64(dc.Width()), float64(dc.Height())

	dc.SetFontFace(faces.face(labelFontSize, false))
	_, labelH := dc.MeasureString("Xg")

	dc.SetFontFace(faces.face(tickFontSize, false))
	_, tickH := dc.MeasureString("0")
	yTicks, yStep := niceTicks(data.Min.Y(), data.Max.Y(), 6)
	tickW := 0.0
	for _, v := range yTicks {
		w, _ := dc.MeasureString(formatTick(v, yStep))
		tickW = math.Max(tickW, w)
	}

	left := 8*s + labelH + 6*s + tickW + 6*s
	bottom := 8*s + labelH + 6*s + tickH + 6*s
	top := 10 * s
	right := 14 * s
	if fig.colorbar != nil {
		cbTicks, cbStep := niceTicks(fig.colorbar.vmin, fig.colorbar.vmax, 5)
		cbW := 0.0
		for _, v := range cbTicks {
			w, _ := dc.MeasureString(formatTick(v, cbStep))
			cbW = math.Max(cbW, w)
		}
		right += colorbarGap(s) + colorbarWidth(s) + 6*s + cbW
	}
	return rect{
		x: left,
		y: top,
		w: math.Max(width-left-right, 1),
		h: math.Max(height-top-bottom, 1),
	}
}

func colorbarGap(s float64) float64 {
	return 14 * s
}

func colorbarWidth(s float64) float64 {
	return 12 * s
}

func (fig *Figure) drawAxes(dc *gg.Context, faces *fontSet, tr *transform) {
	s := fig.scale()
	area := tr.area
	tickLen := 4 * s

	dc.SetFontFace(faces.face(tickFontSize, false))
	dc.SetColor(axisColor)
	dc.SetLineWidth(0.8 * s)

	xTicks, xStep := niceTicks(tr.data.Min.X(), tr.data.Max.X(), 6)
	for _, v := range xTicks {
		px, _ := tr.toPixels(orb.Point{v, tr.data.Min.Y()})
		dc.DrawLine(px, area.y+area.h, px, area.y+area.h+tickLen)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(v, xStep), px, area.y+area.h+tickLen+2*s, 0.5, 1)
	}
	yTicks, yStep := niceTicks(tr.data.Min.Y(), tr.data.Max.Y(), 6)
	for _, v := range yTicks {
		_, py := tr.toPixels(orb.Point{tr.data.Min.X(), v})
		dc.DrawLine(area.x-tickLen, py, area.x, py)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(v, yStep), area.x-tickLen-2*s, py, 1, 0.5)
	}
	fig.drawAxisLabels(dc, faces, area)
}

func (fig *Figure) drawAxisLabels(dc *gg.Context, faces *fontSet, area rect) {
	s := fig.scale()
	dc.SetFontFace(faces.face(labelFontSize, false))
	dc.SetColor(color.Black)
	if fig.xLabel != "" {
		dc.DrawStringAnchored(fig.xLabel, area.x+area.w/2, float64(dc.Height())-8*s, 0.5, 0)
	}
	if fig.yLabel != "" {
		cx, cy := 8*s, area.y+area.h/2
		dc.Push()
		dc.RotateAbout(-math.Pi/2, cx, cy)
		dc.DrawStringAnchored(fig.yLabel, cx, cy, 0.5, 1)
		dc.Pop()
	}
}

func (fig *Figure) drawFrame(dc *gg.Context, area rect) {
	dc.SetColor(frameColor)
	dc.SetLineWidth(0.8 * fig.scale())
	dc.DrawRectangle(area.x, area.y, area.w, area.h)
	dc.Stroke()
}

// drawLegend draws legend box in the upper right corner of plot area
func (fig *Figure) drawLegend(dc *gg.Context, faces *fontSet, area rect) {
	s := fig.scale()
	dc.SetFontFace(faces.face(legendFontSize, false))
	labelW := 0.0
	_, labelH := dc.MeasureString("Xg")
	for _, entry := range fig.legend {
		w, _ := dc.MeasureString(entry.Label)
		labelW = math.Max(labelW, w)
	}
	pad := 5 * s
	sample := 20 * s
	rowH := labelH * 1.6
	boxW := pad + sample + pad + labelW + pad
	boxH := pad + rowH*float64(len(fig.legend)) + pad
	boxX := area.x + area.w - boxW - 6*s
	boxY := area.y + 6*s

	dc.DrawRoundedRectangle(boxX, boxY, boxW, boxH, 3*s)
	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 204})
	dc.FillPreserve()
	dc.SetColor(color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
	dc.SetLineWidth(0.8 * s)
	dc.Stroke()

	for i, entry := range fig.legend {
		cy := boxY + pad + rowH*float64(i) + rowH/2
		clr := entry.Color
		if clr == nil {
			clr = color.Black
		}
		dc.SetColor(clr)
		dc.SetLineWidth(math.Max(entry.LineWidth, 0.1) * s)
		dc.DrawLine(boxX+pad, cy, boxX+pad+sample, cy)
		dc.Stroke()
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(entry.Label, boxX+pad+sample+pad, cy, 0, 0.5)
	}
}

// drawColorbar draws vertical gradient to the right of plot area
func (fig *Figure) drawColorbar(dc *gg.Context, faces *fontSet, area rect) {
	s := fig.scale()
	cb := fig.colorbar
	x0 := area.x + area.w + colorbarGap(s)
	w := colorbarWidth(s)
	steps := int(math.Max(area.h, 1))
	for i := 0; i < steps; i++ {
		t := 1 - (float64(i)+0.5)/float64(steps)
		dc.SetColor(cb.cmap.At(t))
		dc.DrawRectangle(x0, area.y+float64(i), w, 1)
		dc.Fill()
	}
	dc.SetColor(frameColor)
	dc.SetLineWidth(0.8 * s)
	dc.DrawRectangle(x0, area.y, w, area.h)
	dc.Stroke()

	dc.SetFontFace(faces.face(tickFontSize, false))
	dc.SetColor(axisColor)
	ticks, step := niceTicks(cb.vmin, cb.vmax, 5)
	for _, v := range ticks {
		t := 0.5
		if cb.vmax > cb.vmin {
			t = (v - cb.vmin) / (cb.vmax - cb.vmin)
		}
		py := area.y + (1-t)*area.h
		dc.DrawLine(x0+w, py, x0+w+3*s, py)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(v, step), x0+w+5*s, py, 0, 0.5)
	}
}

// niceTicks returns round tick values in [lo; hi] and the step between them
func niceTicks(lo, hi float64, target int) ([]float64, float64) {
	span := hi - lo
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 || target < 1 {
		return []float64{lo}, 0
	}
	step := niceNumber(span / float64(target))
	start := math.Ceil(lo/step) * step
	n := int(math.Floor((hi-start)/step + 1e-9))
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		v := start + float64(i)*step
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	return ticks, step
}

func niceNumber(x float64) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)
	var nf float64
	switch {
	case f < 1.5:
		nf = 1
	case f < 3:
		nf = 2
	case f < 7:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}

func formatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	if step == 0 {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
