package plot4gmns

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

var (
	// Single-letter shortcuts which are common in styling configs of plotting tools
	shortColorNames = map[string]string{
		"r": "red",
		"g": "green",
		"b": "blue",
		"c": "cyan",
		"m": "magenta",
		"y": "yellow",
		"k": "black",
		"w": "white",
	}
	transparent = color.NRGBA{}
)

// ParseColor converts color string to color.Color.
// Supported: '#rrggbb', '#rrggbbaa', SVG color names, single letters (r, g, b, c, m, y, k, w) and 'none'
func ParseColor(str string) (color.Color, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "" || str == "none" || str == "transparent" {
		return transparent, nil
	}
	if strings.HasPrefix(str, "#") {
		switch len(str) {
		case 7:
			c, err := colorful.Hex(str)
			if err != nil {
				return nil, errors.Wrapf(err, "Can't parse color '%s'", str)
			}
			r, g, b := c.RGB255()
			return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
		case 9:
			c, err := colorful.Hex(str[:7])
			if err != nil {
				return nil, errors.Wrapf(err, "Can't parse color '%s'", str)
			}
			alpha, err := strconv.ParseUint(str[7:], 16, 8)
			if err != nil {
				return nil, errors.Wrapf(err, "Can't parse alpha of color '%s'", str)
			}
			r, g, b := c.RGB255()
			return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
		default:
			return nil, errors.Errorf("Can't parse color '%s': expected #rrggbb or #rrggbbaa", str)
		}
	}
	if full, ok := shortColorNames[str]; ok {
		str = full
	}
	if c, ok := colornames.Map[str]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return nil, errors.Errorf("Unknown color name '%s'", str)
}

// mustColor parses color string and falls back to given color on failure
func mustColor(str string, fallback color.Color) color.Color {
	c, err := ParseColor(str)
	if err != nil {
		return fallback
	}
	return c
}

// withAlpha multiplies alpha channel of color by given factor in [0; 1]
func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha = math.Max(0, math.Min(1, alpha))
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}

func isTransparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}

// Colormap maps values in [0; 1] to colors by blending anchors in CIE-Lab space
type Colormap struct {
	Name    string
	anchors []colorful.Color
}

var colormapsAnchors = map[string][]string{
	"viridis":  {"#440154", "#472c7a", "#3b518b", "#2c718e", "#21908d", "#27ad81", "#5cc863", "#aadc32", "#fde725"},
	"plasma":   {"#0d0887", "#5302a3", "#8b0aa5", "#b83289", "#db5c68", "#f48849", "#febd2a", "#f0f921"},
	"summer":   {"#008066", "#ffff66"},
	"coolwarm": {"#3b4cc0", "#8db0fe", "#dddddd", "#f49a7b", "#b40426"},
	"greys":    {"#ffffff", "#000000"},
	"hot":      {"#0b0000", "#ff0000", "#ffff00", "#ffffff"},
}

// GetColormap returns colormap by its name. Unknown names give 'viridis'
func GetColormap(name string) *Colormap {
	key := strings.ToLower(strings.TrimSpace(name))
	hexes, ok := colormapsAnchors[key]
	if !ok {
		key = "viridis"
		hexes = colormapsAnchors[key]
	}
	cmap := &Colormap{
		Name:    key,
		anchors: make([]colorful.Color, 0, len(hexes)),
	}
	for _, hex := range hexes {
		c, _ := colorful.Hex(hex)
		cmap.anchors = append(cmap.anchors, c)
	}
	return cmap
}

// At returns color for t in [0; 1]. Values out of range are clamped
func (cmap *Colormap) At(t float64) color.Color {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	segments := len(cmap.anchors) - 1
	if segments <= 0 {
		return cmap.anchors[0].Clamped()
	}
	pos := t * float64(segments)
	idx := int(pos)
	if idx >= segments {
		return cmap.anchors[segments].Clamped()
	}
	return cmap.anchors[idx].BlendLab(cmap.anchors[idx+1], pos-float64(idx)).Clamped()
}

// Normalize returns color for value in [vmin; vmax]
func (cmap *Colormap) Normalize(value, vmin, vmax float64) color.Color {
	if vmax <= vmin {
		return cmap.At(0.5)
	}
	return cmap.At((value - vmin) / (vmax - vmin))
}
