package plot4gmns

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Style controls look of every figure
type Style struct {
	// Figure size in inches (width, height)
	FigureSize [2]float64 `toml:"figure_size" yaml:"figure_size"`
	DPI        float64    `toml:"dpi" yaml:"dpi"`
	// Colormap name for distributions and heatmaps
	Cmap string `toml:"cmap" yaml:"cmap"`
	// 'none' (default) or 'mercator' for WGS84 networks
	Projection string    `toml:"projection" yaml:"projection"`
	NodeStyle  NodeStyle `toml:"node_style" yaml:"node_style"`
	LinkStyle  LinkStyle `toml:"link_style" yaml:"link_style"`
	POIStyle   POIStyle  `toml:"poi_style" yaml:"poi_style"`
	ZoneStyle  ZoneStyle `toml:"zone_style" yaml:"zone_style"`
}

// NodeStyle describes node markers. Key 'other' is used for node types without own entry
type NodeStyle struct {
	Markers   map[string]string `toml:"markers" yaml:"markers"`
	Colors    map[string]string `toml:"colors" yaml:"colors"`
	Size      float64           `toml:"size" yaml:"size"` // Marker area in points^2
	EdgeColor string            `toml:"edgecolor" yaml:"edgecolor"`
}

type LinkStyle struct {
	LineColor string  `toml:"linecolor" yaml:"linecolor"`
	LineWidth float64 `toml:"linewidth" yaml:"linewidth"` // Points
	// Shift of every link to the right of its direction in points, so links of two-way roads do not overlap
	Offset float64 `toml:"offset" yaml:"offset"`
}

type POIStyle struct {
	FaceColor string  `toml:"facecolor" yaml:"facecolor"`
	EdgeColor string  `toml:"edgecolor" yaml:"edgecolor"`
	Alpha     float64 `toml:"alpha" yaml:"alpha"`
}

type ZoneStyle struct {
	LineWidth float64 `toml:"linewidth" yaml:"linewidth"`
	EdgeColor string  `toml:"edgecolor" yaml:"edgecolor"`
	FontColor string  `toml:"fontcolor" yaml:"fontcolor"`
	FontSize  float64 `toml:"fontsize" yaml:"fontsize"`
}

const nodeTypeOther = "other"

// DefaultStyle returns style which is used when nothing else is provided
func DefaultStyle() *Style {
	return &Style{
		FigureSize: [2]float64{10, 8},
		DPI:        100,
		Cmap:       "viridis",
		Projection: ProjectionNone,
		NodeStyle: NodeStyle{
			Markers: map[string]string{
				"motorway_junction": "v",
				"traffic_signals":   "^",
				"crossing":          "p",
				"stop":              "s",
				"bus_stop":          "D",
				"turning_circle":    "h",
				"mini_roundabout":   "*",
				nodeTypeOther:       "o",
			},
			Colors: map[string]string{
				"motorway_junction": "#ff7f0e",
				"traffic_signals":   "#d62728",
				"crossing":          "#1f77b4",
				"stop":              "#9467bd",
				"bus_stop":          "#8c564b",
				"turning_circle":    "#e377c2",
				"mini_roundabout":   "#17becf",
				nodeTypeOther:       "#2ca02c",
			},
			Size:      10,
			EdgeColor: "none",
		},
		LinkStyle: LinkStyle{
			LineColor: "#4682b4",
			LineWidth: 1,
		},
		POIStyle: POIStyle{
			FaceColor: "#a9a9a9",
			EdgeColor: "#000000",
			Alpha:     0.7,
		},
		ZoneStyle: ZoneStyle{
			LineWidth: 1,
			EdgeColor: "#d62728",
			FontColor: "#000000",
			FontSize:  10,
		},
	}
}

// Marker returns marker and color for given node type
func (ns *NodeStyle) Marker(nodeType string) (string, string) {
	marker, ok := ns.Markers[nodeType]
	if !ok {
		marker = ns.Markers[nodeTypeOther]
	}
	clr, ok := ns.Colors[nodeType]
	if !ok {
		clr = ns.Colors[nodeTypeOther]
	}
	if marker == "" {
		marker = "o"
	}
	return marker, clr
}

// Pixels returns figure size in pixels
func (style *Style) Pixels() (int, int) {
	return int(style.FigureSize[0] * style.DPI), int(style.FigureSize[1] * style.DPI)
}

// pointsToPixels converts typographic points to pixels for current DPI
func (style *Style) pointsToPixels(pt float64) float64 {
	return pt * style.DPI / 72.0
}

// LoadStyle reads style file. Format is chosen by extension: .toml, .yaml or .yml.
// Values from file are applied on top of DefaultStyle()
func LoadStyle(fname string) (*Style, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read style file")
	}
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".toml":
		return ParseStyleTOML(bytes.NewReader(data))
	case ".yaml", ".yml":
		return ParseStyleYAML(bytes.NewReader(data))
	default:
		return nil, errors.Wrapf(ErrUnknownStyleFormat, "file '%s'", fname)
	}
}

// ParseStyleTOML parses TOML style from reader
func ParseStyleTOML(r io.Reader) (*Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read style")
	}
	style := DefaultStyle()
	if err := toml.Unmarshal(data, style); err != nil {
		return nil, errors.Wrap(err, "Can't parse TOML style")
	}
	return style.sanitize(), nil
}

// ParseStyleYAML parses YAML style from reader
func ParseStyleYAML(r io.Reader) (*Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read style")
	}
	style := DefaultStyle()
	if err := yaml.Unmarshal(data, style); err != nil {
		return nil, errors.Wrap(err, "Can't parse YAML style")
	}
	return style.sanitize(), nil
}

// sanitize replaces non-positive sizes with defaults
func (style *Style) sanitize() *Style {
	def := DefaultStyle()
	if style.FigureSize[0] <= 0 || style.FigureSize[1] <= 0 {
		style.FigureSize = def.FigureSize
	}
	if style.DPI <= 0 {
		style.DPI = def.DPI
	}
	if style.NodeStyle.Markers == nil {
		style.NodeStyle.Markers = def.NodeStyle.Markers
	}
	if style.NodeStyle.Colors == nil {
		style.NodeStyle.Colors = def.NodeStyle.Colors
	}
	if style.POIStyle.Alpha <= 0 || style.POIStyle.Alpha > 1 {
		style.POIStyle.Alpha = def.POIStyle.Alpha
	}
	if style.ZoneStyle.FontSize <= 0 {
		style.ZoneStyle.FontSize = def.ZoneStyle.FontSize
	}
	return style
}
