package plot4gmns

import (
	"image/color"
	"strconv"

	"github.com/montanaflynn/stats"
)

const (
	heatmapXLabel = "to_zone_id"
	heatmapYLabel = "from_zone_id"
)

var odColor = color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff} // orange

// ShowNetworkDemandMatrixHeatmap draws demand matrix between zones as heatmap.
// Zones are labeled 1..n in load order. When annot is true every cell gets its volume written.
// Existing figure can not be continued: heatmap is always drawn on new figure
func ShowNetworkDemandMatrixHeatmap(mnet *MultiNet, annot bool, options ...func(*PlotOptions)) (*Figure, error) {
	if !mnet.ZoneLoaded || !mnet.DemandLoaded {
		return nil, ErrDemandNotLoaded
	}
	p := newPlot(mnet, options...)
	matrix, _ := DemandMatrix(mnet)
	flat := make([]float64, 0, len(matrix)*len(matrix))
	for _, row := range matrix {
		flat = append(flat, row...)
	}
	minVolume, maxVolume := 0.0, 0.0
	if len(flat) > 0 {
		minVolume, _ = stats.Min(flat)
		maxVolume, _ = stats.Max(flat)
	}
	labels := make([]string, len(matrix))
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	p.fig = NewHeatmap(p.style, matrix, labels, labels, minVolume, maxVolume, annot)
	p.fig.SetLabels(heatmapXLabel, heatmapYLabel)
	return p.finish("network_by_demand_matrix_heatmap", nil)
}

// ShowNetworkByDemandOD draws OD desire lines between zone centroids with width proportional to volume.
// When loadZone is true zone boundaries and names are drawn. When loadNetwork is true network is drawn as background
func ShowNetworkByDemandOD(mnet *MultiNet, loadZone, loadNetwork bool, options ...func(*PlotOptions)) (*Figure, error) {
	if !mnet.ZoneLoaded || !mnet.DemandLoaded {
		return nil, ErrDemandNotLoaded
	}
	p := newPlot(mnet, options...)
	sel := ExtractByDemandOD(mnet, loadZone)

	if loadNetwork {
		base := ExtractByNetworkModes(mnet, []string{NetworkModeAll})
		p.drawSelection(base)
	}
	if loadZone {
		zoneStyle := p.style.ZoneStyle
		p.fig.Polygons(
			sel.Zones,
			[]color.Color{transparent},
			mustColor(zoneStyle.EdgeColor, color.Black),
			zoneStyle.LineWidth,
			1,
			ZOrderZone,
		)
		fontColor := mustColor(zoneStyle.FontColor, color.Black)
		for _, label := range sel.Labels {
			p.fig.Annotate(label.Text, label.At, fontColor, zoneStyle.FontSize, true, ZOrderZone)
		}
	}

	widths, minVolume, maxVolume := distributionWidths(sel.Volumes)
	p.fig.Lines(sel.Lines, []color.Color{odColor}, widths, ZOrderNode)
	p.fig.SetLegend(distributionLegend("volume", odColor, minVolume, maxVolume))
	return p.finish("network_by_demand_od", sel.GeoJSON())
}
