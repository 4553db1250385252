package plot4gmns

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// PlotOptions are common options of every Show* function
type PlotOptions struct {
	figure       *Figure
	save2PNG     bool
	save2GeoJSON bool
	outputDir    string
	logger       *log.Logger
}

func (opts *PlotOptions) String() string {
	return fmt.Sprintf(`
Plot parameters:
	continue existing figure?: %t
	save to PNG?: %t
	save to GeoJSON?: %t
	output directory: '%s'
	`,
		opts.figure != nil,
		opts.save2PNG,
		opts.save2GeoJSON,
		opts.outputDir,
	)
}

func newPlotOptions(options ...func(*PlotOptions)) *PlotOptions {
	opts := &PlotOptions{
		save2PNG: true,
		logger:   log.Default(),
	}
	for _, o := range options {
		o(opts)
	}
	if opts.logger == nil {
		opts.logger = log.Default()
	}
	return opts
}

// WithFigure continues drawing on existing figure instead of creating new one
func WithFigure(fig *Figure) func(*PlotOptions) {
	return func(opts *PlotOptions) {
		opts.figure = fig
	}
}

// WithSave2PNG enables or disables writing PNG file. Default is true
func WithSave2PNG(save bool) func(*PlotOptions) {
	return func(opts *PlotOptions) {
		opts.save2PNG = save
	}
}

// WithSave2GeoJSON enables writing selected features to GeoJSON file next to PNG
func WithSave2GeoJSON(save bool) func(*PlotOptions) {
	return func(opts *PlotOptions) {
		opts.save2GeoJSON = save
	}
}

// WithOutputDir sets directory where 'p4g_fig_results' folder will be created.
// Empty or non-existing directory means current working directory
func WithOutputDir(dir string) func(*PlotOptions) {
	return func(opts *PlotOptions) {
		opts.outputDir = dir
	}
}

func WithLogger(logger *log.Logger) func(*PlotOptions) {
	return func(opts *PlotOptions) {
		opts.logger = logger
	}
}
