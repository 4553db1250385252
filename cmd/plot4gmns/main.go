package main

import (
	"context"
	"fmt"
	"os"

	"github.com/LdDl/plot4gmns"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}
	root := &cobra.Command{
		Use:          "plot4gmns",
		Short:        "plot4gmns draws GMNS networks as PNG charts",
		Long:         `plot4gmns reads GMNS network (node.csv, link.csv, poi.csv, zone.csv, demand.csv) from directory and draws it filtered by mode, type, attribute range or distribution.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			opts.logger = newLogger(level)
		},
	}

	root.PersistentFlags().StringVarP(&opts.input, "input", "i", ".", "directory with GMNS CSV files")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "directory where 'p4g_fig_results' folder will be created (default: current directory)")
	root.PersistentFlags().StringVar(&opts.style, "style", "", "style file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVar(&opts.geojson, "geojson", false, "save drawn features to GeoJSON file next to PNG")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newModesCmd(opts),
		newNodeTypesCmd(opts),
		newLinkTypesCmd(opts),
		newLanesCmd(opts),
		newFreeSpeedCmd(opts),
		newLengthCmd(opts),
		newDistributionCmd(opts, "lane-dist", "Draw links with width proportional to number of lanes", plot4gmns.ShowNetworkByLinkLaneDistribution),
		newDistributionCmd(opts, "free-speed-dist", "Draw links with width proportional to free speed", plot4gmns.ShowNetworkByLinkFreeSpeedDistribution),
		newDistributionCmd(opts, "capacity-dist", "Draw links with width proportional to capacity", plot4gmns.ShowNetworkByLinkCapacityDistribution),
		newPOITypesCmd(opts),
		newDistributionCmd(opts, "poi-production", "Draw POIs colored by production", plot4gmns.ShowNetworkByPOIProductionDistribution),
		newDistributionCmd(opts, "poi-attraction", "Draw POIs colored by attraction", plot4gmns.ShowNetworkByPOIAttractionDistribution),
		newDemandHeatmapCmd(opts),
		newDemandODCmd(opts),
		newShortestPathCmd(opts),
	)
	return root
}

// newLogger creates logger with timestamps formatted as "HH:MM:SS.ms"
func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
