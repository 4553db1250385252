package main

import (
	"time"

	"github.com/LdDl/plot4gmns"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// globalOpts holds persistent flags shared by every subcommand
type globalOpts struct {
	input   string
	output  string
	style   string
	geojson bool
	verbose bool
	logger  *log.Logger
}

type showFunc func(mnet *plot4gmns.MultiNet, options ...func(*plot4gmns.PlotOptions)) (*plot4gmns.Figure, error)

// load reads network and applies style file if it has been provided
func (opts *globalOpts) load() (*plot4gmns.MultiNet, error) {
	mnet, err := plot4gmns.LoadNetwork(opts.input, plot4gmns.WithLoaderLogger(opts.logger))
	if err != nil {
		return nil, errors.Wrap(err, "Can't load network")
	}
	if opts.style != "" {
		style, err := plot4gmns.LoadStyle(opts.style)
		if err != nil {
			return nil, errors.Wrap(err, "Can't load style")
		}
		mnet.Style = style
	}
	return mnet, nil
}

func (opts *globalOpts) plotOptions() []func(*plot4gmns.PlotOptions) {
	return []func(*plot4gmns.PlotOptions){
		plot4gmns.WithOutputDir(opts.output),
		plot4gmns.WithSave2GeoJSON(opts.geojson),
		plot4gmns.WithLogger(opts.logger),
	}
}

// run loads network and calls draw on it logging elapsed time
func (opts *globalOpts) run(draw func(mnet *plot4gmns.MultiNet) error) error {
	mnet, err := opts.load()
	if err != nil {
		return err
	}
	st := time.Now()
	err = draw(mnet)
	if err != nil {
		return err
	}
	opts.logger.Debug("Done drawing", "elapsed", time.Since(st).Round(time.Millisecond))
	return nil
}

func newModesCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "modes [mode...]",
		Short: "Draw links allowed for given network modes (auto, bike, walk, railway, aeroway or all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := args
			if len(modes) == 0 {
				modes = []string{plot4gmns.NetworkModeAll}
			}
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByModes(mnet, modes, opts.plotOptions()...)
				return err
			})
		},
	}
}

func newNodeTypesCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "node-types type [type...]",
		Short: "Draw nodes of given 'osm_highway' types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByNodeTypes(mnet, args, opts.plotOptions()...)
				return err
			})
		},
	}
}

func newLinkTypesCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "link-types type [type...]",
		Short: "Draw links of given 'link_type_name' types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByLinkTypes(mnet, args, opts.plotOptions()...)
				return err
			})
		},
	}
}

func newPOITypesCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "poi-types type [type...]",
		Short: "Draw POIs of given building (or amenity) types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByPOITypes(mnet, args, opts.plotOptions()...)
				return err
			})
		},
	}
}

func newLanesCmd(opts *globalOpts) *cobra.Command {
	var minLanes, maxLanes int
	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "Draw links with number of lanes in [min; max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByLinkLanes(mnet, minLanes, maxLanes, opts.plotOptions()...)
				return err
			})
		},
	}
	cmd.Flags().IntVar(&minLanes, "min", 1, "minimum number of lanes")
	cmd.Flags().IntVar(&maxLanes, "max", 10, "maximum number of lanes")
	return cmd
}

func newFreeSpeedCmd(opts *globalOpts) *cobra.Command {
	var minSpeed, maxSpeed float64
	cmd := &cobra.Command{
		Use:   "free-speed",
		Short: "Draw links with free speed in [min; max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByLinkFreeSpeed(mnet, minSpeed, maxSpeed, opts.plotOptions()...)
				return err
			})
		},
	}
	cmd.Flags().Float64Var(&minSpeed, "min", 0, "minimum free speed")
	cmd.Flags().Float64Var(&maxSpeed, "max", 200, "maximum free speed")
	return cmd
}

func newLengthCmd(opts *globalOpts) *cobra.Command {
	var minLength, maxLength float64
	cmd := &cobra.Command{
		Use:   "length",
		Short: "Draw links with length in [min; max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByLinkLength(mnet, minLength, maxLength, opts.plotOptions()...)
				return err
			})
		},
	}
	cmd.Flags().Float64Var(&minLength, "min", 0, "minimum link length")
	cmd.Flags().Float64Var(&maxLength, "max", 1000, "maximum link length")
	return cmd
}

func newDistributionCmd(opts *globalOpts, use, short string, show showFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := show(mnet, opts.plotOptions()...)
				return err
			})
		},
	}
}

func newDemandHeatmapCmd(opts *globalOpts) *cobra.Command {
	var annot bool
	cmd := &cobra.Command{
		Use:   "demand-heatmap",
		Short: "Draw demand matrix between zones as heatmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkDemandMatrixHeatmap(mnet, annot, opts.plotOptions()...)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&annot, "annot", false, "write volume in each cell")
	return cmd
}

func newDemandODCmd(opts *globalOpts) *cobra.Command {
	var loadZone, loadNetwork bool
	cmd := &cobra.Command{
		Use:   "demand-od",
		Short: "Draw OD desire lines between zone centroids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByDemandOD(mnet, loadZone, loadNetwork, opts.plotOptions()...)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&loadZone, "zones", true, "draw zone boundaries and names")
	cmd.Flags().BoolVar(&loadNetwork, "network", false, "draw network as background")
	return cmd
}

func newShortestPathCmd(opts *globalOpts) *cobra.Command {
	var source, target int
	cmd := &cobra.Command{
		Use:   "shortest-path",
		Short: "Draw network with shortest path between two nodes highlighted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(mnet *plot4gmns.MultiNet) error {
				_, err := plot4gmns.ShowNetworkByShortestPath(mnet, plot4gmns.NodeID(source), plot4gmns.NodeID(target), opts.plotOptions()...)
				return err
			})
		},
	}
	cmd.Flags().IntVar(&source, "source", -1, "source node_id")
	cmd.Flags().IntVar(&target, "target", -1, "target node_id")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
