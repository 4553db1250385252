package plot4gmns

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	nodeFile   = "node.csv"
	linkFile   = "link.csv"
	poiFile    = "poi.csv"
	zoneFile   = "zone.csv"
	demandFile = "demand.csv"
)

// Loader reads GMNS network from directory with CSV files
type Loader struct {
	dir        string
	delimiter  rune
	loadPOI    bool
	loadZone   bool
	loadDemand bool
	logger     *log.Logger
}

func (loader *Loader) String() string {
	return fmt.Sprintf(`
Network loader parameters:
	directory: '%s'
	delimiter: '%c'
	load POI?: %t
	load zones?: %t
	load demand?: %t
	`,
		loader.dir,
		loader.delimiter,
		loader.loadPOI,
		loader.loadZone,
		loader.loadDemand,
	)
}

func NewLoader(dir string, options ...func(*Loader)) *Loader {
	loader := &Loader{
		dir:        dir,
		delimiter:  ',',
		loadPOI:    true,
		loadZone:   true,
		loadDemand: true,
		logger:     log.Default(),
	}
	for _, option := range options {
		option(loader)
	}
	return loader
}

func WithDelimiter(delimiter rune) func(*Loader) {
	return func(loader *Loader) {
		loader.delimiter = delimiter
	}
}

func WithLoadPOI(loadPOI bool) func(*Loader) {
	return func(loader *Loader) {
		loader.loadPOI = loadPOI
	}
}

func WithLoadZone(loadZone bool) func(*Loader) {
	return func(loader *Loader) {
		loader.loadZone = loadZone
	}
}

func WithLoadDemand(loadDemand bool) func(*Loader) {
	return func(loader *Loader) {
		loader.loadDemand = loadDemand
	}
}

func WithLoaderLogger(logger *log.Logger) func(*Loader) {
	return func(loader *Loader) {
		if logger != nil {
			loader.logger = logger
		}
	}
}

// LoadNetwork is a shorthand for NewLoader(dir, options...).Load()
func LoadNetwork(dir string, options ...func(*Loader)) (*MultiNet, error) {
	return NewLoader(dir, options...).Load()
}

// Load reads every known GMNS file from the directory. Missing files are skipped and
// corresponding loaded flag stays false
func (loader *Loader) Load() (*MultiNet, error) {
	st := time.Now()
	mnet := NewMultiNet()

	steps := []struct {
		fname   string
		enabled bool
		load    func(fname string, mnet *MultiNet) error
	}{
		{nodeFile, true, loader.loadNodes},
		{linkFile, true, loader.loadLinks},
		{poiFile, loader.loadPOI, loader.loadPOIs},
		{zoneFile, loader.loadZone, loader.loadZones},
		{demandFile, loader.loadDemand && loader.loadZone, loader.loadFlows},
	}
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		fname := filepath.Join(loader.dir, step.fname)
		if _, err := os.Stat(fname); err != nil {
			if os.IsNotExist(err) {
				loader.logger.Debug("GMNS file is missing, skipping", "file", fname)
				continue
			}
			return nil, errors.Wrapf(err, "Can't stat '%s'", fname)
		}
		err := step.load(fname, mnet)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't load '%s'", step.fname)
		}
	}
	loader.logger.Info("Network has been loaded",
		"dir", loader.dir,
		"nodes", len(mnet.Nodes),
		"links", len(mnet.Links),
		"pois", len(mnet.POIs),
		"zones", len(mnet.Zones),
		"flows", len(mnet.Demand.Flows),
		"elapsed", time.Since(st).Round(time.Millisecond),
	)
	return mnet, nil
}

func (loader *Loader) loadNodes(fname string, mnet *MultiNet) error {
	return readCSV(fname, loader.delimiter, []string{"node_id", "x_coord", "y_coord"}, func(row csvRow) error {
		id, err := row.int("node_id", -1)
		if err != nil {
			return err
		}
		osmNodeID, err := row.int64("osm_node_id", -1)
		if err != nil {
			return err
		}
		zoneID, err := row.int("zone_id", -1)
		if err != nil {
			return err
		}
		x, err := row.float("x_coord", 0)
		if err != nil {
			return err
		}
		y, err := row.float("y_coord", 0)
		if err != nil {
			return err
		}
		mnet.AddNode(&Node{
			ID:         NodeID(id),
			OsmNodeID:  osm.NodeID(osmNodeID),
			OsmHighway: row.str("osm_highway"),
			ZoneID:     zoneID,
			Geom:       orb.Point{x, y},
		})
		return nil
	})
}

func (loader *Loader) loadLinks(fname string, mnet *MultiNet) error {
	return readCSV(fname, loader.delimiter, []string{"link_id", "from_node_id", "to_node_id"}, func(row csvRow) error {
		id, err := row.int("link_id", -1)
		if err != nil {
			return err
		}
		osmWayID, err := row.int64("osm_way_id", -1)
		if err != nil {
			return err
		}
		sourceNodeID, err := row.int("from_node_id", -1)
		if err != nil {
			return err
		}
		targetNodeID, err := row.int("to_node_id", -1)
		if err != nil {
			return err
		}
		link := &Link{
			ID:           LinkID(id),
			OsmWayID:     osm.WayID(osmWayID),
			SourceNodeID: NodeID(sourceNodeID),
			TargetNodeID: NodeID(targetNodeID),
			LinkTypeName: row.str("link_type_name"),
			AllowedUses:  splitAllowedUses(row.str("allowed_uses")),
		}
		link.LinkType = ParseLinkType(link.LinkTypeName)

		link.Lanes, err = row.int("lanes", defaultLanesByLinkType[link.LinkType])
		if err != nil {
			return err
		}
		link.FreeSpeed, err = row.float("free_speed", defaultSpeedByLinkType[link.LinkType])
		if err != nil {
			return err
		}
		link.Capacity, err = row.float("capacity", defaultCapacityByLinkType[link.LinkType])
		if err != nil {
			return err
		}

		if row.has("geometry") {
			link.Geom, err = parseLineStringWKT(row.str("geometry"))
			if err != nil {
				return errors.Wrapf(err, "Can't parse geometry at %s:%d", row.fname, row.line)
			}
		} else {
			source, okSource := mnet.Node(link.SourceNodeID)
			target, okTarget := mnet.Node(link.TargetNodeID)
			if !okSource || !okTarget {
				loader.logger.Warn("Link has neither geometry nor known endpoints, skipping", "link_id", id)
				return nil
			}
			link.Geom = orb.LineString{source.Geom, target.Geom}
		}

		link.Length, err = row.float("length", -1)
		if err != nil {
			return err
		}
		if link.Length < 0 {
			link.Length = geo.LengthHaversign(link.Geom)
		}
		mnet.AddLink(link)
		return nil
	})
}

func (loader *Loader) loadPOIs(fname string, mnet *MultiNet) error {
	return readCSV(fname, loader.delimiter, []string{"poi_id", "geometry"}, func(row csvRow) error {
		id, err := row.int("poi_id", -1)
		if err != nil {
			return err
		}
		poi := &POI{
			ID:       PoiID(id),
			Building: row.str("building"),
			Amenity:  row.str("amenity"),
		}
		poi.Geom, err = parsePolygonWKT(row.str("geometry"))
		if err != nil {
			return errors.Wrapf(err, "Can't parse geometry at %s:%d", row.fname, row.line)
		}
		if row.has("centroid") {
			poi.Centroid, err = parsePointWKT(row.str("centroid"))
			if err != nil {
				return errors.Wrapf(err, "Can't parse centroid at %s:%d", row.fname, row.line)
			}
		} else {
			poi.Centroid = polygonCentroid(poi.Geom)
		}
		poi.Production, err = row.float("production", 0)
		if err != nil {
			return err
		}
		poi.Attraction, err = row.float("attraction", 0)
		if err != nil {
			return err
		}
		mnet.AddPOI(poi)
		return nil
	})
}

func (loader *Loader) loadZones(fname string, mnet *MultiNet) error {
	return readCSV(fname, loader.delimiter, []string{"zone_id", "geometry"}, func(row csvRow) error {
		id, err := row.int("zone_id", -1)
		if err != nil {
			return err
		}
		zone := &Zone{
			ID:   ZoneID(id),
			Name: row.str("name"),
		}
		zone.Geom, err = parsePolygonWKT(row.str("geometry"))
		if err != nil {
			return errors.Wrapf(err, "Can't parse geometry at %s:%d", row.fname, row.line)
		}
		switch {
		case row.has("centroid_x") && row.has("centroid_y"):
			x, err := row.float("centroid_x", 0)
			if err != nil {
				return err
			}
			y, err := row.float("centroid_y", 0)
			if err != nil {
				return err
			}
			zone.Centroid = orb.Point{x, y}
		case row.has("centroid"):
			zone.Centroid, err = parsePointWKT(row.str("centroid"))
			if err != nil {
				return errors.Wrapf(err, "Can't parse centroid at %s:%d", row.fname, row.line)
			}
		default:
			zone.Centroid = polygonCentroid(zone.Geom)
		}
		if zone.Name == "" {
			zone.Name = fmt.Sprintf("%d", zone.ID)
		}
		mnet.AddZone(zone)
		return nil
	})
}

func (loader *Loader) loadFlows(fname string, mnet *MultiNet) error {
	return readCSV(fname, loader.delimiter, []string{"o_zone_id", "d_zone_id", "volume"}, func(row csvRow) error {
		origin, err := row.int("o_zone_id", -1)
		if err != nil {
			return err
		}
		destination, err := row.int("d_zone_id", -1)
		if err != nil {
			return err
		}
		volume, err := row.float("volume", 0)
		if err != nil {
			return err
		}
		mnet.AddFlow(ODFlow{
			OriginZoneID:      ZoneID(origin),
			DestinationZoneID: ZoneID(destination),
			Volume:            volume,
		})
		return nil
	})
}

func splitAllowedUses(str string) []string {
	return strings.FieldsFunc(str, func(r rune) bool {
		return r == ';' || r == ',' || r == ' '
	})
}
