package plot4gmns

import "strings"

type LinkType uint16

const (
	LINK_MOTORWAY = LinkType(iota + 1)
	LINK_TRUNK
	LINK_PRIMARY
	LINK_SECONDARY
	LINK_TERTIARY
	LINK_RESIDENTIAL
	LINK_LIVING_STREET
	LINK_SERVICE
	LINK_CYCLEWAY
	LINK_FOOTWAY
	LINK_TRACK
	LINK_UNCLASSIFIED
	LINK_CONNECTOR
	LINK_RAILWAY
	LINK_AEROWAY
	LINK_UNDEFINED = LinkType(0)
)

func (iotaIdx LinkType) String() string {
	return [...]string{"undefined", "motorway", "trunk", "primary", "secondary", "tertiary", "residential", "living_street", "service", "cycleway", "footway", "track", "unclassified", "connector", "railway", "aeroway"}[iotaIdx]
}

// ParseLinkType returns LinkType for GMNS `link_type_name` value. Unknown names give LINK_UNDEFINED
func ParseLinkType(name string) LinkType {
	if found, ok := linkTypesByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return found
	}
	return LINK_UNDEFINED
}

var (
	linkTypesByName = map[string]LinkType{
		"motorway":      LINK_MOTORWAY,
		"trunk":         LINK_TRUNK,
		"primary":       LINK_PRIMARY,
		"secondary":     LINK_SECONDARY,
		"tertiary":      LINK_TERTIARY,
		"residential":   LINK_RESIDENTIAL,
		"living_street": LINK_LIVING_STREET,
		"service":       LINK_SERVICE,
		"cycleway":      LINK_CYCLEWAY,
		"footway":       LINK_FOOTWAY,
		"track":         LINK_TRACK,
		"unclassified":  LINK_UNCLASSIFIED,
		"connector":     LINK_CONNECTOR,
		"railway":       LINK_RAILWAY,
		"aeroway":       LINK_AEROWAY,
	}
	defaultLanesByLinkType = map[LinkType]int{
		LINK_MOTORWAY:      4,
		LINK_TRUNK:         3,
		LINK_PRIMARY:       3,
		LINK_SECONDARY:     2,
		LINK_TERTIARY:      2,
		LINK_RESIDENTIAL:   1,
		LINK_LIVING_STREET: 1,
		LINK_SERVICE:       1,
		LINK_CYCLEWAY:      1,
		LINK_FOOTWAY:       1,
		LINK_TRACK:         1,
		LINK_UNCLASSIFIED:  1,
		LINK_CONNECTOR:     2,
		LINK_RAILWAY:       1,
		LINK_AEROWAY:       1,
	}
	defaultSpeedByLinkType = map[LinkType]float64{
		LINK_MOTORWAY:      120,
		LINK_TRUNK:         100,
		LINK_PRIMARY:       80,
		LINK_SECONDARY:     60,
		LINK_TERTIARY:      40,
		LINK_RESIDENTIAL:   30,
		LINK_LIVING_STREET: 30,
		LINK_SERVICE:       30,
		LINK_CYCLEWAY:      5,
		LINK_FOOTWAY:       5,
		LINK_TRACK:         30,
		LINK_UNCLASSIFIED:  30,
		LINK_CONNECTOR:     120,
	}
	defaultCapacityByLinkType = map[LinkType]float64{
		LINK_MOTORWAY:      2300,
		LINK_TRUNK:         2200,
		LINK_PRIMARY:       1800,
		LINK_SECONDARY:     1600,
		LINK_TERTIARY:      1200,
		LINK_RESIDENTIAL:   1000,
		LINK_LIVING_STREET: 1000,
		LINK_SERVICE:       800,
		LINK_CYCLEWAY:      800,
		LINK_FOOTWAY:       800,
		LINK_TRACK:         800,
		LINK_UNCLASSIFIED:  800,
		LINK_CONNECTOR:     9999,
	}
)
