package plot4gmns

import "strings"

type NetworkMode uint16

const (
	NETWORK_AUTO = NetworkMode(iota + 1)
	NETWORK_BIKE
	NETWORK_WALK
	NETWORK_RAILWAY
	NETWORK_AEROWAY
	NETWORK_UNDEFINED = NetworkMode(0)
)

// NetworkModeAll is the mode name which selects every link regardless of its allowed uses
const NetworkModeAll = "all"

func (iotaIdx NetworkMode) String() string {
	return [...]string{"undefined", "auto", "bike", "walk", "railway", "aeroway"}[iotaIdx]
}

// ParseNetworkMode returns NetworkMode for given name. Unknown names give NETWORK_UNDEFINED
func ParseNetworkMode(name string) NetworkMode {
	if found, ok := networkModesByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return found
	}
	return NETWORK_UNDEFINED
}

var (
	networkModesByName = map[string]NetworkMode{
		"auto":    NETWORK_AUTO,
		"bike":    NETWORK_BIKE,
		"walk":    NETWORK_WALK,
		"railway": NETWORK_RAILWAY,
		"aeroway": NETWORK_AEROWAY,
	}
	// Rail and air links usually carry no allowed_uses in GMNS, so link type decides for them
	networkModeByLinkType = map[LinkType]NetworkMode{
		LINK_RAILWAY: NETWORK_RAILWAY,
		LINK_AEROWAY: NETWORK_AEROWAY,
	}
)
