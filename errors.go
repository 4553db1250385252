package plot4gmns

import (
	"github.com/pkg/errors"
)

var (
	// ErrFilterType is returned when filter argument is neither string nor list of strings
	ErrFilterType = errors.New("TypeError: str or list is expected")
	// ErrUnknownAttribute is returned for attribute names which have no distribution
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrDemandNotLoaded is returned when zones or demand are needed but have not been loaded
	ErrDemandNotLoaded = errors.New("zones or demand have not been loaded")
	// ErrNoPath is returned when there is no path between requested nodes
	ErrNoPath = errors.New("no path between given nodes")
	// ErrUnknownStyleFormat is returned for style files with unsupported extension
	ErrUnknownStyleFormat = errors.New("unknown style file format (expected .toml, .yaml or .yml)")
)
