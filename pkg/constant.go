package pkg

// enum of edge_kind
type EdgeKind uint8

const (
	ROAD EdgeKind = iota
	FOOTPATH
	CONNECTION
)

func (k EdgeKind) String() string {
	switch k {
	case ROAD:
		return "road"
	case FOOTPATH:
		return "footpath"
	case CONNECTION:
		return "connection"
	default:
		return "unknown"
	}
}

// enum of oneway direction for road segments
type OnewayType uint8

const (
	BIDIRECTIONAL OnewayType = iota
	FORWARD_ONLY
	BACKWARD_ONLY
)

type Mode string

const (
	MODE_DRIVING Mode = "driving"
	MODE_WALKING Mode = "walking"
)

func (m Mode) IsValid() bool {
	return m == MODE_DRIVING || m == MODE_WALKING
}

const (
	INF_WEIGHT float64 = 1e15

	DEFAULT_ROAD_NAME     = "Unnamed Road"
	DEFAULT_FOOTPATH_NAME = "Footpath"

	// bridging thresholds in meter
	DEFAULT_FOOTPATH_ROAD_BRIDGE_METER     = 30.0
	DEFAULT_FOOTPATH_FOOTPATH_BRIDGE_METER = 40.0
	DEFAULT_ROAD_ROAD_BRIDGE_METER         = 25.0
)

const (
	DEBUG = false
)
