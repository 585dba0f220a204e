package datastructure

import (
	"github.com/lintang-b-s/campusnav/pkg"
)

// Instruction is one turn-by-turn direction, anchored at the vertex where it
// applies so the map ui can place a marker.
type Instruction struct {
	Text     string `json:"text"`
	Location Point  `json:"location"`
}

func NewInstruction(text string, location Point) Instruction {
	return Instruction{Text: text, Location: location}
}

// Route is the immutable result of one routing query. Mode reports the travel
// profile actually used, which may differ from the requested one after a mode
// fallback.
type Route struct {
	Path          []Point       `json:"path"`
	Polyline      string        `json:"polyline"`
	Instructions  []Instruction `json:"instructions"`
	TotalDistance int           `json:"total_distance_m"`
	Mode          pkg.Mode      `json:"mode"`
}

func NewRoute(path []Point, polyline string, instructions []Instruction,
	totalDistanceMeter int, mode pkg.Mode) *Route {
	return &Route{
		Path:          path,
		Polyline:      polyline,
		Instructions:  instructions,
		TotalDistance: totalDistanceMeter,
		Mode:          mode,
	}
}
