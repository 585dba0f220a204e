package guidance

import (
	"fmt"

	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/util"
)

// DirectionBuilder narrates a vertex path using the graph's edge metadata.
type DirectionBuilder struct {
	graph *datastructure.Graph
}

func NewDirectionBuilder(graph *datastructure.Graph) *DirectionBuilder {
	return &DirectionBuilder{graph: graph}
}

// GetDirections walks consecutive edge pairs of the path and emits an
// instruction whenever the turn is not straight, or the road name changes
// while going straight. the final arrival instruction always carries the
// accumulated distance of the last segment. a path that references an edge
// absent from the graph is a bug in path construction and fails loudly, it
// must never be papered over with a zero weight.
func (db *DirectionBuilder) GetDirections(path []datastructure.Point) ([]datastructure.Instruction, float64, error) {
	if len(path) < 2 {
		return []datastructure.Instruction{}, 0, nil
	}

	firstEdge, ok := db.graph.EdgeBetween(path[0], path[1])
	if !ok {
		return nil, 0, db.inconsistentPath(path[0], path[1])
	}

	instructions := make([]datastructure.Instruction, 0, 8)
	currentRoad := firstEdge.Name
	totalDistance := 0.0
	segmentDistance := 0.0

	for i := 0; i+1 < len(path); i++ {
		edge, ok := db.graph.EdgeBetween(path[i], path[i+1])
		if !ok {
			return nil, 0, db.inconsistentPath(path[i], path[i+1])
		}
		segmentDistance += edge.Weight
		totalDistance += edge.Weight

		if i+2 >= len(path) {
			break
		}
		nextEdge, ok := db.graph.EdgeBetween(path[i+1], path[i+2])
		if !ok {
			return nil, 0, db.inconsistentPath(path[i+1], path[i+2])
		}

		prevBearing := geo.BearingTo(path[i].Lat, path[i].Lon, path[i+1].Lat, path[i+1].Lon)
		nextBearing := geo.BearingTo(path[i+1].Lat, path[i+1].Lon, path[i+2].Lat, path[i+2].Lon)
		delta := geo.BearingDiff(prevBearing, nextBearing)
		turn := getTurnDirection(delta)

		if !turn.IsStraight() || nextEdge.Name != currentRoad {
			instructions = append(instructions, datastructure.NewInstruction(
				fmt.Sprintf("Continue on %s for %d meters, then %s onto %s.",
					currentRoad, int(segmentDistance), turn.Phrase(), nextEdge.Name),
				path[i+1]))
			currentRoad = nextEdge.Name
			segmentDistance = 0.0
		}
	}

	instructions = append(instructions, datastructure.NewInstruction(
		fmt.Sprintf("Continue on %s for %d meters and arrive at your destination.",
			currentRoad, int(segmentDistance)),
		path[len(path)-1]))

	return instructions, totalDistance, nil
}

// NewArrivalInstruction is the single instruction of a degenerate route whose
// start and end snap to the same vertex.
func NewArrivalInstruction(location datastructure.Point) datastructure.Instruction {
	return datastructure.NewInstruction("You have arrived at your destination.", location)
}

func (db *DirectionBuilder) inconsistentPath(a, b datastructure.Point) error {
	return util.WrapErrorf(nil, util.ErrInconsistentPath,
		"path references missing edge (%f,%f)-(%f,%f)", a.Lon, a.Lat, b.Lon, b.Lat)
}
