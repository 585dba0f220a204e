package routing

import (
	"errors"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/guidance"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
)

// SpatialIndex is the vertex lookup the engine snaps query points with.
type SpatialIndex interface {
	Nearest(qLat, qLon float64) (datastructure.Point, bool)
}

// RoutedGraph pairs an immutable graph with the spatial indexes built from
// its vertex set. componentIndex covers only the largest connected component
// and is nil when the graph is connected.
type RoutedGraph struct {
	graph          *datastructure.Graph
	index          SpatialIndex
	componentIndex SpatialIndex
}

func NewRoutedGraph(graph *datastructure.Graph, index, componentIndex SpatialIndex) *RoutedGraph {
	return &RoutedGraph{
		graph:          graph,
		index:          index,
		componentIndex: componentIndex,
	}
}

func (rg *RoutedGraph) Graph() *datastructure.Graph {
	return rg.graph
}

// Engine answers routing queries against one graph per travel mode. graphs
// and indexes are built once and never mutated, so queries are safe to run
// concurrently.
type Engine struct {
	log          *zap.Logger
	graphs       map[pkg.Mode]*RoutedGraph
	maxSnapMeter float64
}

func NewEngine(log *zap.Logger, driving, walking *RoutedGraph, maxSnapMeter float64) *Engine {
	return &Engine{
		log: log,
		graphs: map[pkg.Mode]*RoutedGraph{
			pkg.MODE_DRIVING: driving,
			pkg.MODE_WALKING: walking,
		},
		maxSnapMeter: maxSnapMeter,
	}
}

// CalculateRoute snaps both endpoints, runs the shortest-path query and
// applies the bounded recovery ladder: one largest-component re-snap for a
// disconnected walking graph, then one mode downgrade to driving. the
// returned route reports the mode actually used.
func (e *Engine) CalculateRoute(start, end geo.Coordinate, mode pkg.Mode) (*datastructure.Route, error) {
	if err := util.ValidateLonLat(start.Lon, start.Lat); err != nil {
		return nil, err
	}
	if err := util.ValidateLonLat(end.Lon, end.Lat); err != nil {
		return nil, err
	}
	if !mode.IsValid() {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown travel mode %q", mode)
	}

	route, err := e.routeOnMode(start, end, mode)
	if err == nil {
		return route, nil
	}

	if mode == pkg.MODE_WALKING && errors.Is(util.ErrorCode(err), util.ErrRouteNotFound) {
		e.log.Info("walking routing failed, retrying on the driving graph",
			zap.Float64("start_lat", start.Lat), zap.Float64("start_lon", start.Lon),
			zap.Float64("end_lat", end.Lat), zap.Float64("end_lon", end.Lon))
		if route, drivingErr := e.routeOnMode(start, end, pkg.MODE_DRIVING); drivingErr == nil {
			return route, nil
		}
	}
	return nil, err
}

func (e *Engine) routeOnMode(start, end geo.Coordinate, mode pkg.Mode) (*datastructure.Route, error) {
	rg := e.graphs[mode]
	if rg == nil || rg.graph.NumberOfVertices() == 0 {
		return nil, util.WrapErrorf(nil, util.ErrEmptyGraph, "no graph loaded for mode %q", mode)
	}

	startV, ok := rg.index.Nearest(start.Lat, start.Lon)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrEmptyGraph, "spatial index for mode %q is empty", mode)
	}
	endV, ok := rg.index.Nearest(end.Lat, end.Lon)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrEmptyGraph, "spatial index for mode %q is empty", mode)
	}

	if e.maxSnapMeter > 0 {
		if d := e.snapDistanceMeter(rg, start, startV); d > e.maxSnapMeter {
			return nil, util.WrapErrorf(nil, util.ErrRouteNotFound,
				"start point is %.0f m from the road network (limit %.0f m)", d, e.maxSnapMeter)
		}
		if d := e.snapDistanceMeter(rg, end, endV); d > e.maxSnapMeter {
			return nil, util.WrapErrorf(nil, util.ErrRouteNotFound,
				"end point is %.0f m from the road network (limit %.0f m)", d, e.maxSnapMeter)
		}
	}

	if startV == endV {
		return e.degenerateRoute(startV, mode), nil
	}

	dijkstra := NewDijkstra(rg.graph)
	if path, _, found := dijkstra.ShortestPath(startV, endV); found {
		return e.assembleRoute(rg, path, mode)
	}

	// connectivity-aware re-snap, walking only, at most once
	if mode == pkg.MODE_WALKING && !rg.graph.IsConnected() && rg.componentIndex != nil {
		newStartV, newEndV := startV, endV
		resnapped := false
		if !rg.graph.InLargestComponent(startV) {
			if v, ok := rg.componentIndex.Nearest(start.Lat, start.Lon); ok {
				newStartV = v
				resnapped = true
			}
		}
		if !rg.graph.InLargestComponent(endV) {
			if v, ok := rg.componentIndex.Nearest(end.Lat, end.Lon); ok {
				newEndV = v
				resnapped = true
			}
		}
		if resnapped {
			e.log.Info("endpoint outside the largest component, re-snapped",
				zap.Int("component_size", len(rg.graph.LargestComponent())))
			if newStartV == newEndV {
				return e.degenerateRoute(newStartV, mode), nil
			}
			if path, _, found := dijkstra.ShortestPath(newStartV, newEndV); found {
				return e.assembleRoute(rg, path, mode)
			}
		}
	}

	return nil, util.WrapErrorf(nil, util.ErrRouteNotFound,
		"no connected path between (%f,%f) and (%f,%f) on the %s graph",
		start.Lon, start.Lat, end.Lon, end.Lat, mode)
}

func (e *Engine) assembleRoute(rg *RoutedGraph, path []datastructure.Point, mode pkg.Mode) (*datastructure.Route, error) {
	directionBuilder := guidance.NewDirectionBuilder(rg.graph)
	instructions, totalDistance, err := directionBuilder.GetDirections(path)
	if err != nil {
		return nil, err
	}

	coords := make([]geo.Coordinate, len(path))
	for i, p := range path {
		coords[i] = p.ToCoordinate()
	}

	return datastructure.NewRoute(path, geo.PolylineFromCoords(coords),
		instructions, int(totalDistance), mode), nil
}

func (e *Engine) degenerateRoute(v datastructure.Point, mode pkg.Mode) *datastructure.Route {
	coords := []geo.Coordinate{v.ToCoordinate(), v.ToCoordinate()}
	return datastructure.NewRoute(
		[]datastructure.Point{v, v},
		geo.PolylineFromCoords(coords),
		[]datastructure.Instruction{guidance.NewArrivalInstruction(v)},
		0, mode)
}

// snapDistanceMeter measures how far the query point sits from the network:
// the perpendicular distance to the nearest incident edge of the snapped
// vertex, or the vertex distance itself when the vertex is isolated.
func (e *Engine) snapDistanceMeter(rg *RoutedGraph, q geo.Coordinate, v datastructure.Point) float64 {
	best := geo.CalculateHaversineDistance(q.Lat, q.Lon, v.Lat, v.Lon)
	for _, edge := range rg.graph.OutEdgesOf(v) {
		d := geo.PointLinePerpendicularDistance(v.ToCoordinate(), edge.To.ToCoordinate(), q)
		if d < best {
			best = d
		}
	}
	return best
}
