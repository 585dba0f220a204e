package gis

import (
	"runtime"
	"sort"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/concurrent"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
)

// BridgingConfig holds the proximity thresholds (in meter) used to heal gaps
// in the source topology when fusing layers.
type BridgingConfig struct {
	FootpathRoadMeter     float64
	FootpathFootpathMeter float64
	RoadRoadMeter         float64
}

func DefaultBridgingConfig() BridgingConfig {
	return BridgingConfig{
		FootpathRoadMeter:     pkg.DEFAULT_FOOTPATH_ROAD_BRIDGE_METER,
		FootpathFootpathMeter: pkg.DEFAULT_FOOTPATH_FOOTPATH_BRIDGE_METER,
		RoadRoadMeter:         pkg.DEFAULT_ROAD_ROAD_BRIDGE_METER,
	}
}

// GraphBuilder converts geometry layers into weighted graphs, one per travel
// mode.
type GraphBuilder struct {
	log      *zap.Logger
	bridging BridgingConfig
}

func NewGraphBuilder(log *zap.Logger, bridging BridgingConfig) *GraphBuilder {
	return &GraphBuilder{
		log:      log,
		bridging: bridging,
	}
}

// BuildDriving builds the driving graph from the road layer only, honoring
// oneway restrictions.
func (gb *GraphBuilder) BuildDriving(roads *Layer) (*datastructure.Graph, error) {
	g := datastructure.NewGraph()
	gb.addLayer(g, roads, true)

	if g.NumberOfVertices() == 0 {
		return nil, util.WrapErrorf(nil, util.ErrEmptyGraph,
			"driving graph built from %d geometries has no vertices", roads.NumberOfGeometries())
	}

	g.ComputeComponents()
	gb.log.Info("driving graph built",
		zap.Int("vertices", g.NumberOfVertices()),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Int("components", g.NumberOfComponents()))
	return g, nil
}

// BuildWalking fuses the road and footpath layers into a single pedestrian
// graph. oneway restrictions do not apply on foot. after both layers' native
// edges exist, three bridging passes add Connection edges between nearby
// vertices: footpath→road, footpath→footpath, road→road, each with its own
// threshold and its own per-subset spatial index.
func (gb *GraphBuilder) BuildWalking(roads, footpaths *Layer) (*datastructure.Graph, error) {
	g := datastructure.NewGraph()
	roadVertices := gb.addLayer(g, roads, false)
	footpathVertices := gb.addLayer(g, footpaths, false)

	if g.NumberOfVertices() == 0 {
		return nil, util.WrapErrorf(nil, util.ErrEmptyGraph,
			"walking graph built from %d geometries has no vertices",
			roads.NumberOfGeometries()+footpaths.NumberOfGeometries())
	}

	roadIndex := spatialindex.NewRtree()
	roadIndex.Build(roadVertices, gb.log)
	footpathIndex := spatialindex.NewRtree()
	footpathIndex.Build(footpathVertices, gb.log)

	added := gb.bridge(g, footpathVertices, roadIndex, gb.bridging.FootpathRoadMeter)
	gb.log.Info("footpath→road bridging done", zap.Int("connections", added))

	added = gb.bridge(g, footpathVertices, footpathIndex, gb.bridging.FootpathFootpathMeter)
	gb.log.Info("footpath→footpath bridging done", zap.Int("connections", added))

	added = gb.bridge(g, roadVertices, roadIndex, gb.bridging.RoadRoadMeter)
	gb.log.Info("road→road bridging done", zap.Int("connections", added))

	g.ComputeComponents()
	gb.log.Info("walking graph built",
		zap.Int("vertices", g.NumberOfVertices()),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Int("components", g.NumberOfComponents()))
	return g, nil
}

// addLayer decomposes every geometry into simple segments and adds one edge
// per segment, weighted with the haversine distance. returns the layer's
// deduplicated vertex set in insertion order.
func (gb *GraphBuilder) addLayer(g *datastructure.Graph, layer *Layer, honorOneway bool) []datastructure.Point {
	seen := make(map[datastructure.Point]struct{})
	vertices := make([]datastructure.Point, 0, 256)
	record := func(p datastructure.Point) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			vertices = append(vertices, p)
		}
	}

	for _, geom := range layer.Geometries {
		name := geom.Name
		if name == "" {
			name = layer.DefaultName
		}
		for i := 0; i+1 < len(geom.Coords); i++ {
			p1, p2 := geom.Coords[i], geom.Coords[i+1]
			if p1 == p2 {
				continue
			}
			weight := geo.CalculateHaversineDistance(p1.Lat, p1.Lon, p2.Lat, p2.Lon)

			if honorOneway && geom.Oneway == pkg.FORWARD_ONLY {
				g.AddDirectedEdge(p1, p2, weight, name, layer.Kind)
			} else if honorOneway && geom.Oneway == pkg.BACKWARD_ONLY {
				g.AddDirectedEdge(p2, p1, weight, name, layer.Kind)
			} else {
				g.AddEdge(p1, p2, weight, name, layer.Kind)
			}
			record(p1)
			record(p2)
		}
	}
	return vertices
}

// BuildGraphs builds both mode graphs from the same source layers in one shot.
func BuildGraphs(log *zap.Logger, bridging BridgingConfig,
	roads, footpaths *Layer) (*datastructure.ModeGraphs, error) {
	gb := NewGraphBuilder(log, bridging)

	driving, err := gb.BuildDriving(roads)
	if err != nil {
		return nil, err
	}
	walking, err := gb.BuildWalking(roads, footpaths)
	if err != nil {
		return nil, err
	}
	return &datastructure.ModeGraphs{Driving: driving, Walking: walking}, nil
}

type bridgeCandidate struct {
	from, to datastructure.Point
	dist     float64
}

// bridge radius-queries the target index around every source vertex and adds
// a Connection edge for each confirmed pair without an existing edge.
// candidate generation runs on the worker pool, the merge is sequential and
// sorted so the resulting edge order is deterministic.
func (gb *GraphBuilder) bridge(g *datastructure.Graph, sources []datastructure.Point,
	targets *spatialindex.Rtree, thresholdMeter float64) int {

	numWorkers := runtime.NumCPU()
	pool := concurrent.NewWorkerPool[datastructure.Point, []bridgeCandidate](numWorkers, len(sources))

	pool.Start(func(v datastructure.Point) []bridgeCandidate {
		nearby := targets.SearchWithinRadius(v.Lat, v.Lon, thresholdMeter)
		candidates := make([]bridgeCandidate, 0, len(nearby))
		for _, u := range nearby {
			if u == v {
				continue
			}
			candidates = append(candidates, bridgeCandidate{
				from: v,
				to:   u,
				dist: geo.CalculateHaversineDistance(v.Lat, v.Lon, u.Lat, u.Lon),
			})
		}
		return candidates
	})

	go func() {
		for _, v := range sources {
			pool.AddJob(v)
		}
		pool.Close()
	}()

	all := make([]bridgeCandidate, 0, 64)
	done := make(chan struct{})
	go func() {
		for candidates := range pool.CollectResults() {
			all = append(all, candidates...)
		}
		close(done)
	}()
	pool.Wait()
	<-done

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.from.Lon != b.from.Lon {
			return a.from.Lon < b.from.Lon
		}
		if a.from.Lat != b.from.Lat {
			return a.from.Lat < b.from.Lat
		}
		if a.to.Lon != b.to.Lon {
			return a.to.Lon < b.to.Lon
		}
		return a.to.Lat < b.to.Lat
	})

	added := 0
	for _, c := range all {
		if g.HasEdgeBetween(c.from, c.to) {
			continue
		}
		g.AddEdge(c.from, c.to, c.dist, pkg.DEFAULT_FOOTPATH_NAME, pkg.CONNECTION)
		added++
	}
	return added
}
