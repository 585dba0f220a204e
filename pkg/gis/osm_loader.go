package gis

import (
	"context"
	"os"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

var (
	osmRoadHighway = map[string]struct{}{
		"motorway":       {},
		"motorway_link":  {},
		"trunk":          {},
		"trunk_link":     {},
		"primary":        {},
		"primary_link":   {},
		"secondary":      {},
		"secondary_link": {},
		"tertiary":       {},
		"tertiary_link":  {},
		"residential":    {},
		"living_street":  {},
		"service":        {},
		"unclassified":   {},
		"road":           {},
		"track":          {},
	}

	osmFootpathHighway = map[string]struct{}{
		"footway":    {},
		"path":       {},
		"pedestrian": {},
		"steps":      {},
		"corridor":   {},
	}
)

type osmWay struct {
	nodes  []int64
	name   string
	oneway pkg.OnewayType
	kind   pkg.EdgeKind
}

// LoadOSMLayers reads a .osm.pbf extract and splits its ways into a road layer
// and a footpath layer, the same representation the geojson loader produces.
// the file is scanned twice: ways first, then the node coordinates the kept
// ways reference.
func LoadOSMLayers(ctx context.Context, mapFile string) (*Layer, *Layer, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrDataLoad, "failed to open osm extract %s", mapFile)
	}
	defer f.Close()

	ways := make([]osmWay, 0, 256)
	neededNodes := make(map[int64]datastructure.Point, 1024)

	scanner := osmpbf.New(ctx, f, 1)
	for scanner.Scan() {
		o := scanner.Object()
		way, ok := o.(*osm.Way)
		if !ok || len(way.Nodes) < 2 {
			continue
		}

		highway := way.Tags.Find("highway")
		kind, accepted := classifyHighway(highway)
		if !accepted {
			continue
		}

		nodes := make([]int64, len(way.Nodes))
		for i, wn := range way.Nodes {
			nodes[i] = int64(wn.ID)
			neededNodes[int64(wn.ID)] = datastructure.Point{}
		}
		ways = append(ways, osmWay{
			nodes:  nodes,
			name:   way.Tags.Find("name"),
			oneway: parseOneway(way.Tags.Find("oneway")),
			kind:   kind,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrDataLoad, "failed to scan osm ways")
	}
	scanner.Close()

	if _, err := f.Seek(0, 0); err != nil {
		return nil, nil, err
	}
	scanner = osmpbf.New(ctx, f, 1)
	defer scanner.Close()
	for scanner.Scan() {
		o := scanner.Object()
		node, ok := o.(*osm.Node)
		if !ok {
			continue
		}
		if _, needed := neededNodes[int64(node.ID)]; needed {
			neededNodes[int64(node.ID)] = datastructure.NewPoint(node.Lon, node.Lat)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrDataLoad, "failed to scan osm nodes")
	}

	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	footpaths := NewLayer(pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)
	for _, w := range ways {
		coords := make([]datastructure.Point, 0, len(w.nodes))
		for _, id := range w.nodes {
			p, ok := neededNodes[id]
			if !ok || (p.Lon == 0 && p.Lat == 0) {
				continue
			}
			coords = append(coords, p)
		}
		if len(coords) < 2 {
			continue
		}

		name := w.name
		layer := roads
		if w.kind == pkg.FOOTPATH {
			layer = footpaths
		}
		if name == "" {
			name = layer.DefaultName
		}
		layer.Add(NewLineGeometry(coords, name, w.oneway))
	}

	return roads, footpaths, nil
}

func classifyHighway(highway string) (pkg.EdgeKind, bool) {
	if highway == "" {
		return 0, false
	}
	if _, ok := osmRoadHighway[highway]; ok {
		return pkg.ROAD, true
	}
	if _, ok := osmFootpathHighway[highway]; ok {
		return pkg.FOOTPATH, true
	}
	return 0, false
}
