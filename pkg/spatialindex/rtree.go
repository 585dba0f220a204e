package spatialindex

import (
	"math"

	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes a fixed set of graph vertices. built once per graph and
// immutable afterwards, a stale index against a different vertex set is
// undefined behavior.
type Rtree struct {
	tr  *rtree.RTreeG[datastructure.Point]
	len int
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Point]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every vertex as a degenerate box at its own coordinate.
func (rt *Rtree) Build(vertices []datastructure.Point, log *zap.Logger) {
	for _, v := range vertices {
		rt.tr.Insert([2]float64{v.Lon, v.Lat}, [2]float64{v.Lon, v.Lat}, v)
	}
	rt.len = len(vertices)
	log.Info("R-tree spatial index built.", zap.Int("vertices", rt.len))
}

func (rt *Rtree) Len() int {
	return rt.len
}

// Nearest returns the vertex closest to the query point. false when the index
// is empty.
func (rt *Rtree) Nearest(qLat, qLon float64) (datastructure.Point, bool) {
	var (
		nearest datastructure.Point
		found   bool
	)
	rt.tr.Nearby(
		rtree.BoxDist[float64, datastructure.Point](
			[2]float64{qLon, qLat}, [2]float64{qLon, qLat}, nil),
		func(min, max [2]float64, data datastructure.Point, dist float64) bool {
			nearest = data
			found = true
			return false
		})
	return nearest, found
}

// SearchWithinRadius search for all vertices within radius (in meter) from the
// query point (qLat, qLon). the bounding box search works in degree-space, so
// every hit is confirmed with the exact haversine distance.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radiusMeter float64) []datastructure.Point {
	// corners sit on the diagonals, so scale by √2 to keep the box
	// half-extent at radiusMeter along the cardinal axes
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radiusMeter*math.Sqrt2)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radiusMeter*math.Sqrt2)

	results := make([]datastructure.Point, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data datastructure.Point) bool {
			if geo.CalculateHaversineDistance(qLat, qLon, data.Lat, data.Lon) <= radiusMeter {
				results = append(results, data)
			}
			return true
		})
	return results
}
