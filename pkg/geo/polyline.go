package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes the path geometry with the google polyline algorithm
// (lat,lon order, precision 5).
func PolylineFromCoords(coords []Coordinate) string {
	flat := make([][]float64, len(coords))
	for i, c := range coords {
		flat[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(flat))
}
