package controllers

import (
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/paulmach/orb/geojson"
)

type RoutingService interface {
	CalculateRoute(startLat, startLon, endLat, endLon float64, mode string) (*datastructure.Route, error)
}

type MapService interface {
	MapConfig() map[string]string
	Buildings() *geojson.FeatureCollection
}
