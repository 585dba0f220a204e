package usecases

import (
	"github.com/paulmach/orb/geojson"
)

// MapService serves static map resources: the map token and the buildings
// overlay, both loaded once at startup.
type MapService struct {
	mapboxToken string
	buildings   *geojson.FeatureCollection
}

func NewMapService(mapboxToken string, buildings *geojson.FeatureCollection) *MapService {
	return &MapService{
		mapboxToken: mapboxToken,
		buildings:   buildings,
	}
}

func (ms *MapService) MapConfig() map[string]string {
	return map[string]string{
		"mapboxToken": ms.mapboxToken,
	}
}

func (ms *MapService) Buildings() *geojson.FeatureCollection {
	return ms.buildings
}
