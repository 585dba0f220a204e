package util

import (
	"fmt"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// SetConfigDefaults registers fallback values so the engine still runs
// without a config file present.
func SetConfigDefaults() {
	viper.SetDefault("ROADS_FILE", "./data/roads.geojson")
	viper.SetDefault("FOOTPATHS_FILE", "./data/footpaths.geojson")
	viper.SetDefault("BUILDINGS_FILE", "./data/buildings.geojson")

	viper.SetDefault("FOOTPATH_ROAD_BRIDGE_METER", pkg.DEFAULT_FOOTPATH_ROAD_BRIDGE_METER)
	viper.SetDefault("FOOTPATH_FOOTPATH_BRIDGE_METER", pkg.DEFAULT_FOOTPATH_FOOTPATH_BRIDGE_METER)
	viper.SetDefault("ROAD_ROAD_BRIDGE_METER", pkg.DEFAULT_ROAD_ROAD_BRIDGE_METER)

	viper.SetDefault("MAX_SNAP_DISTANCE_METER", 500.0)

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("MAPBOX_ACCESS_TOKEN", "")
}
