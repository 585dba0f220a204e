package main

import (
	"flag"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/gis"
	"github.com/lintang-b-s/campusnav/pkg/logger"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	drivingOut = flag.String("driving_out", "./data/driving.graph", "output path for the driving graph snapshot")
	walkingOut = flag.String("walking_out", "./data/walking.graph", "output path for the walking graph snapshot")
)

// builds both mode graphs from the configured layers and writes versioned
// snapshots, then reads them back to verify the files are loadable.
func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	util.SetConfigDefaults()
	if err := util.ReadConfig(); err != nil {
		log.Warn("no config file found, using defaults", zap.Error(err))
	}

	roads, err := gis.LoadGeoJSONLayer(viper.GetString("ROADS_FILE"), pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	if err != nil {
		log.Fatal("failed to load roads layer", zap.Error(err))
	}
	footpaths, err := gis.LoadGeoJSONLayer(viper.GetString("FOOTPATHS_FILE"), pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)
	if err != nil {
		log.Fatal("failed to load footpaths layer", zap.Error(err))
	}

	graphs, err := gis.BuildGraphs(log, gis.BridgingConfig{
		FootpathRoadMeter:     viper.GetFloat64("FOOTPATH_ROAD_BRIDGE_METER"),
		FootpathFootpathMeter: viper.GetFloat64("FOOTPATH_FOOTPATH_BRIDGE_METER"),
		RoadRoadMeter:         viper.GetFloat64("ROAD_ROAD_BRIDGE_METER"),
	}, roads, footpaths)
	if err != nil {
		log.Fatal("failed to build mode graphs", zap.Error(err))
	}

	if err := graphs.Driving.WriteGraph(*drivingOut); err != nil {
		log.Fatal("failed to write driving graph snapshot", zap.Error(err))
	}
	if err := graphs.Walking.WriteGraph(*walkingOut); err != nil {
		log.Fatal("failed to write walking graph snapshot", zap.Error(err))
	}

	if _, err := datastructure.ReadGraph(*drivingOut); err != nil {
		log.Fatal("driving graph snapshot does not read back", zap.Error(err))
	}
	if _, err := datastructure.ReadGraph(*walkingOut); err != nil {
		log.Fatal("walking graph snapshot does not read back", zap.Error(err))
	}

	log.Info("graph snapshots written",
		zap.String("driving", *drivingOut),
		zap.String("walking", *walkingOut))
}
