package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/gis"
	"github.com/lintang-b-s/campusnav/pkg/http"
	"github.com/lintang-b-s/campusnav/pkg/http/usecases"
	"github.com/lintang-b-s/campusnav/pkg/logger"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "enable per-client rate limiting")
	osmFile      = flag.String("osm_file", "", "build layers from an .osm.pbf extract instead of geojson files")
)

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

	roads, footpaths := loadLayers(log)

	graphs, err := gis.BuildGraphs(log, gis.BridgingConfig{
		FootpathRoadMeter:     viper.GetFloat64("FOOTPATH_ROAD_BRIDGE_METER"),
		FootpathFootpathMeter: viper.GetFloat64("FOOTPATH_FOOTPATH_BRIDGE_METER"),
		RoadRoadMeter:         viper.GetFloat64("ROAD_ROAD_BRIDGE_METER"),
	}, roads, footpaths)
	if err != nil {
		log.Fatal("failed to build mode graphs", zap.Error(err))
	}

	engine := routing.NewEngine(log,
		newRoutedGraph(graphs.Driving, log),
		newRoutedGraph(graphs.Walking, log),
		viper.GetFloat64("MAX_SNAP_DISTANCE_METER"))

	routingService := usecases.NewRoutingService(log, engine)
	mapService := usecases.NewMapService(viper.GetString("MAPBOX_ACCESS_TOKEN"), loadBuildings(log))

	ctx, cancel := context.WithCancel(context.Background())

	api := http.NewServer(log)
	if _, err := api.Use(ctx, log, *useRateLimit, routingService, mapService); err != nil {
		log.Fatal("failed to start api server", zap.Error(err))
	}

	sig := http.GracefulShutdown()
	log.Info("campusnav server stopped", zap.String("signal", sig.String()))
	cancel()
}

func loadLayers(log *zap.Logger) (*gis.Layer, *gis.Layer) {
	if *osmFile != "" {
		roads, footpaths, err := gis.LoadOSMLayers(context.Background(), *osmFile)
		if err != nil {
			log.Fatal("failed to load osm extract", zap.Error(err))
		}
		return roads, footpaths
	}

	roads, err := gis.LoadGeoJSONLayer(viper.GetString("ROADS_FILE"), pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	if err != nil {
		log.Fatal("failed to load roads layer", zap.Error(err))
	}
	footpaths, err := gis.LoadGeoJSONLayer(viper.GetString("FOOTPATHS_FILE"), pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)
	if err != nil {
		log.Fatal("failed to load footpaths layer", zap.Error(err))
	}
	return roads, footpaths
}

func loadBuildings(log *zap.Logger) *geojson.FeatureCollection {
	buildings, err := gis.LoadFeatureCollection(viper.GetString("BUILDINGS_FILE"))
	if err != nil {
		log.Warn("buildings layer not loaded", zap.Error(err))
		return nil
	}
	return buildings
}

func newRoutedGraph(g *datastructure.Graph, log *zap.Logger) *routing.RoutedGraph {
	index := spatialindex.NewRtree()
	index.Build(g.Vertices(), log)

	if !g.IsConnected() {
		componentIndex := spatialindex.NewRtree()
		componentIndex.Build(g.LargestComponent(), log)
		return routing.NewRoutedGraph(g, index, componentIndex)
	}
	return routing.NewRoutedGraph(g, index, nil)
}
