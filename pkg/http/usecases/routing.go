package usecases

import (
	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"go.uber.org/zap"
)

type RoutingService struct {
	log    *zap.Logger
	engine RouteCalculator
}

func NewRoutingService(log *zap.Logger, engine RouteCalculator) *RoutingService {
	return &RoutingService{
		log:    log,
		engine: engine,
	}
}

func (rs *RoutingService) CalculateRoute(startLat, startLon, endLat, endLon float64,
	mode string) (*datastructure.Route, error) {
	route, err := rs.engine.CalculateRoute(
		geo.NewCoordinate(startLat, startLon),
		geo.NewCoordinate(endLat, endLon),
		pkg.Mode(mode))
	if err != nil {
		return nil, err
	}

	if route.Mode != pkg.Mode(mode) {
		rs.log.Info("route served with downgraded mode",
			zap.String("requested", mode), zap.String("used", string(route.Mode)))
	}
	return route, nil
}
