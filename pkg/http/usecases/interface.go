package usecases

import (
	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
)

// RouteCalculator is the engine surface the http layer depends on.
type RouteCalculator interface {
	CalculateRoute(start, end geo.Coordinate, mode pkg.Mode) (*datastructure.Route, error)
}
