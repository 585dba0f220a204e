package controllers

import (
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
)

type calculateRouteRequest struct {
	StartLat float64 `json:"start_lat" validate:"min=-90,max=90"`
	StartLon float64 `json:"start_lon" validate:"min=-180,max=180"`
	EndLat   float64 `json:"end_lat" validate:"min=-90,max=90"`
	EndLon   float64 `json:"end_lon" validate:"min=-180,max=180"`
	Mode     string  `json:"mode" validate:"omitempty,oneof=driving walking"`
}

type instructionResponse struct {
	Text     string     `json:"text"`
	Location [2]float64 `json:"location"` // lon, lat
}

type calculateRouteResponse struct {
	Path          [][2]float64          `json:"path"` // lon, lat
	Polyline      string                `json:"polyline"`
	Directions    []instructionResponse `json:"directions"`
	TotalDistance int                   `json:"total_distance_m"`
	Mode          string                `json:"mode"`
}

func NewCalculateRouteResponse(route *datastructure.Route) calculateRouteResponse {
	path := make([][2]float64, len(route.Path))
	for i, p := range route.Path {
		path[i] = [2]float64{p.Lon, p.Lat}
	}
	directions := make([]instructionResponse, len(route.Instructions))
	for i, ins := range route.Instructions {
		directions[i] = instructionResponse{
			Text:     ins.Text,
			Location: [2]float64{ins.Location.Lon, ins.Location.Lat},
		}
	}
	return calculateRouteResponse{
		Path:          path,
		Polyline:      route.Polyline,
		Directions:    directions,
		TotalDistance: route.TotalDistance,
		Mode:          string(route.Mode),
	}
}
