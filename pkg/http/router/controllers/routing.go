package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/campusnav/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type campusAPI struct {
	routingService RoutingService
	mapService     MapService
	log            *zap.Logger
}

func New(routingService RoutingService, mapService MapService, log *zap.Logger) *campusAPI {
	return &campusAPI{
		routingService: routingService,
		mapService:     mapService,
		log:            log,
	}
}

func (api *campusAPI) Routes(group *helper.RouteGroup) {
	group.GET("/route", api.calculateRoute)
	group.GET("/map-config", api.mapConfig)
	group.GET("/buildings", api.buildings)
}

func (api *campusAPI) calculateRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request calculateRouteRequest
		err     error
	)

	query := r.URL.Query()

	request.StartLat, err = strconv.ParseFloat(query.Get("start_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_lat is required and must be a valid float"))
		return
	}
	request.StartLon, err = strconv.ParseFloat(query.Get("start_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_lon is required and must be a valid float"))
		return
	}
	request.EndLat, err = strconv.ParseFloat(query.Get("end_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("end_lat is required and must be a valid float"))
		return
	}
	request.EndLon, err = strconv.ParseFloat(query.Get("end_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("end_lon is required and must be a valid float"))
		return
	}
	request.Mode = query.Get("mode")
	if request.Mode == "" {
		request.Mode = "driving"
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	route, err := api.routingService.CalculateRoute(request.StartLat, request.StartLon,
		request.EndLat, request.EndLon, request.Mode)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewCalculateRouteResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// mapConfig serves the map token server-side instead of embedding it in html.
func (api *campusAPI) mapConfig(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": api.mapService.MapConfig()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *campusAPI) buildings(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	fc := api.mapService.Buildings()
	if fc == nil {
		api.NotFoundResponse(w, r, errors.New("no buildings layer loaded"))
		return
	}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": fc}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
