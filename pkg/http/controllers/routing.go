package controllers

import (
	"net/http"
	"strconv"

	"github.com/lintang-b-s/pathkit/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type RoutingAPI struct {
	log     *zap.Logger
	service RoutingService
}

func NewRoutingAPI(log *zap.Logger, service RoutingService) *RoutingAPI {
	return &RoutingAPI{log: log, service: service}
}

func (api *RoutingAPI) Routes(group *routerhelper.RouteGroup) {
	group.GET("/navigation/shortest-path", api.shortestPath)
	group.GET("/navigation/shortest-path-nearby", api.shortestPathNearby)
}

// shortestPath handles GET /api/navigation/shortest-path?source=&target=&algorithm=.
func (api *RoutingAPI) shortestPath(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := shortestPathRequest{
		Source:    query.Get("source"),
		Target:    query.Get("target"),
		Algorithm: query.Get("algorithm"),
	}
	if request.Algorithm == "" {
		request.Algorithm = "dijkstra"
	}
	if err := validate.Struct(request); err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	route, err := api.service.ShortestPath(r.Context(), request.Source, request.Target, request.Algorithm)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	response := shortestPathResponse{
		Path:          route.GetVertexIds(),
		TotalDistance: route.GetTotalDistance(),
		Hops:          route.NumberOfHops(),
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": response}, nil); err != nil {
		api.log.Error("writing response", zap.Error(err))
	}
}

// shortestPathNearby handles GET /api/navigation/shortest-path-nearby.
// Origin and destination coordinates are snapped to the nearest indexed vertex.
func (api *RoutingAPI) shortestPathNearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	origLat, err := strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, "origin_lat must be a number")
		return
	}
	origLon, err := strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, "origin_lon must be a number")
		return
	}
	dstLat, err := strconv.ParseFloat(query.Get("destination_lat"), 64)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, "destination_lat must be a number")
		return
	}
	dstLon, err := strconv.ParseFloat(query.Get("destination_lon"), 64)
	if err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, "destination_lon must be a number")
		return
	}

	request := shortestPathNearbyRequest{
		OriginLat:      origLat,
		OriginLon:      origLon,
		DestinationLat: dstLat,
		DestinationLon: dstLon,
	}
	if err := validate.Struct(request); err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	route, encodedPolyline, err := api.service.ShortestPathNearby(r.Context(),
		request.OriginLat, request.OriginLon, request.DestinationLat, request.DestinationLon)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	response := shortestPathNearbyResponse{
		Path:          route.GetVertexIds(),
		TotalDistance: route.GetTotalDistance(),
		Hops:          route.NumberOfHops(),
		Polyline:      encodedPolyline,
	}
	if err := writeJSON(w, http.StatusOK, envelope{"data": response}, nil); err != nil {
		api.log.Error("writing response", zap.Error(err))
	}
}
