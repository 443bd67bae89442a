// Package usecases adapts the routing engine to the HTTP layer, translating
// engine errors into transport-level error codes.
package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/engine"
	"github.com/lintang-b-s/pathkit/pkg/engine/routing"
	"github.com/lintang-b-s/pathkit/pkg/geo"
	"github.com/lintang-b-s/pathkit/pkg/heuristic"
	"github.com/lintang-b-s/pathkit/pkg/spatialindex"
	"github.com/lintang-b-s/pathkit/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	engine       *engine.Engine
	spatialIndex *spatialindex.Rtree
}

func NewRoutingService(log *zap.Logger, eng *engine.Engine,
	spatialIndex *spatialindex.Rtree) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       eng,
		spatialIndex: spatialIndex,
	}
}

func translateRoutingError(err error) error {
	switch {
	case errors.Is(err, routing.ErrSourceNotFound),
		errors.Is(err, routing.ErrTargetNotFound),
		errors.Is(err, routing.ErrPathNotFound):
		return util.WrapErrorf(err, util.ErrNotFound, "routing")
	case errors.Is(err, routing.ErrUnknownAlgorithm):
		return util.WrapErrorf(err, util.ErrBadParamInput, "routing")
	default:
		return util.WrapErrorf(err, util.ErrInternalServerError, "routing")
	}
}

// ShortestPath runs one search between two vertex ids using the named
// algorithm.
func (s *RoutingService) ShortestPath(ctx context.Context, sourceId, targetId,
	algorithm string) (datastructure.Route, error) {

	alg, err := routing.ParseAlgorithm(algorithm)
	if err != nil {
		return datastructure.Route{}, util.WrapErrorf(err, util.ErrBadParamInput, "routing")
	}

	route, err := s.engine.Search(ctx, alg, sourceId, targetId)
	if err != nil {
		return datastructure.Route{}, translateRoutingError(err)
	}
	return route, nil
}

// ShortestPathNearby snaps the origin and destination coordinates to their
// nearest indexed vertices, runs an A* search with a great-circle heuristic,
// and returns the route plus its encoded polyline.
func (s *RoutingService) ShortestPathNearby(ctx context.Context, origLat, origLon,
	dstLat, dstLon float64) (datastructure.Route, string, error) {

	graph := s.engine.GetGraph()

	sourceHandle, err := s.spatialIndex.NearestVertex(origLat, origLon)
	if err != nil {
		return datastructure.Route{}, "", util.WrapErrorf(err, util.ErrNotFound, "snapping origin")
	}
	targetHandle, err := s.spatialIndex.NearestVertex(dstLat, dstLon)
	if err != nil {
		return datastructure.Route{}, "", util.WrapErrorf(err, util.ErrNotFound, "snapping destination")
	}

	sourceId := graph.GetVertexId(sourceHandle)
	targetId := graph.GetVertexId(targetHandle)

	h, err := heuristic.GreatCircle(graph, targetId)
	if err != nil {
		return datastructure.Route{}, "", translateRoutingError(err)
	}

	route, err := s.engine.SearchWithHeuristic(ctx, sourceId, targetId, h)
	if err != nil {
		return datastructure.Route{}, "", translateRoutingError(err)
	}

	coords := make([]geo.Coordinate, 0, route.NumberOfHops()+1)
	for _, id := range route.GetVertexIds() {
		handle, ok := graph.GetVertexHandle(id)
		if !ok {
			continue
		}
		vertex := graph.GetVertex(handle)
		if !vertex.HasCoordinates() {
			continue
		}
		coords = append(coords, geo.NewCoordinate(vertex.GetLat(), vertex.GetLon()))
	}

	return route, geo.PolylineFromCoords(coords), nil
}
