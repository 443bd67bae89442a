package controllers

import (
	"context"

	"github.com/lintang-b-s/pathkit/pkg/datastructure"
)

type RoutingService interface {
	ShortestPath(ctx context.Context, sourceId, targetId, algorithm string) (datastructure.Route, error)
	ShortestPathNearby(ctx context.Context, origLat, origLon, dstLat, dstLon float64) (datastructure.Route, string, error)
}
