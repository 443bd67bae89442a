// Package heuristic is the catalog of cost-to-go estimates for A*. Every
// entry returns a non-negative estimate and falls back to 0 for vertices
// without coordinates, which keeps it admissible by construction there.
//
// Whether a coordinate-based estimate is admissible against a particular
// graph's weights depends on the weight units the caller chose; that
// remains the caller's obligation, exactly as with any hand-written
// routing.Heuristic.
package heuristic

import (
	"fmt"
	"math"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/engine/routing"
	"github.com/lintang-b-s/pathkit/pkg/geo"
)

// Zero estimates nothing; A* with it degrades to Dijkstra. Always admissible.
func Zero() routing.Heuristic {
	return routing.ZeroHeuristic
}

// Euclidean is the straight-line distance in coordinate units. Admissible
// when edge weights are at least the euclidean distance between their
// endpoints.
func Euclidean(g *da.Graph, targetId string) (routing.Heuristic, error) {
	tLat, tLon, err := targetCoordinates(g, targetId)
	if err != nil {
		return nil, err
	}
	return func(v da.Index) float64 {
		lat, lon := g.GetVertexCoordinates(v)
		if math.IsNaN(lat) || math.IsNaN(lon) {
			return 0
		}
		dx, dy := lat-tLat, lon-tLon
		return math.Sqrt(dx*dx + dy*dy)
	}, nil
}

// Manhattan is the L1 distance in coordinate units. Admissible on grid
// graphs with unit axis-aligned moves; NOT admissible in general euclidean
// settings (it can overestimate by a factor of sqrt(2)).
func Manhattan(g *da.Graph, targetId string) (routing.Heuristic, error) {
	tLat, tLon, err := targetCoordinates(g, targetId)
	if err != nil {
		return nil, err
	}
	return func(v da.Index) float64 {
		lat, lon := g.GetVertexCoordinates(v)
		if math.IsNaN(lat) || math.IsNaN(lon) {
			return 0
		}
		return math.Abs(lat-tLat) + math.Abs(lon-tLon)
	}, nil
}

// Chebyshev is the L-infinity distance in coordinate units, a lower bound of
// both Euclidean and Manhattan.
func Chebyshev(g *da.Graph, targetId string) (routing.Heuristic, error) {
	tLat, tLon, err := targetCoordinates(g, targetId)
	if err != nil {
		return nil, err
	}
	return func(v da.Index) float64 {
		lat, lon := g.GetVertexCoordinates(v)
		if math.IsNaN(lat) || math.IsNaN(lon) {
			return 0
		}
		return math.Max(math.Abs(lat-tLat), math.Abs(lon-tLon))
	}, nil
}

// GreatCircle treats coordinates as degrees on the earth and estimates the
// great-circle distance in km. Admissible when edge weights are
// over-the-ground kilometers.
func GreatCircle(g *da.Graph, targetId string) (routing.Heuristic, error) {
	tLat, tLon, err := targetCoordinates(g, targetId)
	if err != nil {
		return nil, err
	}
	return func(v da.Index) float64 {
		lat, lon := g.GetVertexCoordinates(v)
		if math.IsNaN(lat) || math.IsNaN(lon) {
			return 0
		}
		return geo.CalculateGreatCircleDistance(lat, lon, tLat, tLon)
	}, nil
}

func targetCoordinates(g *da.Graph, targetId string) (float64, float64, error) {
	t, ok := g.GetVertexHandle(targetId)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", routing.ErrTargetNotFound, targetId)
	}
	tLat, tLon := g.GetVertexCoordinates(t)
	if math.IsNaN(tLat) || math.IsNaN(tLon) {
		return 0, 0, fmt.Errorf("heuristic: target vertex %q has no coordinates", targetId)
	}
	return tLat, tLon, nil
}
