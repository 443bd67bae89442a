package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"go.uber.org/zap"
)

// RoutingEngine owns the (read-only) graph every search borrows. One engine
// may serve any number of concurrent searches: each invocation allocates its
// own working state and never mutates the graph.
type RoutingEngine struct {
	graph  *da.Graph
	logger *zap.Logger
}

func NewRoutingEngine(graph *da.Graph, logger *zap.Logger) *RoutingEngine {
	return &RoutingEngine{
		graph:  graph,
		logger: logger,
	}
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

// Heuristic estimates the remaining cost from a vertex to the search target.
// It must be non-negative. Optimality of A* additionally requires the
// estimate to be admissible (never overestimate the true remaining cost) and
// consistent; that is the caller's obligation and is never validated here.
// An inadmissible heuristic silently yields a valid but possibly suboptimal
// route.
type Heuristic func(v da.Index) float64

// ZeroHeuristic degrades A* to plain Dijkstra.
func ZeroHeuristic(_ da.Index) float64 { return 0 }

// Router is one shortest-path strategy over a borrowed graph.
type Router interface {
	ShortestPath(ctx context.Context, sourceId, targetId string) (da.Route, error)
}

// Algorithm is the closed set of search strategies. The set is fixed at
// compile time, so selection is a single switch rather than a dispatch
// hierarchy.
type Algorithm uint8

const (
	DIJKSTRA Algorithm = iota
	BREADTH_FIRST_SEARCH
	ASTAR
	BIDIRECTIONAL_DIJKSTRA
)

var ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")

func (a Algorithm) String() string {
	switch a {
	case DIJKSTRA:
		return "dijkstra"
	case BREADTH_FIRST_SEARCH:
		return "bfs"
	case ASTAR:
		return "astar"
	case BIDIRECTIONAL_DIJKSTRA:
		return "bidirectional"
	default:
		return "unknown"
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "dijkstra":
		return DIJKSTRA, nil
	case "bfs":
		return BREADTH_FIRST_SEARCH, nil
	case "astar", "a*":
		return ASTAR, nil
	case "bidirectional", "bidirectional-dijkstra":
		return BIDIRECTIONAL_DIJKSTRA, nil
	default:
		return DIJKSTRA, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Search runs algorithm from sourceId to targetId. ASTAR chosen here runs
// with the zero heuristic (equivalent to Dijkstra); use SearchWithHeuristic
// to supply a real estimate.
func (re *RoutingEngine) Search(ctx context.Context, algorithm Algorithm,
	sourceId, targetId string) (da.Route, error) {
	var router Router
	switch algorithm {
	case DIJKSTRA:
		router = NewDijkstra(re)
	case BREADTH_FIRST_SEARCH:
		router = NewBreadthFirstSearch(re)
	case ASTAR:
		router = NewAStar(re, ZeroHeuristic)
	case BIDIRECTIONAL_DIJKSTRA:
		router = NewBidirectionalDijkstra(re)
	default:
		return da.Route{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algorithm)
	}
	return router.ShortestPath(ctx, sourceId, targetId)
}

// SearchWithHeuristic runs A* with the caller-supplied cost-to-go estimate.
func (re *RoutingEngine) SearchWithHeuristic(ctx context.Context,
	sourceId, targetId string, h Heuristic) (da.Route, error) {
	astar := NewAStar(re, h)
	return astar.ShortestPath(ctx, sourceId, targetId)
}
