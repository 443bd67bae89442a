package routing

import (
	"context"
	"fmt"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/util"
)

// BreadthFirstSearch is the label-setting single-direction search with a FIFO
// frontier. It guarantees the fewest hops, not the smallest weighted
// distance: on non-uniform edge weights the reported totalDistance is the
// true weight sum along the hop-optimal route, which may exceed the weight
// optimum. Callers wanting a weight-optimal answer must use Dijkstra.
type BreadthFirstSearch struct {
	engine *RoutingEngine

	state *searchState
	queue []da.Index

	numSettledNodes int
}

func NewBreadthFirstSearch(engine *RoutingEngine) *BreadthFirstSearch {
	return &BreadthFirstSearch{
		engine: engine,
	}
}

func (bf *BreadthFirstSearch) ShortestPath(ctx context.Context, sourceId, targetId string) (da.Route, error) {
	g := bf.engine.graph

	s, t, err := validateEndpoints(g, sourceId, targetId)
	if err != nil {
		return da.Route{}, err
	}
	if s == t {
		return trivialRoute(sourceId), nil
	}

	n := g.NumberOfVertices()
	bf.state = newSearchState(n)
	bf.queue = make([]da.Index, 0, n)

	// settled doubles as the visited set: marked at first discovery, not at
	// dequeue, so a vertex is never enqueued twice.
	bf.state.dist[s] = 0
	bf.state.settled[s] = true
	bf.queue = append(bf.queue, s)

	for len(bf.queue) > 0 {
		if util.StopConcurrentOperation(ctx) {
			return da.Route{}, ctx.Err()
		}

		u := bf.queue[0]
		bf.queue = bf.queue[1:]
		bf.numSettledNodes++

		if u == t {
			return bf.state.reconstructRoute(g, s, t), nil
		}

		du := bf.state.dist[u]
		g.ForOutEdgesOf(u, func(e *da.OutEdge) {
			v := e.GetHead()
			if bf.state.settled[v] {
				return
			}
			bf.state.settled[v] = true
			// hop-count order decides the route; dist accumulates the real
			// weight sum for reporting only
			bf.state.dist[v] = du + e.GetWeight()
			bf.state.parent[v] = u
			bf.queue = append(bf.queue, v)
		})
	}

	return da.Route{}, fmt.Errorf("%w: %q -> %q", ErrPathNotFound, sourceId, targetId)
}
