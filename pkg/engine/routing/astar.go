package routing

import (
	"context"
	"fmt"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/util"
)

// AStar is the heuristic-guided search: it keeps g(v), the best known cost
// from the source, and orders its open set by f(v) = g(v) + h(v). With an
// admissible and consistent h it returns the same optimal distance as
// Dijkstra while settling fewer vertices; see Heuristic for the caller's
// obligations.
type AStar struct {
	engine    *RoutingEngine
	heuristic Heuristic

	// state.dist holds g, not f; f exists only as the frontier rank
	state *searchState
	pq    *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewAStar(engine *RoutingEngine, heuristic Heuristic) *AStar {
	return &AStar{
		engine:    engine,
		heuristic: heuristic,
		pq:        da.NewFourAryHeap[da.Index](),
	}
}

func (as *AStar) ShortestPath(ctx context.Context, sourceId, targetId string) (da.Route, error) {
	g := as.engine.graph

	s, t, err := validateEndpoints(g, sourceId, targetId)
	if err != nil {
		return da.Route{}, err
	}
	if s == t {
		return trivialRoute(sourceId), nil
	}

	n := g.NumberOfVertices()
	as.state = newSearchState(n)
	as.pq.Preallocate(n)

	as.state.dist[s] = 0
	as.pq.Insert(da.NewPriorityQueueNode(as.heuristic(s), s))

	for !as.pq.IsEmpty() {
		if util.StopConcurrentOperation(ctx) {
			return da.Route{}, ctx.Err()
		}

		node, _ := as.pq.ExtractMin()
		u := node.GetItem()
		if as.state.settled[u] {
			continue // stale open-set entry
		}
		as.state.settled[u] = true
		as.numSettledNodes++

		if u == t {
			return as.state.reconstructRoute(g, s, t), nil
		}

		as.relax(u)
	}

	return da.Route{}, fmt.Errorf("%w: %q -> %q", ErrPathNotFound, sourceId, targetId)
}

func (as *AStar) relax(u da.Index) {
	gu := as.state.dist[u]
	as.engine.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
		v := e.GetHead()
		newG := gu + e.GetWeight()

		if da.Ge(newG, as.state.dist[v]) {
			return
		}

		as.state.dist[v] = newG
		as.state.parent[v] = u
		// re-admit v with its new f; the old entry stays and is discarded
		// lazily at extraction
		as.pq.Insert(da.NewPriorityQueueNode(newG+as.heuristic(v), v))
	})
}
