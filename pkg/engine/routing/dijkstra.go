package routing

import (
	"context"
	"fmt"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/util"
)

// Dijkstra is the label-correcting single-direction search, frontier ordered
// by tentative distance. Stale frontier entries are tolerated and pruned
// lazily at extraction, so no decrease-key is needed.
//
// Among equal tentative distances the extraction order is arbitrary: the
// returned route is a valid shortest path but not guaranteed unique when
// multiple optima exist.
type Dijkstra struct {
	engine *RoutingEngine

	state *searchState
	pq    *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(engine *RoutingEngine) *Dijkstra {
	return &Dijkstra{
		engine: engine,
		pq:     da.NewFourAryHeap[da.Index](),
	}
}

func (us *Dijkstra) ShortestPath(ctx context.Context, sourceId, targetId string) (da.Route, error) {
	g := us.engine.graph

	s, t, err := validateEndpoints(g, sourceId, targetId)
	if err != nil {
		return da.Route{}, err
	}
	if s == t {
		return trivialRoute(sourceId), nil
	}

	us.preallocate()

	us.state.dist[s] = 0
	us.pq.Insert(da.NewPriorityQueueNode(0, s))

	for !us.pq.IsEmpty() {
		if util.StopConcurrentOperation(ctx) {
			return da.Route{}, ctx.Err()
		}

		node, _ := us.pq.ExtractMin()
		u := node.GetItem()
		if us.state.settled[u] {
			continue // stale entry, a better label was already settled
		}
		us.state.settled[u] = true
		us.numSettledNodes++

		if u == t {
			return us.state.reconstructRoute(g, s, t), nil
		}

		us.relax(u)
	}

	return da.Route{}, fmt.Errorf("%w: %q -> %q", ErrPathNotFound, sourceId, targetId)
}

func (us *Dijkstra) relax(u da.Index) {
	du := us.state.dist[u]
	us.engine.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
		v := e.GetHead()
		newDist := du + e.GetWeight()

		if da.Ge(newDist, us.state.dist[v]) {
			// newDist is not better, do nothing
			return
		}

		us.state.dist[v] = newDist
		us.state.parent[v] = u
		us.pq.Insert(da.NewPriorityQueueNode(newDist, v))
	})
}

func (us *Dijkstra) preallocate() {
	n := us.engine.graph.NumberOfVertices()
	us.state = newSearchState(n)
	us.pq.Preallocate(n)
}
