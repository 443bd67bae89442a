package routing

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/pathkit/pkg"
	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/util"
)

// BidirectionalDijkstra interleaves two single-direction searches in one
// goroutine: a forward search rooted at the source over the forward
// adjacency, and a backward search rooted at the target over the reverse
// adjacency. On a directed graph the backward half is only correct because
// the Graph always carries an explicit reverse index; on an undirected graph
// the two indexes coincide.
//
// Both directions share a tentative best full-path length mu and the meeting
// vertex that realized it. The classical stopping bound applies: once the
// minimum keys of both frontiers reach mu, no undiscovered path can beat it.
type BidirectionalDijkstra struct {
	engine *RoutingEngine

	forward  *searchState
	backward *searchState

	forwardPq  *da.MinHeap[da.Index]
	backwardPq *da.MinHeap[da.Index]

	bestPathLength float64
	meetingVertex  da.Index

	numSettledNodes int
}

func NewBidirectionalDijkstra(engine *RoutingEngine) *BidirectionalDijkstra {
	return &BidirectionalDijkstra{
		engine:     engine,
		forwardPq:  da.NewFourAryHeap[da.Index](),
		backwardPq: da.NewFourAryHeap[da.Index](),
	}
}

func (bs *BidirectionalDijkstra) ShortestPath(ctx context.Context, sourceId, targetId string) (da.Route, error) {
	g := bs.engine.graph

	s, t, err := validateEndpoints(g, sourceId, targetId)
	if err != nil {
		return da.Route{}, err
	}
	if s == t {
		return trivialRoute(sourceId), nil
	}

	n := g.NumberOfVertices()
	bs.forward = newSearchState(n)
	bs.backward = newSearchState(n)
	bs.forwardPq.Preallocate(n)
	bs.backwardPq.Preallocate(n)

	bs.bestPathLength = 2 * pkg.INF_WEIGHT
	bs.meetingVertex = da.INVALID_VERTEX_ID

	bs.forward.dist[s] = 0
	bs.backward.dist[t] = 0
	bs.forwardPq.Insert(da.NewPriorityQueueNode(0, s))
	bs.backwardPq.Insert(da.NewPriorityQueueNode(0, t))

	for !bs.forwardPq.IsEmpty() && !bs.backwardPq.IsEmpty() {
		if util.StopConcurrentOperation(ctx) {
			return da.Route{}, ctx.Err()
		}

		// stopping bound: both frontiers' optimistic lower bounds have
		// reached the best known full path, nothing better remains
		if da.Ge(bs.forwardPq.GetMinrank(), bs.bestPathLength) &&
			da.Ge(bs.backwardPq.GetMinrank(), bs.bestPathLength) {
			break
		}

		// adaptive balancing: advance whichever frontier is currently behind
		if bs.forwardPq.GetMinrank() <= bs.backwardPq.GetMinrank() {
			bs.advanceForward()
		} else {
			bs.advanceBackward()
		}
	}

	if bs.meetingVertex == da.INVALID_VERTEX_ID {
		return da.Route{}, fmt.Errorf("%w: %q -> %q", ErrPathNotFound, sourceId, targetId)
	}

	return bs.reconstructRoute(s, t), nil
}

func (bs *BidirectionalDijkstra) advanceForward() {
	node, _ := bs.forwardPq.ExtractMin()
	u := node.GetItem()
	if bs.forward.settled[u] {
		return // stale entry
	}
	bs.forward.settled[u] = true
	bs.numSettledNodes++

	if bs.backward.settled[u] {
		bs.updateMeeting(u, bs.forward.dist[u]+bs.backward.dist[u])
	}

	// pruning: a vertex already worse than the best known full path is never
	// expanded further
	if da.Ge(bs.forward.dist[u], bs.bestPathLength) {
		return
	}

	du := bs.forward.dist[u]
	bs.engine.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
		v := e.GetHead()
		newDist := du + e.GetWeight()

		if da.Ge(newDist, bs.forward.dist[v]) || da.Ge(newDist, bs.bestPathLength) {
			return
		}

		bs.forward.dist[v] = newDist
		bs.forward.parent[v] = u
		bs.forwardPq.Insert(da.NewPriorityQueueNode(newDist, v))

		if bs.backward.labelled(v) {
			bs.updateMeeting(v, newDist+bs.backward.dist[v])
		}
	})
}

// advanceBackward mirrors advanceForward over the reverse adjacency.
func (bs *BidirectionalDijkstra) advanceBackward() {
	node, _ := bs.backwardPq.ExtractMin()
	u := node.GetItem()
	if bs.backward.settled[u] {
		return
	}
	bs.backward.settled[u] = true
	bs.numSettledNodes++

	if bs.forward.settled[u] {
		bs.updateMeeting(u, bs.forward.dist[u]+bs.backward.dist[u])
	}

	if da.Ge(bs.backward.dist[u], bs.bestPathLength) {
		return
	}

	du := bs.backward.dist[u]
	bs.engine.graph.ForInEdgesOf(u, func(e *da.InEdge) {
		v := e.GetTail()
		newDist := du + e.GetWeight()

		if da.Ge(newDist, bs.backward.dist[v]) || da.Ge(newDist, bs.bestPathLength) {
			return
		}

		bs.backward.dist[v] = newDist
		bs.backward.parent[v] = u
		bs.backwardPq.Insert(da.NewPriorityQueueNode(newDist, v))

		if bs.forward.labelled(v) {
			bs.updateMeeting(v, bs.forward.dist[v]+newDist)
		}
	})
}

func (bs *BidirectionalDijkstra) updateMeeting(v da.Index, candidate float64) {
	if da.Lt(candidate, bs.bestPathLength) {
		bs.bestPathLength = candidate
		bs.meetingVertex = v
	}
}

// reconstructRoute concatenates the forward parent chain source..meeting with
// the backward parent chain meeting..target. The backward parent of v is the
// vertex one step closer to the target, so that chain is already in path
// order.
func (bs *BidirectionalDijkstra) reconstructRoute(s, t da.Index) da.Route {
	g := bs.engine.graph

	handles := make([]da.Index, 0)
	for cur := bs.meetingVertex; cur != da.INVALID_VERTEX_ID; cur = bs.forward.parent[cur] {
		handles = append(handles, cur)
		if cur == s {
			break
		}
	}
	handles = util.ReverseG(handles)

	for cur := bs.backward.parent[bs.meetingVertex]; cur != da.INVALID_VERTEX_ID; cur = bs.backward.parent[cur] {
		handles = append(handles, cur)
		if cur == t {
			break
		}
	}

	ids := make([]string, len(handles))
	for i, h := range handles {
		ids[i] = g.GetVertexId(h)
	}
	return da.NewRoute(ids, bs.bestPathLength)
}
