package routing

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/pathkit/pkg"
	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/util"
)

var (
	ErrSourceNotFound = errors.New("routing: source vertex not found in graph")
	ErrTargetNotFound = errors.New("routing: target vertex not found in graph")
	ErrPathNotFound   = errors.New("routing: no path exists between source and target")
)

// validateEndpoints resolves both external ids to dense handles. Either
// endpoint missing from the vertex set fails immediately, before any
// traversal starts.
func validateEndpoints(g *da.Graph, sourceId, targetId string) (da.Index, da.Index, error) {
	s, ok := g.GetVertexHandle(sourceId)
	if !ok {
		return da.INVALID_VERTEX_ID, da.INVALID_VERTEX_ID,
			fmt.Errorf("%w: %q", ErrSourceNotFound, sourceId)
	}
	t, ok := g.GetVertexHandle(targetId)
	if !ok {
		return da.INVALID_VERTEX_ID, da.INVALID_VERTEX_ID,
			fmt.Errorf("%w: %q", ErrTargetNotFound, targetId)
	}
	return s, t, nil
}

// trivialRoute is the source==target answer: a single-vertex route of
// distance 0, returned without touching the frontier.
func trivialRoute(sourceId string) da.Route {
	return da.NewRoute([]string{sourceId}, 0)
}

// searchState is the per-invocation working state of one search direction:
// distance labels, parent links for path reconstruction, and settled flags.
// Everything here is indexed by the graph's dense vertex handle and is
// discarded when the search returns.
type searchState struct {
	dist    []float64
	parent  []da.Index
	settled []bool
}

func newSearchState(n int) *searchState {
	st := &searchState{
		dist:    make([]float64, n),
		parent:  make([]da.Index, n),
		settled: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		st.dist[i] = pkg.INF_WEIGHT
		st.parent[i] = da.INVALID_VERTEX_ID
	}
	return st
}

// labelled reports whether v has ever been reached by this direction.
func (st *searchState) labelled(v da.Index) bool {
	return da.Lt(st.dist[v], pkg.INF_WEIGHT)
}

// reconstructRoute follows parent links from t back to s and reverses the
// chain. st.dist[t] is the accumulated cost of exactly that chain.
func (st *searchState) reconstructRoute(g *da.Graph, s, t da.Index) da.Route {
	handles := make([]da.Index, 0)
	for cur := t; cur != da.INVALID_VERTEX_ID; cur = st.parent[cur] {
		handles = append(handles, cur)
		if cur == s {
			break
		}
	}
	handles = util.ReverseG(handles)

	ids := make([]string, len(handles))
	for i, h := range handles {
		ids[i] = g.GetVertexId(h)
	}
	return da.NewRoute(ids, st.dist[t])
}
