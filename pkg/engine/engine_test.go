package engine

import (
	"context"
	"testing"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/engine/routing"
	"github.com/lintang-b-s/pathkit/pkg/template"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBatchSearchResultsInInputOrder(t *testing.T) {
	g, err := template.Grid(4, 4, 1.0)
	require.NoError(t, err)
	eng := NewEngine(g, zap.NewNop())

	queries := []Query{
		NewQuery("0_0", "3_3"),
		NewQuery("0_0", "0_0"),
		NewQuery("1_1", "3_0"),
		NewQuery("0_0", "nope"),
		NewQuery("2_2", "0_3"),
	}

	results := eng.BatchSearch(context.Background(), routing.DIJKSTRA, queries, 3)
	require.Len(t, results, len(queries))

	for i, r := range results {
		require.Equal(t, queries[i], r.Query, "result %d out of order", i)
	}

	require.NoError(t, results[0].Err)
	require.InEpsilon(t, 6.0, results[0].Route.GetTotalDistance(), 1e-9)

	require.NoError(t, results[1].Err)
	require.Equal(t, []string{"0_0"}, results[1].Route.GetVertexIds())

	require.ErrorIs(t, results[3].Err, routing.ErrTargetNotFound)
	require.NoError(t, results[4].Err)
}

func TestBatchSearchMatchesSequential(t *testing.T) {
	g, err := template.Random(25, 80, 10.0, false, 3)
	require.NoError(t, err)
	eng := NewEngine(g, zap.NewNop())

	queries := make([]Query, 0, 25)
	for i := 0; i < 25; i++ {
		queries = append(queries, NewQuery("v0", g.GetVertexId(da.Index(i))))
	}

	batched := eng.BatchSearch(context.Background(), routing.BIDIRECTIONAL_DIJKSTRA, queries, 8)

	for i, q := range queries {
		want, err := eng.Search(context.Background(), routing.BIDIRECTIONAL_DIJKSTRA, q.SourceId, q.TargetId)
		if err != nil {
			require.Error(t, batched[i].Err, "query %d", i)
			continue
		}
		require.NoError(t, batched[i].Err, "query %d", i)
		require.InDelta(t, want.GetTotalDistance(), batched[i].Route.GetTotalDistance(), 1e-9, "query %d", i)
	}
}

func TestBatchSearchEmpty(t *testing.T) {
	g, err := template.Ring(4, 1.0)
	require.NoError(t, err)
	eng := NewEngine(g, zap.NewNop())

	results := eng.BatchSearch(context.Background(), routing.DIJKSTRA, nil, 4)
	require.Empty(t, results)
}
