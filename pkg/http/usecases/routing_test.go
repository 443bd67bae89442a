package usecases

import (
	"context"
	"errors"
	"testing"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/engine"
	"github.com/lintang-b-s/pathkit/pkg/geo"
	"github.com/lintang-b-s/pathkit/pkg/spatialindex"
	"github.com/lintang-b-s/pathkit/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCityService(t *testing.T) *RoutingService {
	t.Helper()

	coords := map[string][2]float64{
		"monas":   {-6.1754, 106.8272},
		"kotaTua": {-6.1352, 106.8133},
		"blokM":   {-6.2446, 106.7997},
		"senayan": {-6.2250, 106.7997},
	}
	vertices := make([]da.Vertex, 0, len(coords))
	for id, c := range coords {
		vertices = append(vertices, da.NewVertexWithCoordinates(id, id, c[0], c[1]))
	}

	// weights are the over-the-ground km, so the great-circle heuristic is
	// admissible
	pairs := [][2]string{
		{"monas", "kotaTua"},
		{"monas", "senayan"},
		{"senayan", "blokM"},
	}
	edges := make([]da.Edge, 0, len(pairs))
	for _, p := range pairs {
		a, b := coords[p[0]], coords[p[1]]
		w := geo.CalculateGreatCircleDistance(a[0], a[1], b[0], b[1])
		e, err := da.NewEdge(p[0], p[1], w)
		require.NoError(t, err)
		edges = append(edges, e)
	}

	g, err := da.NewGraph(vertices, edges, false)
	require.NoError(t, err)

	log := zap.NewNop()
	idx := spatialindex.NewRtree()
	idx.Build(g, 0.2, log)

	return NewRoutingService(log, engine.NewEngine(g, log), idx)
}

func TestShortestPathService(t *testing.T) {
	s := newCityService(t)

	route, err := s.ShortestPath(context.Background(), "kotaTua", "blokM", "dijkstra")
	require.NoError(t, err)
	require.Equal(t, []string{"kotaTua", "monas", "senayan", "blokM"}, route.GetVertexIds())
}

func TestShortestPathServiceErrorCodes(t *testing.T) {
	s := newCityService(t)

	_, err := s.ShortestPath(context.Background(), "kotaTua", "blokM", "bogus")
	var wrapped *util.Error
	require.True(t, errors.As(err, &wrapped))
	require.ErrorIs(t, wrapped.Code(), util.ErrBadParamInput)

	_, err = s.ShortestPath(context.Background(), "nowhere", "blokM", "dijkstra")
	require.True(t, errors.As(err, &wrapped))
	require.ErrorIs(t, wrapped.Code(), util.ErrNotFound)
}

func TestShortestPathNearbySnapsAndEncodes(t *testing.T) {
	s := newCityService(t)

	// points slightly off Kota Tua and Blok M
	route, encoded, err := s.ShortestPathNearby(context.Background(),
		-6.1360, 106.8140, -6.2450, 106.8000)
	require.NoError(t, err)
	require.Equal(t, []string{"kotaTua", "monas", "senayan", "blokM"}, route.GetVertexIds())
	require.NotEmpty(t, encoded)
}
