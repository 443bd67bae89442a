package spatialindex

import (
	"testing"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"go.uber.org/zap"
)

func buildCityGraph(t *testing.T) *da.Graph {
	t.Helper()
	vertices := []da.Vertex{
		da.NewVertexWithCoordinates("monas", "Monas", -6.1754, 106.8272),
		da.NewVertexWithCoordinates("kotaTua", "Kota Tua", -6.1352, 106.8133),
		da.NewVertexWithCoordinates("blokM", "Blok M", -6.2446, 106.7997),
		da.NewVertex("virtual", ""), // no coordinates, must not be indexed
	}
	g, err := da.NewGraph(vertices, nil, false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return g
}

func TestNearestVertex(t *testing.T) {
	g := buildCityGraph(t)
	rt := NewRtree()
	rt.Build(g, 0.1, zap.NewNop())

	// a point just south of Monas must snap to it
	handle, err := rt.NearestVertex(-6.18, 106.828)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := g.GetVertexId(handle); got != "monas" {
		t.Errorf("nearest = %q, want monas", got)
	}

	handle, err = rt.NearestVertex(-6.25, 106.80)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := g.GetVertexId(handle); got != "blokM" {
		t.Errorf("nearest = %q, want blokM", got)
	}
}

func TestNearestVertexEmptyIndex(t *testing.T) {
	vertices := []da.Vertex{da.NewVertex("a", ""), da.NewVertex("b", "")}
	g, err := da.NewGraph(vertices, nil, false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	rt := NewRtree()
	rt.Build(g, 0.1, zap.NewNop())

	if _, err := rt.NearestVertex(0, 0); err != ErrNoCoordinateVertex {
		t.Errorf("want ErrNoCoordinateVertex, got %v", err)
	}
}
