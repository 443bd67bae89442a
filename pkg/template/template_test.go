package template

import (
	"context"
	"errors"
	"testing"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/engine/routing"
	"go.uber.org/zap"
)

func TestGridShape(t *testing.T) {
	g, err := Grid(3, 4, 1.0)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if g.NumberOfVertices() != 12 {
		t.Errorf("vertices = %d, want 12", g.NumberOfVertices())
	}
	// 3*(4-1) horizontal + (3-1)*4 vertical
	if g.NumberOfEdges() != 17 {
		t.Errorf("edges = %d, want 17", g.NumberOfEdges())
	}

	corner, ok := g.GetVertexHandle("0_0")
	if !ok {
		t.Fatal("corner 0_0 missing")
	}
	if g.GetOutDegree(corner) != 2 {
		t.Errorf("corner degree = %d, want 2", g.GetOutDegree(corner))
	}
}

func TestRingShortestPathWrapsAround(t *testing.T) {
	g, err := Ring(6, 1.0)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	re := routing.NewRoutingEngine(g, zap.NewNop())

	// v0 -> v5 is one hop backwards around the ring, not five forward
	route, err := re.Search(context.Background(), routing.DIJKSTRA, "v0", "v5")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !da.Eq(route.GetTotalDistance(), 1.0) {
		t.Errorf("distance = %v, want 1", route.GetTotalDistance())
	}
}

func TestCompleteDegree(t *testing.T) {
	g, err := Complete(5, 2.0)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if g.NumberOfEdges() != 10 {
		t.Errorf("edges = %d, want 10", g.NumberOfEdges())
	}
	g.ForVertices(func(v *da.Vertex) {
		if g.GetOutDegree(v.GetHandle()) != 4 {
			t.Errorf("%s degree = %d, want 4", v.GetId(), g.GetOutDegree(v.GetHandle()))
		}
	})
}

func TestStarRoutesThroughHub(t *testing.T) {
	g, err := Star(5, 3.0)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	re := routing.NewRoutingEngine(g, zap.NewNop())

	route, err := re.Search(context.Background(), routing.DIJKSTRA, "v1", "v4")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if route.NumberOfHops() != 2 {
		t.Errorf("hops = %d, want 2 (through the hub)", route.NumberOfHops())
	}
	if !da.Eq(route.GetTotalDistance(), 6.0) {
		t.Errorf("distance = %v, want 6", route.GetTotalDistance())
	}
}

func TestRandomIsReproducible(t *testing.T) {
	first, err := Random(20, 40, 10.0, false, 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := Random(20, 40, 10.0, false, 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if first.NumberOfEdges() != second.NumberOfEdges() {
		t.Fatalf("edge counts differ: %d vs %d", first.NumberOfEdges(), second.NumberOfEdges())
	}
	first.ForVertices(func(v *da.Vertex) {
		w1, ok1 := first.EdgeWeight(v.GetId(), "v0")
		w2, ok2 := second.EdgeWeight(v.GetId(), "v0")
		if ok1 != ok2 || (ok1 && !da.Eq(w1, w2)) {
			t.Errorf("%s->v0 differs between identically seeded graphs", v.GetId())
		}
	})
}

// every bidirectional answer on a random graph must agree with plain
// dijkstra, both directed and undirected
func TestRandomGraphOptimalityAgreement(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g, err := Random(30, 120, 50.0, directed, 99)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		re := routing.NewRoutingEngine(g, zap.NewNop())

		for i := 0; i < 30; i += 3 {
			source := "v0"
			target := g.GetVertexId(da.Index(i))

			want, errD := re.Search(context.Background(), routing.DIJKSTRA, source, target)
			got, errB := re.Search(context.Background(), routing.BIDIRECTIONAL_DIJKSTRA, source, target)

			if (errD == nil) != (errB == nil) {
				t.Fatalf("directed=%v %s->%s: dijkstra err=%v bidirectional err=%v",
					directed, source, target, errD, errB)
			}
			if errD != nil {
				continue
			}
			if !da.Eq(got.GetTotalDistance(), want.GetTotalDistance()) {
				t.Errorf("directed=%v %s->%s: bidirectional=%v dijkstra=%v",
					directed, source, target, got.GetTotalDistance(), want.GetTotalDistance())
			}
		}
	}
}

func TestInvalidDimensions(t *testing.T) {
	if _, err := Grid(0, 3, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Grid: want ErrInvalidDimension, got %v", err)
	}
	if _, err := Ring(2, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Ring: want ErrInvalidDimension, got %v", err)
	}
	if _, err := Star(1, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Star: want ErrInvalidDimension, got %v", err)
	}
	if _, err := Random(1, 5, 1, false, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Random: want ErrInvalidDimension, got %v", err)
	}
}
