// Package template generates small well-known graph shapes: fixtures for
// tests, benchmarks and demos that feed the search engine.
package template

import (
	"errors"
	"fmt"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"golang.org/x/exp/rand"
)

var ErrInvalidDimension = errors.New("template: graph dimensions must be positive")

// Grid builds an undirected rows x cols lattice with 4-neighbor connectivity
// and uniform edge weight. Vertex ids are "r_c"; each vertex carries its grid
// position as coordinates, so the coordinate heuristics work out of the box.
func Grid(rows, cols int, weight float64) (*da.Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	vertices := make([]da.Vertex, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := fmt.Sprintf("%d_%d", r, c)
			vertices = append(vertices, da.NewVertexWithCoordinates(id, id, float64(r), float64(c)))
		}
	}

	edges := make([]da.Edge, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				e, err := da.NewEdge(fmt.Sprintf("%d_%d", r, c), fmt.Sprintf("%d_%d", r, c+1), weight)
				if err != nil {
					return nil, err
				}
				edges = append(edges, e)
			}
			if r+1 < rows {
				e, err := da.NewEdge(fmt.Sprintf("%d_%d", r, c), fmt.Sprintf("%d_%d", r+1, c), weight)
				if err != nil {
					return nil, err
				}
				edges = append(edges, e)
			}
		}
	}

	return da.NewGraph(vertices, edges, false)
}

// Ring builds an undirected cycle v0-v1-...-v(n-1)-v0 with uniform weight.
func Ring(n int, weight float64) (*da.Graph, error) {
	if n <= 2 {
		return nil, fmt.Errorf("%w: ring needs at least 3 vertices, got %d", ErrInvalidDimension, n)
	}

	vertices := plainVertices(n)
	edges := make([]da.Edge, 0, n)
	for i := 0; i < n; i++ {
		e, err := da.NewEdge(vertexId(i), vertexId((i+1)%n), weight)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return da.NewGraph(vertices, edges, false)
}

// Complete builds the undirected complete graph K_n with uniform weight.
func Complete(n int, weight float64) (*da.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}

	vertices := plainVertices(n)
	edges := make([]da.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e, err := da.NewEdge(vertexId(i), vertexId(j), weight)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
		}
	}
	return da.NewGraph(vertices, edges, false)
}

// Star builds an undirected star: hub v0 connected to n-1 spokes.
func Star(n int, weight float64) (*da.Graph, error) {
	if n <= 1 {
		return nil, fmt.Errorf("%w: star needs at least 2 vertices, got %d", ErrInvalidDimension, n)
	}

	vertices := plainVertices(n)
	edges := make([]da.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		e, err := da.NewEdge(vertexId(0), vertexId(i), weight)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return da.NewGraph(vertices, edges, false)
}

// Random builds a graph with n vertices and m random edges, weights uniform
// in (0, maxWeight]. The same seed always yields the same graph, so
// property tests on it are reproducible.
func Random(n, m int, maxWeight float64, directed bool, seed int64) (*da.Graph, error) {
	if n <= 1 || m < 0 {
		return nil, fmt.Errorf("%w: n=%d m=%d", ErrInvalidDimension, n, m)
	}

	rng := rand.New(rand.NewSource(uint64(seed)))

	vertices := plainVertices(n)
	edges := make([]da.Edge, 0, m)
	for len(edges) < m {
		from := rng.Intn(n)
		to := rng.Intn(n)
		if from == to {
			continue
		}
		weight := (1 - rng.Float64()) * maxWeight // uniform in (0, maxWeight]
		e, err := da.NewEdge(vertexId(from), vertexId(to), weight)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return da.NewGraph(vertices, edges, directed)
}

func plainVertices(n int) []da.Vertex {
	vertices := make([]da.Vertex, n)
	for i := 0; i < n; i++ {
		vertices[i] = da.NewVertex(vertexId(i), "")
	}
	return vertices
}

func vertexId(i int) string {
	return fmt.Sprintf("v%d", i)
}
