package datastructure

import (
	"errors"
	"fmt"
	"math"
)

// Index is a dense vertex handle assigned once at graph construction. All
// per-search state (distance labels, parents, settled flags) is indexed by it
// instead of by the external string id.
type Index uint32

const INVALID_VERTEX_ID Index = math.MaxUint32

var (
	ErrNegativeWeight  = errors.New("datastructure: edge weight must be non-negative")
	ErrDuplicateVertex = errors.New("datastructure: duplicate vertex id")
)

// Vertex is an external string identifier plus an optional display label and
// optional coordinates. Identity is by id; the label is cosmetic only.
type Vertex struct {
	id     string
	label  string
	lat    float64
	lon    float64
	handle Index
}

func NewVertex(id, label string) Vertex {
	return Vertex{
		id:    id,
		label: label,
		lat:   math.NaN(),
		lon:   math.NaN(),
	}
}

func NewVertexWithCoordinates(id, label string, lat, lon float64) Vertex {
	return Vertex{
		id:    id,
		label: label,
		lat:   lat,
		lon:   lon,
	}
}

func (v *Vertex) GetId() string {
	return v.id
}

func (v *Vertex) GetLabel() string {
	return v.label
}

func (v *Vertex) GetHandle() Index {
	return v.handle
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) HasCoordinates() bool {
	return !math.IsNaN(v.lat) && !math.IsNaN(v.lon)
}

// Edge is a construction-input record: an ordered (from, to) pair plus a
// non-negative weight. NewEdge is the only way to obtain one, so a negative
// weight can never reach a search.
type Edge struct {
	from   string
	to     string
	weight float64
}

func NewEdge(from, to string, weight float64) (Edge, error) {
	// NaN compares false against everything, so it needs its own check or it
	// would slip through and poison every distance label downstream
	if weight < 0 || math.IsNaN(weight) {
		return Edge{}, fmt.Errorf("%w: %s->%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	return Edge{from: from, to: to, weight: weight}, nil
}

func (e Edge) GetFrom() string {
	return e.from
}

func (e Edge) GetTo() string {
	return e.to
}

func (e Edge) GetWeight() float64 {
	return e.weight
}

// OutEdge is one forward adjacency entry: the head vertex reached and the
// weight of the arc.
type OutEdge struct {
	head   Index
	weight float64
}

func NewOutEdge(head Index, weight float64) OutEdge {
	return OutEdge{head: head, weight: weight}
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

// InEdge is one reverse adjacency entry: the tail vertex the arc comes from
// and its weight.
type InEdge struct {
	tail   Index
	weight float64
}

func NewInEdge(tail Index, weight float64) InEdge {
	return InEdge{tail: tail, weight: weight}
}

func (e *InEdge) GetTail() Index {
	return e.tail
}

func (e *InEdge) GetWeight() float64 {
	return e.weight
}

// Graph is an immutable vertex/edge collection with CSR adjacency in both
// directions. The reverse index (firstIn/inEdges) is always materialized: the
// backward half of bidirectional search traverses it, and reusing the forward
// adjacency there is only correct on undirected graphs.
//
// A Graph is read-only after NewGraph returns and may be shared by any number
// of concurrent searches without locking.
type Graph struct {
	vertices []Vertex
	handles  map[string]Index

	firstOut []Index
	outEdges []OutEdge
	firstIn  []Index
	inEdges  []InEdge

	directed bool
	numEdges int
}

// NewGraph builds the adjacency index once, in O(V+E). For undirected graphs
// every supplied edge is inserted in both orientations. Edges referencing a
// vertex absent from the vertex set are excluded from the index: such a vertex
// is non-existent as far as every search is concerned, so an arc touching it
// could never be traversed anyway.
func NewGraph(vertices []Vertex, edges []Edge, directed bool) (*Graph, error) {
	n := len(vertices)

	g := &Graph{
		vertices: make([]Vertex, n),
		handles:  make(map[string]Index, n),
		directed: directed,
	}

	for i, v := range vertices {
		if _, ok := g.handles[v.id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, v.id)
		}
		v.handle = Index(i)
		g.vertices[i] = v
		g.handles[v.id] = Index(i)
	}

	type arc struct {
		tail, head Index
		weight     float64
	}

	arcs := make([]arc, 0, len(edges)*2)
	for _, e := range edges {
		from, okFrom := g.handles[e.from]
		to, okTo := g.handles[e.to]
		if !okFrom || !okTo {
			continue // dangling endpoint, see doc comment
		}

		arcs = append(arcs, arc{tail: from, head: to, weight: e.weight})
		if !directed {
			arcs = append(arcs, arc{tail: to, head: from, weight: e.weight})
		}
		g.numEdges++
	}

	// counting sort into CSR, forward and reverse in one pass each
	g.firstOut = make([]Index, n+1)
	g.firstIn = make([]Index, n+1)
	for _, a := range arcs {
		g.firstOut[a.tail+1]++
		g.firstIn[a.head+1]++
	}
	for i := 1; i <= n; i++ {
		g.firstOut[i] += g.firstOut[i-1]
		g.firstIn[i] += g.firstIn[i-1]
	}

	g.outEdges = make([]OutEdge, len(arcs))
	g.inEdges = make([]InEdge, len(arcs))
	outPos := make([]Index, n)
	inPos := make([]Index, n)
	for _, a := range arcs {
		g.outEdges[g.firstOut[a.tail]+outPos[a.tail]] = NewOutEdge(a.head, a.weight)
		outPos[a.tail]++
		g.inEdges[g.firstIn[a.head]+inPos[a.head]] = NewInEdge(a.tail, a.weight)
		inPos[a.head]++
	}

	return g, nil
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

// NumberOfEdges counts supplied edge records that made it into the index, not
// stored arcs (an undirected edge is one edge, two arcs).
func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

func (g *Graph) IsDirected() bool {
	return g.directed
}

func (g *Graph) ContainsVertex(id string) bool {
	_, ok := g.handles[id]
	return ok
}

func (g *Graph) GetVertexHandle(id string) (Index, bool) {
	h, ok := g.handles[id]
	return h, ok
}

func (g *Graph) GetVertex(v Index) *Vertex {
	return &g.vertices[v]
}

func (g *Graph) GetVertexId(v Index) string {
	return g.vertices[v].id
}

func (g *Graph) GetVertexCoordinates(v Index) (float64, float64) {
	return g.vertices[v].lat, g.vertices[v].lon
}

func (g *Graph) GetOutDegree(v Index) int {
	return int(g.firstOut[v+1] - g.firstOut[v])
}

func (g *Graph) GetInDegree(v Index) int {
	return int(g.firstIn[v+1] - g.firstIn[v])
}

// ForOutEdgesOf visits the forward adjacency of v.
func (g *Graph) ForOutEdgesOf(v Index, fn func(e *OutEdge)) {
	for i := g.firstOut[v]; i < g.firstOut[v+1]; i++ {
		fn(&g.outEdges[i])
	}
}

// ForInEdgesOf visits the reverse adjacency of v.
func (g *Graph) ForInEdgesOf(v Index, fn func(e *InEdge)) {
	for i := g.firstIn[v]; i < g.firstIn[v+1]; i++ {
		fn(&g.inEdges[i])
	}
}

// ForVertices visits every vertex of the graph.
func (g *Graph) ForVertices(fn func(v *Vertex)) {
	for i := range g.vertices {
		fn(&g.vertices[i])
	}
}

// Neighbors returns the (destination, weight) pairs adjacent to id, or an
// empty slice when id is unknown.
func (g *Graph) Neighbors(id string) []OutEdge {
	v, ok := g.handles[id]
	if !ok {
		return []OutEdge{}
	}
	out := make([]OutEdge, g.firstOut[v+1]-g.firstOut[v])
	copy(out, g.outEdges[g.firstOut[v]:g.firstOut[v+1]])
	return out
}

// EdgeWeight reports the weight of the arc from->to, respecting directedness:
// an undirected graph answers both orderings, a directed graph only the
// declared orientation. When parallel arcs exist the minimum weight wins,
// matching what any shortest-path search would use.
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	u, okFrom := g.handles[from]
	v, okTo := g.handles[to]
	if !okFrom || !okTo {
		return 0, false
	}

	best := math.Inf(1)
	found := false
	g.ForOutEdgesOf(u, func(e *OutEdge) {
		if e.head == v && e.weight < best {
			best = e.weight
			found = true
		}
	})
	if !found {
		return 0, false
	}
	return best, true
}
