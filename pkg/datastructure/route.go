package datastructure

// Route is the result of a successful path search: the ordered vertex ids
// from source to target inclusive, plus the accumulated cost. A route with a
// single vertex and distance 0 is the trivial source==target case.
type Route struct {
	vertexIds     []string
	totalDistance float64
}

func NewRoute(vertexIds []string, totalDistance float64) Route {
	return Route{
		vertexIds:     vertexIds,
		totalDistance: totalDistance,
	}
}

func (r Route) GetVertexIds() []string {
	return r.vertexIds
}

func (r Route) GetTotalDistance() float64 {
	return r.totalDistance
}

// NumberOfHops is the edge count of the route, one less than its vertex count.
func (r Route) NumberOfHops() int {
	if len(r.vertexIds) == 0 {
		return 0
	}
	return len(r.vertexIds) - 1
}
