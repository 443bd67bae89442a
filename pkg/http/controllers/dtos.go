package controllers

type shortestPathRequest struct {
	Source    string `validate:"required"`
	Target    string `validate:"required"`
	Algorithm string `validate:"required,oneof=dijkstra bfs astar a* bidirectional bidirectional-dijkstra"`
}

type shortestPathNearbyRequest struct {
	OriginLat      float64 `validate:"required,gte=-90,lte=90"`
	OriginLon      float64 `validate:"required,gte=-180,lte=180"`
	DestinationLat float64 `validate:"required,gte=-90,lte=90"`
	DestinationLon float64 `validate:"required,gte=-180,lte=180"`
}

type shortestPathResponse struct {
	Path          []string `json:"path"`
	TotalDistance float64  `json:"total_distance"`
	Hops          int      `json:"hops"`
}

type shortestPathNearbyResponse struct {
	Path          []string `json:"path"`
	TotalDistance float64  `json:"total_distance"`
	Hops          int      `json:"hops"`
	Polyline      string   `json:"polyline"`
}
