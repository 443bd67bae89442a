package spatialindex

import (
	"errors"

	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

var ErrNoCoordinateVertex = errors.New("spatialindex: graph has no coordinate-bearing vertices")

// Rtree indexes the coordinate-bearing vertices of a graph so the HTTP layer
// can snap a free (lat, lon) query to its nearest vertex before searching.
type Rtree struct {
	tr   *rtree.RTreeG[da.Index]
	size int
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[da.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every vertex that carries coordinates, each leaf getting a
// bounding box of radius boundingBoxRadius km. Vertices without coordinates
// are simply not indexed.
func (rt *Rtree) Build(graph *da.Graph, boundingBoxRadius float64, log *zap.Logger) {
	graph.ForVertices(func(v *da.Vertex) {
		if !v.HasCoordinates() {
			return
		}
		lowerLat, lowerLon := geo.GetDestinationPoint(v.GetLat(), v.GetLon(), 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(v.GetLat(), v.GetLon(), 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, v.GetHandle())
		rt.size++
	})

	log.Info("R-tree spatial index built", zap.Int("indexedVertices", rt.size))
}

// NearestVertex returns the indexed vertex nearest to (lat, lon).
func (rt *Rtree) NearestVertex(lat, lon float64) (da.Index, error) {
	if rt.size == 0 {
		return da.INVALID_VERTEX_ID, ErrNoCoordinateVertex
	}

	point := [2]float64{lon, lat}
	nearest := da.INVALID_VERTEX_ID
	rt.tr.Nearby(
		rtree.BoxDist[float64, da.Index](point, point, nil),
		func(min, max [2]float64, data da.Index, dist float64) bool {
			nearest = data
			return false // first hit is the nearest, stop
		},
	)
	return nearest, nil
}
