package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes a coordinate sequence with the Google encoded
// polyline algorithm, the wire format the HTTP layer returns route geometry
// in.
func PolylineFromCoords(coords []Coordinate) string {
	flat := make([][]float64, len(coords))
	for i, c := range coords {
		flat[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(flat))
}
