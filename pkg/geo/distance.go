package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/pathkit/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

// CalculateGreatCircleDistance returns the great-circle distance in km
// between two coordinates, via s2 chord angles.
func CalculateGreatCircleDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	pointOne := s2.LatLngFromDegrees(latOne, longOne)
	pointTwo := s2.LatLngFromDegrees(latTwo, longTwo)
	return pointOne.Distance(pointTwo).Radians() * earthRadiusKM
}

// GetDestinationPoint returns the point reached travelling dist km from
// (lat1, lon1) along the given bearing in degrees.
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {
	dr := dist / earthRadiusKM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return util.RadiansToDegree(lat2), normalizeLongitude(util.RadiansToDegree(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod(long+540, 360) - 180.0
}
