package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// RouteGeohashPrecision gives cells of a few meters
const RouteGeohashPrecision uint = 9

// GeoPoint is a latitude/longitude pair in degrees
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodePoint returns the geohash of a point at the given precision
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// CalculateDistance is the haversine distance in kilometers
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// AnnotateRoute fills the geohash of every point in place and returns the
// route length in kilometers
func AnnotateRoute(points []models.Coordinate, precision uint) float64 {
	var total float64
	for i := range points {
		p := GeoPoint{Latitude: points[i].Latitude, Longitude: points[i].Longitude}
		points[i].Geohash = EncodePoint(p, precision)
		if i > 0 {
			prev := GeoPoint{Latitude: points[i-1].Latitude, Longitude: points[i-1].Longitude}
			total += CalculateDistance(prev, p)
		}
	}
	return total
}
