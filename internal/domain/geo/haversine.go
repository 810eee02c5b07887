// Package geo provides the great-circle math used to rank engineers by
// proximity. Latitude/longitude are angular coordinates, so planar Euclidean
// distance would distort rankings away from the equator; haversine is the
// correct metric for city-scale and longer spans alike.
package geo

import "math"

// EarthRadiusKM is the fixed mean Earth radius used for all distances.
const EarthRadiusKM = 6371.0

// ValidCoordinate reports whether lat/lon form a valid WGS84 coordinate.
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// HaversineKM returns the great-circle distance in kilometers between two
// (lat, lon) pairs given in degrees.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}
