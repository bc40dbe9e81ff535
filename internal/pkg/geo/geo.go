// Package geo provides the great-circle distance used for delivery
// estimates. Not intended for navigation-grade accuracy.
package geo

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the distance in kilometers between two coordinates.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
