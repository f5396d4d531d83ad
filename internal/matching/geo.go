// internal/matching/geo.go
package matching

import (
	"math"

	"parttime-match/internal/models"
)

// EarthRadiusKm is the spherical Earth radius used for great-circle math.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two coordinates in
// kilometers. ok is false when either coordinate is absent or malformed;
// callers must treat that as "unknown distance", never as zero.
func DistanceKm(a, b *models.GeoPoint) (float64, bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}

	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)
	lat1 := deg2rad(a.Lat)
	lat2 := deg2rad(b.Lat)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h)), true
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}
