// internal/matching/geo_test.go
package matching

import (
	"testing"

	"parttime-match/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_KnownDistance(t *testing.T) {
	bangkok := &models.GeoPoint{Lat: 13.7563, Lng: 100.5018}
	chiangMai := &models.GeoPoint{Lat: 18.7883, Lng: 98.9853}

	dist, ok := DistanceKm(bangkok, chiangMai)
	assert.True(t, ok)
	assert.InDelta(t, 582.5, dist, 2.0)
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b *models.GeoPoint
	}{
		{"city blocks", &models.GeoPoint{Lat: 13.75, Lng: 100.50}, &models.GeoPoint{Lat: 13.76, Lng: 100.49}},
		{"hemispheres", &models.GeoPoint{Lat: -33.87, Lng: 151.21}, &models.GeoPoint{Lat: 51.51, Lng: -0.13}},
		{"equator", &models.GeoPoint{Lat: 0, Lng: 0}, &models.GeoPoint{Lat: 0, Lng: 90}},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			ab, okAB := DistanceKm(tc.a, tc.b)
			ba, okBA := DistanceKm(tc.b, tc.a)
			assert.True(t, okAB)
			assert.True(t, okBA)
			assert.Equal(t, ab, ba)
		})
	}
}

func TestDistanceKm_SamePoint(t *testing.T) {
	p := &models.GeoPoint{Lat: 13.7563, Lng: 100.5018}
	dist, ok := DistanceKm(p, p)
	assert.True(t, ok)
	assert.Equal(t, 0.0, dist)
}

func TestDistanceKm_UnknownCoordinates(t *testing.T) {
	valid := &models.GeoPoint{Lat: 13.75, Lng: 100.50}

	tests := []struct {
		name string
		a, b *models.GeoPoint
	}{
		{"nil first", nil, valid},
		{"nil second", valid, nil},
		{"both nil", nil, nil},
		{"latitude out of range", &models.GeoPoint{Lat: 91, Lng: 0}, valid},
		{"longitude out of range", valid, &models.GeoPoint{Lat: 0, Lng: -181}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := DistanceKm(tc.a, tc.b)
			assert.False(t, ok, "malformed coordinates must report unknown distance, not zero")
		})
	}
}
