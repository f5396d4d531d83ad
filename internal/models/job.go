// internal/models/job.go
package models

import "time"

// GeoPoint is a WGS84 coordinate attached to a record by the geocoding
// provider. The engine only ever consumes these numbers; it never resolves
// location labels itself.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate is usable for distance math.
func (g *GeoPoint) Valid() bool {
	if g == nil {
		return false
	}
	if g.Lat < -90 || g.Lat > 90 || g.Lng < -180 || g.Lng > 180 {
		return false
	}
	// NaN fails every comparison, catch it explicitly
	return g.Lat == g.Lat && g.Lng == g.Lng
}

// Job is a posted work opportunity. Records are treated as immutable for
// the duration of a matching pass.
type Job struct {
	ID          string     `json:"jobId"`
	ShopID      string     `json:"shopId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	HourlyWage  FlexFloat  `json:"wage"`
	Location    string     `json:"location,omitempty"`
	Pin         *GeoPoint  `json:"pin,omitempty"`
	Skills      SkillList  `json:"skills,omitempty"`
	StartDate   *FlexDate  `json:"startDate,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}
