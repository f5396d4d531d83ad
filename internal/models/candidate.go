// internal/models/candidate.go
package models

// Candidate is a job seeker profile scored against jobs. Every field other
// than the identifier is optional; missing signals get documented neutral
// treatment in the scoring layer, never an error.
type Candidate struct {
	Email         string     `json:"email"`
	Name          string     `json:"name,omitempty"`
	Skills        SkillList  `json:"skills,omitempty"`
	ExpectedWage  *FlexFloat `json:"expectedWage,omitempty"`
	Location      string     `json:"location,omitempty"`
	Pin           *GeoPoint  `json:"pin,omitempty"`
	AvailableDate *FlexDate  `json:"availableDate,omitempty"`
}
