// internal/matching/score_test.go
package matching

import (
	"testing"

	"parttime-match/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func wagePtr(w float64) *models.FlexFloat {
	f := models.FlexFloat(w)
	return &f
}

func createTestJob() *models.Job {
	return &models.Job{
		ID:         "job-001",
		Title:      "Cashier (part-time)",
		HourlyWage: 120,
		Pin:        &models.GeoPoint{Lat: 13.75, Lng: 100.50},
		Skills:     models.SkillList{"cashier", "thai"},
		StartDate:  models.NewDate("2025-02-01"),
	}
}

func createTestCandidate() *models.Candidate {
	return &models.Candidate{
		Email:         "seeker@example.com",
		Skills:        models.SkillList{"cashier, english"},
		ExpectedWage:  wagePtr(100),
		Pin:           &models.GeoPoint{Lat: 13.76, Lng: 100.49},
		AvailableDate: models.NewDate("2025-01-15"),
	}
}

// ==========================
// Composite Scoring Tests
// ==========================

func TestPolicy_Score_WorkedExample(t *testing.T) {
	p := DefaultPolicy()

	score, breakdown, dist, distKnown := p.Score(createTestJob(), createTestCandidate())

	assert.True(t, distKnown)
	assert.InDelta(t, 1.55, dist, 0.05)

	// wage covered -> 30, within 2 km -> 20, one of two skills -> 10,
	// available before start -> 20
	assert.Equal(t, 30, breakdown.Wage)
	assert.Equal(t, 20, breakdown.Proximity)
	assert.Equal(t, 10, breakdown.Skills)
	assert.Equal(t, 20, breakdown.Availability)
	assert.Equal(t, 80, score)
	assert.GreaterOrEqual(t, score, p.AdmissionThreshold)
}

func TestPolicy_Score_EmptyCandidate(t *testing.T) {
	p := DefaultPolicy()
	empty := &models.Candidate{Email: "empty@example.com"}

	score, breakdown, _, distKnown := p.Score(createTestJob(), empty)

	assert.False(t, distKnown)
	// no expectation -> full wage credit; everything else neutral/zero
	assert.Equal(t, 30, breakdown.Wage)
	assert.Equal(t, 0, breakdown.Proximity)
	assert.Equal(t, 0, breakdown.Skills)
	assert.Equal(t, 0, breakdown.Availability)
	assert.Equal(t, 30, score)
	assert.Less(t, score, p.AdmissionThreshold)
}

func TestPolicy_Score_NeutralSkillDefault(t *testing.T) {
	p := DefaultPolicy()
	job := createTestJob()
	job.Skills = nil
	job.Description = ""

	_, breakdown, _, _ := p.Score(job, createTestCandidate())

	// a job declaring nothing to match against grants half credit
	assert.Equal(t, p.SkillsWeight/2, breakdown.Skills)
}

func TestPolicy_Score_Bounds(t *testing.T) {
	p := DefaultPolicy()
	jobs := []*models.Job{
		createTestJob(),
		{ID: "bare"},
		{ID: "rich", HourlyWage: 500, Skills: models.SkillList{"a", "b", "c", "d", "e"},
			Pin: &models.GeoPoint{Lat: 13.75, Lng: 100.50}, StartDate: models.NewDate("2025-06-01")},
	}
	candidates := []*models.Candidate{
		createTestCandidate(),
		{Email: "none@example.com"},
		{Email: "all@example.com", Skills: models.SkillList{"a, b, c, d, e"}, ExpectedWage: wagePtr(1),
			Pin: &models.GeoPoint{Lat: 13.75, Lng: 100.50}, AvailableDate: models.NewDate("2020-01-01")},
		{Email: "far@example.com", ExpectedWage: wagePtr(10000), Pin: &models.GeoPoint{Lat: -80, Lng: 170}},
	}

	for _, job := range jobs {
		for _, cand := range candidates {
			score, _, _, _ := p.Score(job, cand)
			assert.GreaterOrEqual(t, score, 0, "job %s vs %s", job.ID, cand.Email)
			assert.LessOrEqual(t, score, 100, "job %s vs %s", job.ID, cand.Email)
		}
	}
}

// ==========================
// Sub-score Tests
// ==========================

func TestPolicy_WageFit(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name     string
		jobWage  float64
		expected *models.FlexFloat
		want     float64
	}{
		{"no expectation is full credit", 50, nil, 30},
		{"wage meets expectation", 100, wagePtr(100), 30},
		{"wage exceeds expectation", 150, wagePtr(100), 30},
		{"shortfall of 10 decays from half credit", 90, wagePtr(100), 10},
		{"shortfall of 20 decays to floor", 80, wagePtr(100), 5},
		{"deep shortfall floors at zero", 10, wagePtr(100), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			job := prepareJob(&models.Job{HourlyWage: models.FlexFloat(tc.jobWage)})
			cand := &models.Candidate{ExpectedWage: tc.expected}
			assert.Equal(t, tc.want, p.wageFit(job, cand))
		})
	}
}

func TestPolicy_WageFit_Monotonic(t *testing.T) {
	p := DefaultPolicy()
	cand := &models.Candidate{ExpectedWage: wagePtr(100)}

	prev := -1.0
	for wage := 0.0; wage <= 200; wage += 5 {
		fit := p.wageFit(prepareJob(&models.Job{HourlyWage: models.FlexFloat(wage)}), cand)
		assert.GreaterOrEqual(t, fit, prev, "wage sub-score must never decrease as job wage rises (wage=%v)", wage)
		prev = fit
	}
}

func TestPolicy_ProximityFit(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name  string
		dist  float64
		known bool
		want  float64
	}{
		{"inside near band", 1.9, true, 20},
		{"near band boundary", 2.0, true, 20},
		{"mid band", 4.0, true, 15},
		{"far band", 9.9, true, 5},
		{"beyond far band", 10.1, true, 0},
		{"unknown distance", 0, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.proximityFit(tc.dist, tc.known))
		})
	}
}

func TestPolicy_ProximityFit_Monotonic(t *testing.T) {
	p := DefaultPolicy()

	prev := 1000.0
	for dist := 0.0; dist <= 20; dist += 0.25 {
		fit := p.proximityFit(dist, true)
		assert.LessOrEqual(t, fit, prev, "proximity sub-score must never increase with distance (dist=%v)", dist)
		prev = fit
	}
}

func TestPolicy_AvailabilityFit(t *testing.T) {
	p := DefaultPolicy()
	start := models.NewDate("2025-02-01")

	tests := []struct {
		name      string
		start     *models.FlexDate
		available *models.FlexDate
		want      float64
	}{
		{"available before start", start, models.NewDate("2025-01-15"), 20},
		{"available on start", start, models.NewDate("2025-02-01"), 20},
		{"ten days late", start, models.NewDate("2025-02-11"), 10},
		{"a month late floors at zero", start, models.NewDate("2025-03-15"), 0},
		{"missing start omits the signal", nil, models.NewDate("2025-01-15"), 0},
		{"missing availability omits the signal", start, nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.availabilityFit(tc.start, tc.available))
		})
	}
}
