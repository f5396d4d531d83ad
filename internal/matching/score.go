// internal/matching/score.go
package matching

import (
	"math"

	"parttime-match/internal/models"
)

// Policy holds the tunable scoring weights, proximity bands and admission
// threshold. Weights sum to 100 by default; every sub-score is clamped to
// its own weight before summation and the composite is clamped to [0,100]
// with standard round-half-away-from-zero semantics (math.Round).
type Policy struct {
	WageWeight      int // full credit when job wage covers the expectation
	ProximityWeight int
	SkillsWeight    int
	StartDateWeight int

	PointsPerSkill int // credit per matched skill, capped at SkillsWeight

	// Distance bands in km: inside Near earns the full proximity weight,
	// inside Mid earns MidPoints, inside Far earns FarPoints, beyond zero.
	NearBandKm float64
	MidBandKm  float64
	FarBandKm  float64
	MidPoints  int
	FarPoints  int

	// AdmissionThreshold is the minimum composite score a pair needs to
	// appear in ranked output.
	AdmissionThreshold int
}

// DefaultPolicy mirrors the production weight scheme: wage 30, proximity
// 20 (bands 2/5/10 km at 20/15/5), skills 30 at 10 per match, start date
// 20, threshold 50.
func DefaultPolicy() Policy {
	return Policy{
		WageWeight:         30,
		ProximityWeight:    20,
		SkillsWeight:       30,
		StartDateWeight:    20,
		PointsPerSkill:     10,
		NearBandKm:         2,
		MidBandKm:          5,
		FarBandKm:          10,
		MidPoints:          15,
		FarPoints:          5,
		AdmissionThreshold: 50,
	}
}

// ScoreBreakdown reports the clamped per-signal contributions that made up
// a composite score.
type ScoreBreakdown struct {
	Wage         int `json:"wage"`
	Proximity    int `json:"proximity"`
	Skills       int `json:"skills"`
	Availability int `json:"availability"`
}

// preparedCandidate caches the normalized skill set so a ranking pass
// normalizes each record once, not once per pair.
type preparedCandidate struct {
	c      *models.Candidate
	skills []string
}

type preparedJob struct {
	j     *models.Job
	tags  []string
	wage  float64
	start *models.FlexDate
}

func prepareCandidate(c *models.Candidate) preparedCandidate {
	return preparedCandidate{c: c, skills: NormalizeSkills(c.Skills)}
}

func prepareJob(j *models.Job) preparedJob {
	return preparedJob{
		j:     j,
		tags:  NormalizeSkills(j.Skills),
		wage:  j.HourlyWage.Float64(),
		start: j.StartDate,
	}
}

// Score computes the composite compatibility score for a (job, candidate)
// pair along with its breakdown and the pair distance (ok=false when
// unknown). Pure; neither record is mutated.
func (p Policy) Score(job *models.Job, cand *models.Candidate) (int, ScoreBreakdown, float64, bool) {
	return p.score(prepareJob(job), prepareCandidate(cand))
}

func (p Policy) score(job preparedJob, cand preparedCandidate) (int, ScoreBreakdown, float64, bool) {
	wage := p.wageFit(job, cand.c)
	dist, distKnown := DistanceKm(job.j.Pin, cand.c.Pin)
	proximity := p.proximityFit(dist, distKnown)
	skills := p.skillFit(job, cand)
	availability := p.availabilityFit(job.start, cand.c.AvailableDate)

	total := int(math.Round(wage + proximity + skills + availability))
	total = clamp(total, 0, 100)

	breakdown := ScoreBreakdown{
		Wage:         int(math.Round(wage)),
		Proximity:    int(math.Round(proximity)),
		Skills:       int(math.Round(skills)),
		Availability: int(math.Round(availability)),
	}
	return total, breakdown, dist, distKnown
}

// wageFit grants the full weight when the job wage meets the expectation,
// or when the candidate states none (no expectation is not a mismatch).
// Below the expectation credit decays linearly from half weight, half a
// point per wage unit of shortfall, floored at zero.
func (p Policy) wageFit(job preparedJob, cand *models.Candidate) float64 {
	full := float64(p.WageWeight)
	if cand.ExpectedWage == nil {
		return full
	}
	expected := cand.ExpectedWage.Float64()
	if job.wage >= expected {
		return full
	}
	shortfall := expected - job.wage
	return clampF(full/2-shortfall*0.5, 0, full)
}

// proximityFit applies tiered band credit. Unknown distance earns zero,
// never an error and never full credit.
func (p Policy) proximityFit(dist float64, known bool) float64 {
	if !known {
		return 0
	}
	switch {
	case dist <= p.NearBandKm:
		return float64(p.ProximityWeight)
	case dist <= p.MidBandKm:
		return clampF(float64(p.MidPoints), 0, float64(p.ProximityWeight))
	case dist <= p.FarBandKm:
		return clampF(float64(p.FarPoints), 0, float64(p.ProximityWeight))
	default:
		return 0
	}
}

// skillFit grants PointsPerSkill per matched skill capped at the weight.
// A job with no declared tags and no usable description yields half
// credit: absence of a requirement is not a sign of poor fit.
func (p Policy) skillFit(job preparedJob, cand preparedCandidate) float64 {
	matched, ok := CountSkillMatches(cand.skills, job.tags, job.j.Description)
	if !ok {
		return float64(p.SkillsWeight) / 2
	}
	return clampF(float64(matched*p.PointsPerSkill), 0, float64(p.SkillsWeight))
}

// availabilityFit grants the full weight when the candidate is available
// on or before the desired start, decaying one point per day of delay.
// A missing date on either side omits the signal entirely.
func (p Policy) availabilityFit(start, available *models.FlexDate) float64 {
	if start == nil || available == nil || start.IsZero() || available.IsZero() {
		return 0
	}
	full := float64(p.StartDateWeight)
	if !available.After(start.Time) {
		return full
	}
	daysLate := available.Sub(start.Time).Hours() / 24
	return clampF(full-daysLate, 0, full)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
