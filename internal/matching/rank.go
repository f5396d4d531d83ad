// internal/matching/rank.go
package matching

import (
	"sort"

	"parttime-match/internal/models"
)

// Match is one entry of ranked output: the other record's identifier, its
// composite score, the pair distance when known, and whether an active
// contact already exists for the pair.
type Match struct {
	ID               string         `json:"id"`
	Score            int            `json:"score"`
	DistanceKm       *float64       `json:"distanceKm,omitempty"`
	Breakdown        ScoreBreakdown `json:"breakdown"`
	AlreadyContacted bool           `json:"alreadyContacted"`
}

// RankCandidates scores every candidate in the pool against the job,
// drops pairs below the admission threshold and orders the rest by
// descending score. Ties break by ascending distance (unknown last), then
// candidate identifier, so output is reproducible across runs. Input
// slices and records are never mutated.
func (p Policy) RankCandidates(job *models.Job, pool []*models.Candidate, apps []*models.Application) []Match {
	pj := prepareJob(job)
	matches := make([]Match, 0, len(pool))
	for _, cand := range pool {
		if cand == nil {
			continue
		}
		score, breakdown, dist, distKnown := p.score(pj, prepareCandidate(cand))
		if score < p.AdmissionThreshold {
			continue
		}
		m := Match{
			ID:               cand.Email,
			Score:            score,
			Breakdown:        breakdown,
			AlreadyContacted: HasActiveRecord(apps, job.ID, cand.Email, models.KindInvite),
		}
		if distKnown {
			d := dist
			m.DistanceKm = &d
		}
		matches = append(matches, m)
	}
	sortMatches(matches)
	return matches
}

// RankJobs is the symmetric pass: one candidate against a pool of jobs.
// The contacted flag reports an active application by the candidate.
func (p Policy) RankJobs(cand *models.Candidate, pool []*models.Job, apps []*models.Application) []Match {
	pc := prepareCandidate(cand)
	matches := make([]Match, 0, len(pool))
	for _, job := range pool {
		if job == nil {
			continue
		}
		score, breakdown, dist, distKnown := p.score(prepareJob(job), pc)
		if score < p.AdmissionThreshold {
			continue
		}
		m := Match{
			ID:               job.ID,
			Score:            score,
			Breakdown:        breakdown,
			AlreadyContacted: HasActiveRecord(apps, job.ID, cand.Email, models.KindApplication),
		}
		if distKnown {
			d := dist
			m.DistanceKm = &d
		}
		matches = append(matches, m)
	}
	sortMatches(matches)
	return matches
}

func sortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		switch {
		case a.DistanceKm != nil && b.DistanceKm != nil && *a.DistanceKm != *b.DistanceKm:
			return *a.DistanceKm < *b.DistanceKm
		case a.DistanceKm != nil && b.DistanceKm == nil:
			return true
		case a.DistanceKm == nil && b.DistanceKm != nil:
			return false
		}
		return a.ID < b.ID
	})
}

// HasActiveRecord reports whether a non-cancelled record of the given kind
// already links the pair. It only informs the contacted flag on ranked
// output; it never blocks scoring.
func HasActiveRecord(apps []*models.Application, jobID, candidateEmail string, kind models.ApplicationKind) bool {
	for _, app := range apps {
		if app == nil {
			continue
		}
		if app.JobID == jobID && app.CandidateEmail == candidateEmail && app.Kind == kind && app.Active() {
			return true
		}
	}
	return false
}
