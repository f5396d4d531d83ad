// internal/service/matcher.go

// Package service orchestrates the record store and the matching engine.
// A ranking pass reads one snapshot of the pools, runs the pure scoring
// functions over it and returns ordered matches; nothing here is retried
// or persisted.
package service

import (
	"context"
	"time"

	apperrors "parttime-match/internal/common/errors"
	"parttime-match/internal/common/logger"
	"parttime-match/internal/common/metrics"
	"parttime-match/internal/common/observability"
	"parttime-match/internal/matching"
	"parttime-match/internal/models"
	"parttime-match/internal/store"
)

type Matcher struct {
	store  store.Store
	policy matching.Policy
	logger logger.Logger
	obs    *observability.Observability
}

// NewMatcher builds a matcher over the given store and policy. obs may be
// nil when OTel metrics are not wanted (tests, embeddings).
func NewMatcher(st store.Store, policy matching.Policy, log logger.Logger, obs *observability.Observability) *Matcher {
	return &Matcher{
		store:  st,
		policy: policy,
		logger: log.WithFields(map[string]interface{}{"component": "matcher"}),
		obs:    obs,
	}
}

// MatchesForJob ranks the full candidate pool against one job. A missing
// anchor job surfaces as a not-found error; missing optional fields on
// pool records never fail the pass.
func (m *Matcher) MatchesForJob(ctx context.Context, jobID string) ([]matching.Match, error) {
	start := time.Now()

	job, err := m.store.GetJob(ctx, jobID)
	if err != nil {
		m.recordFailure(ctx, "job", err)
		return nil, err
	}

	candidates, err := m.store.ListCandidates(ctx)
	if err != nil {
		m.recordFailure(ctx, "job", err)
		return nil, err
	}
	apps, err := m.store.ListApplications(ctx)
	if err != nil {
		m.recordFailure(ctx, "job", err)
		return nil, err
	}

	ranked := m.policy.RankCandidates(job, candidates, apps)
	m.recordRun(ctx, "job", len(candidates), len(ranked), time.Since(start))

	m.logger.Info("ranking pass completed", map[string]interface{}{
		"anchor":   "job",
		"jobId":    jobID,
		"pool":     len(candidates),
		"admitted": len(ranked),
	})
	return ranked, nil
}

// MatchesForCandidate is the symmetric pass: one candidate against the
// full job pool.
func (m *Matcher) MatchesForCandidate(ctx context.Context, email string) ([]matching.Match, error) {
	start := time.Now()

	cand, err := m.store.GetCandidate(ctx, email)
	if err != nil {
		m.recordFailure(ctx, "candidate", err)
		return nil, err
	}

	jobs, err := m.store.ListJobs(ctx)
	if err != nil {
		m.recordFailure(ctx, "candidate", err)
		return nil, err
	}
	apps, err := m.store.ListApplications(ctx)
	if err != nil {
		m.recordFailure(ctx, "candidate", err)
		return nil, err
	}

	ranked := m.policy.RankJobs(cand, jobs, apps)
	m.recordRun(ctx, "candidate", len(jobs), len(ranked), time.Since(start))

	m.logger.Info("ranking pass completed", map[string]interface{}{
		"anchor":    "candidate",
		"candidate": email,
		"pool":      len(jobs),
		"admitted":  len(ranked),
	})
	return ranked, nil
}

// Invite records a shop-initiated invite for the pair. Both records must
// resolve, and an active invite for the pair blocks a second one.
func (m *Matcher) Invite(ctx context.Context, jobID, candidateEmail string) (*models.Application, error) {
	job, err := m.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := m.store.GetCandidate(ctx, candidateEmail); err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:          jobID,
		CandidateEmail: candidateEmail,
		ShopID:         job.ShopID,
		Kind:           models.KindInvite,
		Status:         models.StatusInvited,
	}
	if err := m.store.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	m.logger.Info("invite recorded", map[string]interface{}{
		"jobId":     jobID,
		"candidate": candidateEmail,
		"appId":     app.ID,
	})
	return app, nil
}

// Apply records a seeker-initiated application for the pair.
func (m *Matcher) Apply(ctx context.Context, jobID, candidateEmail string) (*models.Application, error) {
	job, err := m.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := m.store.GetCandidate(ctx, candidateEmail); err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:          jobID,
		CandidateEmail: candidateEmail,
		ShopID:         job.ShopID,
		Kind:           models.KindApplication,
		Status:         models.StatusPending,
	}
	if err := m.store.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	m.logger.Info("application recorded", map[string]interface{}{
		"jobId":     jobID,
		"candidate": candidateEmail,
		"appId":     app.ID,
	})
	return app, nil
}

func (m *Matcher) recordRun(ctx context.Context, anchor string, scored, admitted int, elapsed time.Duration) {
	metrics.MatchRunsCompleted.WithLabelValues(anchor).Inc()
	metrics.MatchPairsScored.WithLabelValues(anchor).Add(float64(scored))
	metrics.MatchPairsAdmitted.WithLabelValues(anchor).Add(float64(admitted))
	metrics.MatchRunDuration.WithLabelValues(anchor).Observe(elapsed.Seconds())
	if m.obs != nil {
		m.obs.RecordRun(ctx, anchor, "completed")
		m.obs.RecordRunDuration(ctx, elapsed, anchor)
	}
}

func (m *Matcher) recordFailure(ctx context.Context, anchor string, err error) {
	code := "UNKNOWN"
	if se, ok := err.(*apperrors.StandardError); ok {
		code = string(se.Code)
	}
	metrics.MatchRunsFailed.WithLabelValues(anchor, code).Inc()
	if m.obs != nil {
		m.obs.RecordRun(ctx, anchor, "failed")
	}
}
