// internal/store/memory.go
package store

import (
	"context"
	"sync"
	"time"

	apperrors "parttime-match/internal/common/errors"
	"parttime-match/internal/matching"
	"parttime-match/internal/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store, used in tests and embeddings where
// no database is available.
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         map[string]*models.Job
	candidates   map[string]*models.Candidate
	applications []*models.Application
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:       make(map[string]*models.Job),
		candidates: make(map[string]*models.Candidate),
	}
}

// PutJob adds or replaces a job record.
func (s *MemoryStore) PutJob(job *models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

// PutCandidate adds or replaces a candidate record.
func (s *MemoryStore) PutCandidate(cand *models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[cand.Email] = cand
}

// PutApplication appends a contact record without duplicate checks, for
// seeding known states in tests.
func (s *MemoryStore) PutApplication(app *models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append(s.applications, app)
}

func (s *MemoryStore) GetJob(_ context.Context, id string) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, apperrors.NewJobNotFoundError(id)
	}
	return job, nil
}

func (s *MemoryStore) ListJobs(_ context.Context) ([]*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (s *MemoryStore) GetCandidate(_ context.Context, email string) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cand, ok := s.candidates[email]
	if !ok {
		return nil, apperrors.NewCandidateNotFoundError(email)
	}
	return cand, nil
}

func (s *MemoryStore) ListCandidates(_ context.Context) ([]*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c)
	}
	return out, nil
}

func (s *MemoryStore) ListApplications(_ context.Context) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Application, len(s.applications))
	copy(out, s.applications)
	return out, nil
}

func (s *MemoryStore) CreateApplication(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if matching.HasActiveRecord(s.applications, app.JobID, app.CandidateEmail, app.Kind) {
		return apperrors.NewDuplicateContactError(app.JobID, app.CandidateEmail)
	}

	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	s.applications = append(s.applications, app)
	return nil
}
