// internal/store/store.go

// Package store abstracts record access for the matching engine. The
// engine itself holds no state; it is handed immutable snapshots read
// through this interface at the start of each ranking pass. Legacy shape
// normalization (string wages, delimited skill strings, loose dates)
// happens at this boundary, never inside the scoring logic.
package store

import (
	"context"

	"parttime-match/internal/models"
)

// Store provides read access to jobs, candidates and contact records,
// plus creation of new invite/application records.
type Store interface {
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context) ([]*models.Job, error)

	GetCandidate(ctx context.Context, email string) (*models.Candidate, error)
	ListCandidates(ctx context.Context) ([]*models.Candidate, error)

	ListApplications(ctx context.Context) ([]*models.Application, error)
	CreateApplication(ctx context.Context, app *models.Application) error
}
