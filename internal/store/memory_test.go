// internal/store/memory_test.go
package store

import (
	"context"
	"testing"

	apperrors "parttime-match/internal/common/errors"
	"parttime-match/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetJob(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.PutJob(&models.Job{ID: "job-1", Title: "Barista"})

	job, err := s.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Barista", job.Title)

	_, err = s.GetJob(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMemoryStore_GetCandidate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.PutCandidate(&models.Candidate{Email: "x@example.com"})

	cand, err := s.GetCandidate(ctx, "x@example.com")
	require.NoError(t, err)
	assert.Equal(t, "x@example.com", cand.Email)

	_, err = s.GetCandidate(ctx, "missing@example.com")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMemoryStore_CreateApplication_DuplicateLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := &models.Application{
		JobID:          "job-1",
		CandidateEmail: "x@example.com",
		Kind:           models.KindInvite,
		Status:         models.StatusInvited,
	}
	require.NoError(t, s.CreateApplication(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	// Second invite for the same pair and kind is rejected.
	err := s.CreateApplication(ctx, &models.Application{
		JobID:          "job-1",
		CandidateEmail: "x@example.com",
		Kind:           models.KindInvite,
		Status:         models.StatusInvited,
	})
	assert.True(t, apperrors.IsDuplicateContact(err))

	// A different kind for the same pair is fine.
	require.NoError(t, s.CreateApplication(ctx, &models.Application{
		JobID:          "job-1",
		CandidateEmail: "x@example.com",
		Kind:           models.KindApplication,
		Status:         models.StatusPending,
	}))

	// Once the invite is cancelled the pair can be invited again.
	first.Status = models.StatusCancelled
	require.NoError(t, s.CreateApplication(ctx, &models.Application{
		JobID:          "job-1",
		CandidateEmail: "x@example.com",
		Kind:           models.KindInvite,
		Status:         models.StatusInvited,
	}))

	apps, err := s.ListApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}
