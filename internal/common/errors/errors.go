// Package errors provides standardized error handling for the matching engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeJobNotFound       ErrorCode = "JOB_NOT_FOUND"
	ErrCodeCandidateNotFound ErrorCode = "CANDIDATE_NOT_FOUND"

	ErrCodeDuplicateContact ErrorCode = "DUPLICATE_CONTACT"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewJobNotFoundError signals an unresolvable anchor job. Not retryable;
// the caller decides whether to surface or redirect.
func NewJobNotFoundError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobNotFound,
		Message:   "Job not found in record store",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCandidateNotFoundError signals an unresolvable anchor candidate.
func NewCandidateNotFoundError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCandidateNotFound,
		Message:   "Candidate not found in record store",
		Details:   fmt.Sprintf("candidate: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateContactError signals an already-active invite or application
// for the pair.
func NewDuplicateContactError(jobID, candidateEmail string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateContact,
		Message:   "An active record already exists for this pair",
		Details:   fmt.Sprintf("jobId: %s, candidate: %s", jobID, candidateEmail),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable insert error.
func NewDatabaseInsertFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert error",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code == ErrCodeJobNotFound || se.Code == ErrCodeCandidateNotFound
	}
	return false
}

// IsDuplicateContact reports whether err is a duplicate-contact rejection.
func IsDuplicateContact(err error) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code == ErrCodeDuplicateContact
	}
	return false
}
