// internal/models/application.go
package models

import "time"

// ApplicationKind distinguishes a seeker-initiated application from a
// shop-initiated invite. The duplicate guard is kind-specific.
type ApplicationKind string

const (
	KindApplication ApplicationKind = "application"
	KindInvite      ApplicationKind = "invite"
)

// ApplicationStatus follows the lifecycle observed in the marketplace:
// a record starts as pending (application) or invited (invite) and moves
// to approved, rejected or cancelled.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusInvited   ApplicationStatus = "invited"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
	StatusCancelled ApplicationStatus = "cancelled"
)

// Application links a job to a candidate. The matching engine reads these
// records only to suppress duplicate contacts; it never mutates them.
type Application struct {
	ID             string            `json:"appId"`
	JobID          string            `json:"jobId"`
	CandidateEmail string            `json:"candidateEmail"`
	ShopID         string            `json:"shopId,omitempty"`
	Kind           ApplicationKind   `json:"kind"`
	Status         ApplicationStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Active reports whether the record still blocks a repeat contact.
// Everything short of an explicit cancellation counts.
func (a *Application) Active() bool {
	return a != nil && a.Status != StatusCancelled
}
