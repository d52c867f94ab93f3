package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents the lifecycle state of a scheme application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// IsValid reports whether the status is a known value
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed. The only legal
// transitions are Pending -> Approved and Pending -> Rejected; terminal
// states never change and nothing returns to Pending.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return s == ApplicationPending &&
		(next == ApplicationApproved || next == ApplicationRejected)
}

// SchemeApplication records a user pursuing a scheme. SchemeTitle is a
// denormalized snapshot taken at apply time.
type SchemeApplication struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"userId"`
	SchemeID    uuid.UUID         `json:"schemeId"`
	SchemeTitle string            `json:"schemeTitle"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
}

// ApplyInput represents input for submitting an application
type ApplyInput struct {
	SchemeID    string `json:"schemeId" binding:"required"`
	SchemeTitle string `json:"schemeTitle" binding:"required"`
}

// UpdateApplicationStatusInput represents the administrative status update
type UpdateApplicationStatusInput struct {
	Status string `json:"status" binding:"required"`
}
