// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks a candidate through the hiring pipeline.
// Mutated only by admin staff.
type ApplicationStatus string

const (
	ApplicationStatusNew       ApplicationStatus = "NEW"
	ApplicationStatusInReview  ApplicationStatus = "IN_REVIEW"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusOffer     ApplicationStatus = "OFFER"
	ApplicationStatusHired     ApplicationStatus = "HIRED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// ValidApplicationStatus reports whether s is a known pipeline status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusInReview, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a candidate submission tied to exactly one job listing.
// JobID is not enforced with a foreign key; admin views degrade gracefully
// when the referenced listing has been deleted.
type Application struct {
	ID        uuid.UUID         `json:"id"`
	JobID     uuid.UUID         `json:"job_id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	CVURL     string            `json:"cv_url"`
	Message   *string           `json:"message,omitempty"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`

	// JobTitle is filled by list queries that join the parent listing.
	// Empty when the listing no longer exists.
	JobTitle LocalizedText `json:"job_title,omitempty"`
}
