// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a job listing.
// Only PUBLISHED listings appear on the public job board.
type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"
	JobStatusPublished JobStatus = "PUBLISHED"
	JobStatusArchived  JobStatus = "ARCHIVED"
)

// ValidJobStatus reports whether s is a known job lifecycle status.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusDraft, JobStatusPublished, JobStatusArchived:
		return true
	}
	return false
}

// JobListing is a recruitment vacancy. Title, description, and requirements
// are localized.
type JobListing struct {
	ID           uuid.UUID     `json:"id"`
	Title        LocalizedText `json:"title"`
	Description  LocalizedText `json:"description"`
	Requirements LocalizedText `json:"requirements"`
	Department   string        `json:"department"`
	Location     string        `json:"location"`
	JobType      string        `json:"job_type"`
	SalaryRange  string        `json:"salary_range"`
	Status       JobStatus     `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsPublished returns true if the listing is visible on the public board.
func (j *JobListing) IsPublished() bool {
	return j.Status == JobStatusPublished
}
