// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus tracks how far a quote request has progressed.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "PENDING"
	QuoteStatusReviewed  QuoteStatus = "REVIEWED"
	QuoteStatusContacted QuoteStatus = "CONTACTED"
	QuoteStatusCompleted QuoteStatus = "COMPLETED"
)

// ValidQuoteStatus reports whether s is a known quote status.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewed, QuoteStatusContacted, QuoteStatusCompleted:
		return true
	}
	return false
}

// QuoteRequest is a prospective client's project inquiry.
type QuoteRequest struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Company     *string     `json:"company,omitempty"`
	Description string      `json:"description"`
	FileURL     *string     `json:"file_url,omitempty"`
	Status      QuoteStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
