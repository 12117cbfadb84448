// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"ateliercms/internal/models"
)

// QuoteStore handles quote request database operations.
type QuoteStore struct {
	db *sql.DB
}

// NewQuoteStore creates a new QuoteStore with the given database connection.
func NewQuoteStore(db *sql.DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// List returns all quote requests, newest first.
func (s *QuoteStore) List() ([]models.QuoteRequest, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, company, description, file_url, status, created_at
		FROM quote_requests ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.QuoteRequest
	for rows.Next() {
		var q models.QuoteRequest
		if err := rows.Scan(
			&q.ID, &q.Name, &q.Email, &q.Phone, &q.Company,
			&q.Description, &q.FileURL, &q.Status, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// Create inserts a new quote request with status PENDING.
func (s *QuoteStore) Create(q *models.QuoteRequest) (*models.QuoteRequest, error) {
	q.Status = models.QuoteStatusPending
	err := s.db.QueryRow(`
		INSERT INTO quote_requests (name, email, phone, company, description, file_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, q.Name, q.Email, q.Phone, q.Company, q.Description, q.FileURL, q.Status).
		Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return q, nil
}

// UpdateStatus changes a quote request's follow-up status.
func (s *QuoteStore) UpdateStatus(id uuid.UUID, status models.QuoteStatus) error {
	res, err := s.db.Exec(`UPDATE quote_requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a quote request by id.
func (s *QuoteStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM quote_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
