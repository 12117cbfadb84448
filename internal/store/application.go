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

// ApplicationStore handles candidate application database operations.
type ApplicationStore struct {
	db *sql.DB
}

// NewApplicationStore creates a new ApplicationStore with the given database connection.
func NewApplicationStore(db *sql.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

// List returns all applications, newest first, joined with the parent
// listing's title. The join is LEFT so applications whose listing was
// deleted still appear (with an empty title).
func (s *ApplicationStore) List() ([]models.Application, error) {
	rows, err := s.db.Query(`
		SELECT a.id, a.job_id, a.name, a.email, a.phone, a.cv_url, a.message,
		       a.status, a.created_at, COALESCE(j.title, '{}'::jsonb)
		FROM applications a
		LEFT JOIN job_listings j ON j.id = a.job_id
		ORDER BY a.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.Name, &a.Email, &a.Phone, &a.CVURL,
			&a.Message, &a.Status, &a.CreatedAt, &a.JobTitle,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByJob returns the applications attached to a single listing.
func (s *ApplicationStore) ListByJob(jobID uuid.UUID) ([]models.Application, error) {
	rows, err := s.db.Query(`
		SELECT id, job_id, name, email, phone, cv_url, message, status, created_at
		FROM applications WHERE job_id = $1 ORDER BY created_at DESC
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications by job: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.Name, &a.Email, &a.Phone, &a.CVURL,
			&a.Message, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Create inserts a new application with status NEW.
func (s *ApplicationStore) Create(a *models.Application) (*models.Application, error) {
	a.Status = models.ApplicationStatusNew
	err := s.db.QueryRow(`
		INSERT INTO applications (job_id, name, email, phone, cv_url, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, a.JobID, a.Name, a.Email, a.Phone, a.CVURL, a.Message, a.Status).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return a, nil
}

// UpdateStatus moves an application through the hiring pipeline.
func (s *ApplicationStore) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	res, err := s.db.Exec(`UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an application by id.
func (s *ApplicationStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns how many applications sit in each pipeline stage.
// Used by the admin dashboard.
func (s *ApplicationStore) CountByStatus() (map[models.ApplicationStatus]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ApplicationStatus]int)
	for rows.Next() {
		var st models.ApplicationStatus
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, fmt.Errorf("scan application count: %w", err)
		}
		counts[st] = n
	}
	return counts, rows.Err()
}
