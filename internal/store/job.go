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

// JobStore handles job listing database operations.
type JobStore struct {
	db *sql.DB
}

// NewJobStore creates a new JobStore with the given database connection.
func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

const jobColumns = `id, title, description, requirements, department, location, job_type, salary_range, status, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*models.JobListing, error) {
	j := &models.JobListing{}
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Department,
		&j.Location, &j.JobType, &j.SalaryRange, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// List returns all job listings, newest first.
func (s *JobStore) List() ([]models.JobListing, error) {
	return s.list(`SELECT ` + jobColumns + ` FROM job_listings ORDER BY created_at DESC`)
}

// ListPublished returns only listings visible on the public job board.
func (s *JobStore) ListPublished() ([]models.JobListing, error) {
	return s.list(`SELECT ` + jobColumns + ` FROM job_listings WHERE status = 'PUBLISHED' ORDER BY created_at DESC`)
}

func (s *JobStore) list(query string) ([]models.JobListing, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.JobListing
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// FindByID retrieves a job listing by its UUID. Returns nil if not found.
func (s *JobStore) FindByID(id uuid.UUID) (*models.JobListing, error) {
	j, err := scanJob(s.db.QueryRow(`SELECT `+jobColumns+` FROM job_listings WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job: %w", err)
	}
	return j, nil
}

// Create inserts a new job listing and returns it with generated fields.
func (s *JobStore) Create(j *models.JobListing) (*models.JobListing, error) {
	err := s.db.QueryRow(`
		INSERT INTO job_listings (title, description, requirements, department, location, job_type, salary_range, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, j.Title, j.Description, j.Requirements, j.Department, j.Location,
		j.JobType, j.SalaryRange, j.Status,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return j, nil
}

// Update rewrites a listing's fields. Returns ErrNotFound when no row matched.
func (s *JobStore) Update(j *models.JobListing) error {
	res, err := s.db.Exec(`
		UPDATE job_listings
		SET title = $1, description = $2, requirements = $3, department = $4,
		    location = $5, job_type = $6, salary_range = $7, status = $8, updated_at = NOW()
		WHERE id = $9
	`, j.Title, j.Description, j.Requirements, j.Department, j.Location,
		j.JobType, j.SalaryRange, j.Status, j.ID)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus changes only the lifecycle status of a listing.
func (s *JobStore) UpdateStatus(id uuid.UUID, status models.JobStatus) error {
	res, err := s.db.Exec(`
		UPDATE job_listings SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a listing by id. Its applications are kept (no foreign
// key); the admin view tolerates the orphaned job_id.
func (s *JobStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM job_listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
