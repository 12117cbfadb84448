// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"ateliercms/internal/models"
	"ateliercms/internal/store"
	"ateliercms/internal/validate"
)

// JobHandler serves the admin job listing API.
type JobHandler struct {
	jobs      *store.JobStore
	validator *validate.Validator
}

func NewJobHandler(jobs *store.JobStore, v *validate.Validator) *JobHandler {
	return &JobHandler{jobs: jobs, validator: v}
}

type jobRequest struct {
	Title        models.LocalizedText `json:"title"`
	Description  models.LocalizedText `json:"description"`
	Requirements models.LocalizedText `json:"requirements"`
	Department   string               `json:"department" validate:"required,max=100"`
	Location     string               `json:"location" validate:"required,max=100"`
	JobType      string               `json:"job_type" validate:"required,max=50"`
	SalaryRange  string               `json:"salary_range" validate:"max=100"`
}

// checkLocalized rejects payloads whose localized fields miss the
// default locale entry.
func (req *jobRequest) checkLocalized(w http.ResponseWriter) bool {
	fields := map[string]string{}
	if !req.Title.HasDefault() {
		fields["title"] = "must include an \"en\" value"
	}
	if !req.Description.HasDefault() {
		fields["description"] = "must include an \"en\" value"
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Validation failed",
			"fields": fields,
		})
		return false
	}
	return true
}

// List handles GET /api/admin/jobs. Returns all listings regardless of
// status.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List()
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// Create handles POST /api/admin/jobs. New listings start as drafts.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	if !req.checkLocalized(w) {
		return
	}

	job, err := h.jobs.Create(&models.JobListing{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Department:   req.Department,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryRange:  req.SalaryRange,
		Status:       models.JobStatusDraft,
	})
	if err != nil {
		storeError(w, err)
		return
	}
	writeCreated(w, job.ID)
}

// Update handles PUT /api/admin/jobs/{id}. The listing status is not
// touched here; it changes only through UpdateStatus.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req jobRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	if !req.checkLocalized(w) {
		return
	}

	job, err := h.jobs.FindByID(id)
	if err != nil {
		storeError(w, err)
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Department = req.Department
	job.Location = req.Location
	job.JobType = req.JobType
	job.SalaryRange = req.SalaryRange

	if err := h.jobs.Update(job); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type jobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles PUT /api/admin/jobs/{id}/status.
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req jobStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	status := models.JobStatus(req.Status)
	if !models.ValidJobStatus(status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if err := h.jobs.UpdateStatus(id, status); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /api/admin/jobs/{id}. Applications referencing
// the listing are kept.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.jobs.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
