// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"ateliercms/internal/models"
	"ateliercms/internal/store"
	"ateliercms/internal/validate"
)

// ApplicationHandler serves the public application endpoint and the
// admin application management API.
type ApplicationHandler struct {
	applications *store.ApplicationStore
	jobs         *store.JobStore
	validator    *validate.Validator
}

func NewApplicationHandler(applications *store.ApplicationStore, jobs *store.JobStore, v *validate.Validator) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, jobs: jobs, validator: v}
}

type applicationRequest struct {
	JobID   string  `json:"job_id" validate:"required,uuid"`
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,min=6,max=30"`
	CVURL   string  `json:"cv_url" validate:"omitempty,url"`
	Message *string `json:"message" validate:"omitempty,max=5000"`
}

// Create handles POST /api/applications. Only published listings accept
// applications.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	jobID := uuid.MustParse(req.JobID)
	job, err := h.jobs.FindByID(jobID)
	if err != nil {
		storeError(w, err)
		return
	}
	if job == nil || !job.IsPublished() {
		writeError(w, http.StatusNotFound, "Job listing not found")
		return
	}

	a, err := h.applications.Create(&models.Application{
		JobID:   jobID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		CVURL:   req.CVURL,
		Message: req.Message,
	})
	if err != nil {
		storeError(w, err)
		return
	}
	writeCreated(w, a.ID)
}

type applicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles PUT /api/admin/applications/{id}/status.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req applicationStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	status := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if err := h.applications.UpdateStatus(id, status); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /api/admin/applications/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.applications.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
