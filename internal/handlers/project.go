// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"ateliercms/internal/cache"
	"ateliercms/internal/models"
	"ateliercms/internal/store"
	"ateliercms/internal/validate"
)

// ProjectHandler serves the admin portfolio API.
type ProjectHandler struct {
	projects  *store.ProjectStore
	pageCache *cache.PageCache
	validator *validate.Validator
}

func NewProjectHandler(projects *store.ProjectStore, pageCache *cache.PageCache, v *validate.Validator) *ProjectHandler {
	return &ProjectHandler{projects: projects, pageCache: pageCache, validator: v}
}

type projectRequest struct {
	Title       models.LocalizedText `json:"title"`
	Description models.LocalizedText `json:"description"`
	Category    string               `json:"category" validate:"required,max=100"`
	ImageURL    string               `json:"image_url" validate:"omitempty,url"`
}

// List handles GET /api/admin/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List()
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	if !req.Title.HasDefault() {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Validation failed",
			"fields": map[string]string{"title": "must include an \"en\" value"},
		})
		return
	}

	p, err := h.projects.Create(&models.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		storeError(w, err)
		return
	}
	h.invalidateHome(r.Context())
	writeCreated(w, p.ID)
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.projects.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	h.invalidateHome(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// invalidateHome drops the cached home page, which previews recent
// portfolio entries.
func (h *ProjectHandler) invalidateHome(ctx context.Context) {
	if h.pageCache != nil {
		h.pageCache.Invalidate(ctx, "home")
	}
}
