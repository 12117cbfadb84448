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

// QuoteHandler serves the public quote request endpoint and the admin
// quote management API.
type QuoteHandler struct {
	quotes    *store.QuoteStore
	validator *validate.Validator
}

func NewQuoteHandler(quotes *store.QuoteStore, v *validate.Validator) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, validator: v}
}

type quoteRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,min=6,max=30"`
	Company     *string `json:"company" validate:"omitempty,max=200"`
	Description string  `json:"description" validate:"required,min=20,max=5000"`
	FileURL     *string `json:"file_url" validate:"omitempty,url"`
}

// Create handles POST /api/quotes. New requests always start PENDING.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	q, err := h.quotes.Create(&models.QuoteRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Description: req.Description,
		FileURL:     req.FileURL,
	})
	if err != nil {
		storeError(w, err)
		return
	}
	writeCreated(w, q.ID)
}

type quoteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles PUT /api/admin/quotes/{id}/status.
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req quoteStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	status := models.QuoteStatus(req.Status)
	if !models.ValidQuoteStatus(status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if err := h.quotes.UpdateStatus(id, status); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /api/admin/quotes/{id}.
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.quotes.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
