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

// ContactHandler serves the public contact form endpoint and the admin
// message views.
type ContactHandler struct {
	messages  *store.MessageStore
	validator *validate.Validator
}

func NewContactHandler(messages *store.MessageStore, v *validate.Validator) *ContactHandler {
	return &ContactHandler{messages: messages, validator: v}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=20,max=5000"`
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	msg, err := h.messages.Create(&models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		storeError(w, err)
		return
	}
	writeCreated(w, msg.ID)
}

// Delete handles DELETE /api/admin/messages/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.messages.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
