// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ateliercms/internal/store"
	"ateliercms/internal/validate"
)

func newApplicationHandler() *ApplicationHandler {
	return NewApplicationHandler(store.NewApplicationStore(nil), store.NewJobStore(nil), validate.New())
}

func TestApplicationCreateRejectsBadJobID(t *testing.T) {
	h := newApplicationHandler()

	body := `{
		"job_id": "not-a-uuid",
		"name": "Jordan Smith",
		"email": "jordan@example.com",
		"phone": "+212600000000"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(body))
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp.Fields["job_id"]; !ok {
		t.Errorf("missing field error for job_id: %v", resp.Fields)
	}
}

func TestApplicationStatusRejectsUnknownStatus(t *testing.T) {
	h := newApplicationHandler()

	rec := httptest.NewRecorder()
	req := newRequestWithID(http.MethodPut, "/api/admin/applications/{id}/status", `{"status":"MAYBE"}`)
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestApplicationDeleteRejectsBadID(t *testing.T) {
	h := newApplicationHandler()

	rec := httptest.NewRecorder()
	req := newRequestWithRawID(http.MethodDelete, "/api/admin/applications/{id}", "nope", "")
	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
