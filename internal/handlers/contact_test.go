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

func TestContactCreateRejectsInvalidFields(t *testing.T) {
	h := NewContactHandler(store.NewMessageStore(nil), validate.New())

	body := `{"name":"Jo","email":"bad","subject":"Hi","message":"short"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := resp.Fields[field]; !ok {
			t.Errorf("missing field error for %q: %v", field, resp.Fields)
		}
	}
}

func TestContactCreateRejectsInvalidJSON(t *testing.T) {
	h := NewContactHandler(store.NewMessageStore(nil), validate.New())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
