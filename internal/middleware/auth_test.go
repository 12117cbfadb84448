// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"ateliercms/internal/token"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAPINoCookie(t *testing.T) {
	gate := NewAuthGate(token.NewSigner("test-secret"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)

	gate.RequireAPI(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestRequireAPITamperedCookie(t *testing.T) {
	gate := NewAuthGate(token.NewSigner("test-secret"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: "not-a-token"})

	gate.RequireAPI(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAPIValidCookie(t *testing.T) {
	signer := token.NewSigner("test-secret")
	gate := NewAuthGate(signer)

	tok, err := signer.Issue(uuid.New(), "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotClaims *token.Claims
	handler := gate.RequireAPI(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = ClaimsFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: tok})
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotClaims == nil || gotClaims.Email != "admin@example.com" {
		t.Errorf("claims not threaded into context: %+v", gotClaims)
	}
}

func TestRequireAPIWrongRole(t *testing.T) {
	signer := token.NewSigner("test-secret")
	gate := NewAuthGate(signer)

	tok, err := signer.Issue(uuid.New(), "editor@example.com", "editor")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: tok})
	gate.RequireAPI(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequirePageRedirectsWithoutCookie(t *testing.T) {
	gate := NewAuthGate(token.NewSigner("test-secret"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/admin", nil)

	gate.RequirePage(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/en/admin/login" {
		t.Errorf("Location = %q", loc)
	}
	// No cookie was present, none should be cleared.
	if len(rec.Result().Cookies()) != 0 {
		t.Errorf("unexpected Set-Cookie on cookieless redirect")
	}
}

func TestRequirePageClearsBadCookie(t *testing.T) {
	gate := NewAuthGate(token.NewSigner("test-secret"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/admin", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: "expired-or-tampered"})

	gate.RequirePage(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != token.CookieName || cookies[0].MaxAge >= 0 {
		t.Errorf("bad cookie was not cleared: %+v", cookies)
	}
}
