// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func localeTestRouter(captured *string) http.Handler {
	r := chi.NewRouter()
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(Locale)
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			*captured = LocaleFromCtx(req.Context())
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestLocaleSupported(t *testing.T) {
	for _, loc := range []string{"en", "fr", "ar"} {
		var got string
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/"+loc+"/", nil)
		localeTestRouter(&got).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", loc, rec.Code)
		}
		if got != loc {
			t.Errorf("%s: LocaleFromCtx = %q", loc, got)
		}
	}
}

func TestLocaleUnsupported(t *testing.T) {
	for _, loc := range []string{"de", "es", "xx"} {
		var got string
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/"+loc+"/", nil)
		localeTestRouter(&got).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", loc, rec.Code)
		}
		if got != "" {
			t.Errorf("%s: handler ran for unsupported locale", loc)
		}
	}
}

func TestLocaleFromCtxDefault(t *testing.T) {
	if got := LocaleFromCtx(context.Background()); got != "en" {
		t.Errorf("LocaleFromCtx(empty) = %q, want en", got)
	}
}
