// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ateliercms/internal/i18n"
)

// Locale validates the {locale} URL parameter and stores it in the
// request context. An unsupported but path-shaped segment is a 404: the
// site has no pages outside the supported locale set.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := chi.URLParam(r, "locale")
		if !i18n.Supported(loc) {
			http.NotFound(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), LocaleKey, loc),
		))
	})
}

// LocaleFromCtx returns the resolved locale for the request, or the
// default locale when the request is outside a locale-prefixed group.
func LocaleFromCtx(ctx context.Context) string {
	if loc, ok := ctx.Value(LocaleKey).(string); ok && loc != "" {
		return loc
	}
	return i18n.DefaultLocale
}
