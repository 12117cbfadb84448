// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"ateliercms/internal/models"
	"ateliercms/internal/token"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// ClaimsKey is the context key for the verified token claims.
	ClaimsKey contextKey = "claims"

	// LocaleKey is the context key for the resolved locale code.
	LocaleKey contextKey = "locale"
)

// AuthGate validates the signed session cookie on admin routes. The two
// route classes fail differently: API requests get a 401 JSON error, page
// requests are redirected to the locale-prefixed login page (clearing any
// cookie that failed verification first).
type AuthGate struct {
	signer *token.Signer
}

// NewAuthGate creates the gate around the given token signer.
func NewAuthGate(signer *token.Signer) *AuthGate {
	return &AuthGate{signer: signer}
}

// verify checks the request's cookie and returns the claims when the
// token is valid and carries the admin role. The bool reports whether a
// cookie was present at all (so pages know to clear a bad one).
func (g *AuthGate) verify(r *http.Request) (*token.Claims, bool) {
	raw := token.FromRequest(r)
	if raw == "" {
		return nil, false
	}

	claims, err := g.signer.Verify(raw)
	if err != nil || claims.Role != string(models.RoleAdmin) {
		// Tampered, expired, or wrong role — treat identically to absent.
		return nil, true
	}
	return claims, true
}

// RequireAPI guards /api/admin endpoints. Unauthenticated or unauthorized
// requests receive a structured 401 and never reach the handler.
func (g *AuthGate) RequireAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := g.verify(r)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), ClaimsKey, claims),
		))
	})
}

// RequirePage guards admin pages (except login). Unauthenticated requests
// are redirected to the login page under the active locale; a cookie that
// failed verification is cleared before redirecting.
func (g *AuthGate) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, hadCookie := g.verify(r)
		if claims == nil {
			if hadCookie {
				token.ClearCookie(w)
			}
			http.Redirect(w, r, "/"+LocaleFromCtx(r.Context())+"/admin/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), ClaimsKey, claims),
		))
	})
}

// ClaimsFromCtx extracts the verified token claims from the request
// context. Returns nil if the request did not pass the auth gate.
func ClaimsFromCtx(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*token.Claims)
	return claims
}
