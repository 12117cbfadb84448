// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package token issues and verifies the signed admin session token.
// The token is a JWT (HS256) carried in an http-only, SameSite-Strict
// cookie with an 8-hour lifetime.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "atelier_admin"

	// Lifetime is how long an issued token remains valid.
	Lifetime = 8 * time.Hour
)

// ErrInvalid covers every verification failure: bad signature, expired,
// malformed, or missing claims. Callers treat all of them identically.
var ErrInvalid = errors.New("token: invalid")

// Claims is the payload embedded in the session token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Signer issues and verifies session tokens with a shared HMAC secret.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer from the configured signing secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Issue signs a new token for the given user identity.
func (s *Signer) Issue(userID uuid.UUID, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
// Any failure (signature, expiry, algorithm substitution) yields ErrInvalid.
func (s *Signer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

// SetCookie writes the session cookie on the response. The cookie is
// http-only and SameSite-Strict; Secure is enabled outside development.
func SetCookie(w http.ResponseWriter, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(Lifetime.Seconds()),
	})
}

// ClearCookie overwrites the session cookie with an empty, already-expired
// value. Used for logout and for tampered or expired tokens.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// FromRequest extracts the raw token string from the request cookie.
// Returns "" when the cookie is absent.
func FromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
