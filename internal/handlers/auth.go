// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"ateliercms/internal/middleware"
	"ateliercms/internal/store"
	"ateliercms/internal/token"
	"ateliercms/internal/validate"
)

// AuthHandler serves login, logout and two-factor enrollment.
type AuthHandler struct {
	users     *store.UserStore
	signer    *token.Signer
	validator *validate.Validator
	secure    bool
	issuer    string
}

func NewAuthHandler(users *store.UserStore, signer *token.Signer, v *validate.Validator, secureCookies bool, issuer string) *AuthHandler {
	return &AuthHandler{users: users, signer: signer, validator: v, secure: secureCookies, issuer: issuer}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	TOTPCode string `json:"totp_code"`
}

// Login verifies credentials and sets the admin cookie. The response for
// an unknown email and a wrong password is identical.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		storeError(w, err)
		return
	}
	if user == nil || !h.users.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if user.TOTPEnabled && user.TOTPSecret != nil {
		if req.TOTPCode == "" {
			writeJSON(w, http.StatusOK, map[string]any{"totp_required": true})
			return
		}
		if !totp.Validate(req.TOTPCode, *user.TOTPSecret) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
	}

	tok, err := h.signer.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token.SetCookie(w, tok, h.secure)

	slog.Info("admin login", "user", user.Email)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Logout clears the admin cookie. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// TOTPSetup generates a fresh secret for the authenticated admin and
// returns it with a QR code for authenticator apps. The secret stays
// inactive until confirmed through TOTPEnable.
func (h *AuthHandler) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      h.issuer,
		AccountName: claims.Email,
	})
	if err != nil {
		slog.Error("failed to generate totp key", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.users.SetTOTPSecret(claims.UserID, key.Secret()); err != nil {
		storeError(w, err)
		return
	}

	qr, err := qrcode.New(key.URL(), qrcode.Medium)
	if err != nil {
		slog.Error("failed to build qr code", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		slog.Error("failed to encode qr code", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"secret":  key.Secret(),
		"url":     key.URL(),
		"qr_png":  base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

type totpEnableRequest struct {
	Code string `json:"code" validate:"required,min=6,max=8"`
}

// TOTPEnable confirms the pending secret with a valid code and turns
// two-factor on for the account.
func (h *AuthHandler) TOTPEnable(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req totpEnableRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.users.FindByID(claims.UserID)
	if err != nil {
		storeError(w, err)
		return
	}
	if user == nil || user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "No pending two-factor setup")
		return
	}
	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusBadRequest, "Invalid code")
		return
	}

	if err := h.users.EnableTOTP(user.ID); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
