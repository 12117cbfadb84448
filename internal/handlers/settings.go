// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"ateliercms/internal/cache"
	"ateliercms/internal/models"
	"ateliercms/internal/store"
)

// SettingsHandler serves the admin site settings API.
type SettingsHandler struct {
	settings  *store.SiteSettingStore
	pageCache *cache.PageCache
}

func NewSettingsHandler(settings *store.SiteSettingStore, pageCache *cache.PageCache) *SettingsHandler {
	return &SettingsHandler{settings: settings, pageCache: pageCache}
}

// Get handles GET /api/admin/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.All()
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update handles PUT /api/admin/settings. Unknown keys are ignored so
// the allowlist in models.WritableSettingKeys is the single authority
// on what the endpoint can change.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload map[string]string
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	accepted := make(map[string]string, len(payload))
	for key, value := range payload {
		if models.WritableSettingKeys[key] {
			accepted[key] = value
		}
	}
	if len(accepted) == 0 {
		writeError(w, http.StatusBadRequest, "No writable settings in payload")
		return
	}

	if err := h.settings.SetMany(accepted); err != nil {
		storeError(w, err)
		return
	}

	// Settings feed the shared layout and the contact page, both of
	// which may be cached per locale.
	if h.pageCache != nil {
		h.pageCache.Invalidate(r.Context(), "home", "contact")
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
