// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// newRequestWithRawID builds a request whose chi route context carries
// the given value as the {id} parameter.
func newRequestWithRawID(method, path, id, body string) *http.Request {
	req := httptest.NewRequest(method, strings.ReplaceAll(path, "{id}", id), strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// newRequestWithID is newRequestWithRawID with a fresh UUID.
func newRequestWithID(method, path, body string) *http.Request {
	return newRequestWithRawID(method, path, uuid.NewString(), body)
}
