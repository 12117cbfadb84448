// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site
// and the admin interface. Public pages are rendered per locale with
// translated strings from the i18n bundle; admin pages are English-only.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path"

	"ateliercms/internal/i18n"
	"ateliercms/internal/models"
	"ateliercms/internal/token"
)

//go:embed templates/public/*.html templates/admin/*.html
var templateFS embed.FS

// standaloneTemplates render as full HTML pages without a base layout.
var standaloneTemplates = map[string]bool{
	"admin/login": true,
}

// PageData holds all data passed to templates.
type PageData struct {
	Title     string               // Page title for <title> tag
	Locale    string               // Active locale code ("en", "fr", "ar")
	Section   string               // Active nav section (e.g., "portfolio")
	Settings  models.SiteSettings  // Site-wide settings for header/footer
	Claims    *token.Claims        // Authenticated admin, nil on public pages
	CSRFToken string               // CSRF token for admin forms
	Data      map[string]any       // Page-specific data

	bundle *Bundle
}

// Bundle is the translation source threaded into every page render.
type Bundle = i18n.Bundle

// T translates a key for the page's active locale.
func (d *PageData) T(key string) string {
	if d.bundle == nil {
		return key
	}
	return d.bundle.T(d.Locale, key)
}

// Dir returns the text direction for the page's active locale.
func (d *PageData) Dir() string {
	return i18n.Dir(d.Locale)
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	bundle    *i18n.Bundle
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its group's base layout.
func New(bundle *i18n.Bundle) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		bundle:    bundle,
	}

	funcMap := template.FuncMap{
		// deref safely dereferences a string pointer for use in templates.
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	for _, group := range []string{"public", "admin"} {
		entries, err := templateFS.ReadDir("templates/" + group)
		if err != nil {
			return nil, fmt.Errorf("read embedded templates: %w", err)
		}

		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || name == "base.html" {
				continue
			}

			// Strip .html extension for the template key.
			key := path.Join(group, name[:len(name)-len(".html")])

			var tmpl *template.Template
			var parseErr error

			if standaloneTemplates[key] {
				tmpl, parseErr = template.New(name).Funcs(funcMap).ParseFS(
					templateFS, "templates/"+group+"/"+name,
				)
			} else {
				tmpl, parseErr = template.New("base.html").Funcs(funcMap).ParseFS(
					templateFS,
					"templates/"+group+"/base.html",
					"templates/"+group+"/"+name,
				)
			}

			if parseErr != nil {
				return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
			}

			r.templates[key] = tmpl
		}
	}

	return r, nil
}

// Render executes a template into a byte slice. Public handlers use this
// so the result can be stored in the page cache before writing.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	if data.Locale == "" {
		data.Locale = i18n.DefaultLocale
	}
	data.bundle = rn.bundle

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = path.Base(name) + ".html"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a template and writes it as an HTML response. Render
// failures become a 500 so a broken template never emits half a page.
func (rn *Renderer) Page(w http.ResponseWriter, name string, data *PageData) {
	out, err := rn.Render(name, data)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}
