// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ateliercms/internal/cache"
	"ateliercms/internal/i18n"
	"ateliercms/internal/markdown"
	"ateliercms/internal/middleware"
	"ateliercms/internal/render"
	"ateliercms/internal/store"
)

// homeProjectLimit caps the portfolio preview on the home page.
const homeProjectLimit = 6

// PublicHandler renders the localized public pages. The home and
// contact pages are cached per locale; the rest render on every
// request.
type PublicHandler struct {
	renderer  *render.Renderer
	settings  *store.SiteSettingStore
	projects  *store.ProjectStore
	jobs      *store.JobStore
	pageCache *cache.PageCache
}

func NewPublicHandler(renderer *render.Renderer, settings *store.SiteSettingStore, projects *store.ProjectStore, jobs *store.JobStore, pageCache *cache.PageCache) *PublicHandler {
	return &PublicHandler{
		renderer:  renderer,
		settings:  settings,
		projects:  projects,
		jobs:      jobs,
		pageCache: pageCache,
	}
}

// RootRedirect sends / to the visitor's best matching locale.
func (h *PublicHandler) RootRedirect(w http.ResponseWriter, r *http.Request) {
	locale := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
	http.Redirect(w, r, "/"+locale+"/", http.StatusFound)
}

// pageData assembles the common template data for a public page.
func (h *PublicHandler) pageData(r *http.Request, title, section, pathSuffix string) (*render.PageData, error) {
	settings, err := h.settings.All()
	if err != nil {
		return nil, err
	}
	return &render.PageData{
		Title:    title,
		Locale:   middleware.LocaleFromCtx(r.Context()),
		Section:  section,
		Settings: settings,
		Data:     map[string]any{"PathSuffix": pathSuffix},
	}, nil
}

func (h *PublicHandler) serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// serveCached writes the cached copy of a page when present, otherwise
// renders it and stores the result.
func (h *PublicHandler) serveCached(w http.ResponseWriter, r *http.Request, page, tmpl string, data *render.PageData) {
	key := cache.Key(data.Locale, page)
	if h.pageCache != nil {
		if html, ok := h.pageCache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	out, err := h.renderer.Render(tmpl, data)
	if err != nil {
		h.serverError(w, "render failed", err)
		return
	}
	if h.pageCache != nil {
		h.pageCache.Set(r.Context(), key, out)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Home", "home", "/")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}

	projects, err := h.projects.List()
	if err != nil {
		h.serverError(w, "list projects", err)
		return
	}
	if len(projects) > homeProjectLimit {
		projects = projects[:homeProjectLimit]
	}
	data.Data["Projects"] = projects

	h.serveCached(w, r, "home", "public/home", data)
}

func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "About", "about", "/about")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	h.renderer.Page(w, "public/about", data)
}

func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Services", "services", "/services")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	h.renderer.Page(w, "public/services", data)
}

func (h *PublicHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Portfolio", "portfolio", "/portfolio")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	projects, err := h.projects.List()
	if err != nil {
		h.serverError(w, "list projects", err)
		return
	}
	data.Data["Projects"] = projects
	h.renderer.Page(w, "public/portfolio", data)
}

func (h *PublicHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Contact", "contact", "/contact")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	h.serveCached(w, r, "contact", "public/contact", data)
}

// Careers lists published vacancies only.
func (h *PublicHandler) Careers(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Careers", "careers", "/careers")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	jobs, err := h.jobs.ListPublished()
	if err != nil {
		h.serverError(w, "list jobs", err)
		return
	}
	data.Data["Jobs"] = jobs
	h.renderer.Page(w, "public/careers", data)
}

// Job shows one published vacancy with its application form. Draft and
// archived listings 404 on the public site.
func (h *PublicHandler) Job(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}
	job, err := h.jobs.FindByID(id)
	if err != nil {
		h.serverError(w, "find job", err)
		return
	}
	if job == nil || !job.IsPublished() {
		h.NotFound(w, r)
		return
	}

	data, err := h.pageData(r, job.Title.Get(middleware.LocaleFromCtx(r.Context())), "careers", "/careers/"+id.String())
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}

	descHTML, err := markdown.ToHTML(job.Description.Get(data.Locale))
	if err != nil {
		h.serverError(w, "render description", err)
		return
	}
	reqHTML, err := markdown.ToHTML(job.Requirements.Get(data.Locale))
	if err != nil {
		h.serverError(w, "render requirements", err)
		return
	}

	data.Data["Job"] = job
	data.Data["DescriptionHTML"] = template.HTML(descHTML)
	data.Data["RequirementsHTML"] = template.HTML(reqHTML)
	h.renderer.Page(w, "public/job", data)
}

func (h *PublicHandler) Quote(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Request a Quote", "quote", "/quote")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	h.renderer.Page(w, "public/quote", data)
}

// NotFound renders the localized 404 page.
func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Not Found", "", "/")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	out, err := h.renderer.Render("public/notfound", data)
	if err != nil {
		slog.Error("render failed", "error", err)
		return
	}
	w.Write(out)
}
