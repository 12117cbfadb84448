// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"ateliercms/internal/middleware"
	"ateliercms/internal/models"
	"ateliercms/internal/render"
	"ateliercms/internal/store"
)

// recentMessageLimit caps the dashboard inbox preview.
const recentMessageLimit = 5

// AdminHandler renders the admin panel pages. All pages except the
// login form sit behind the auth gate.
type AdminHandler struct {
	renderer     *render.Renderer
	settings     *store.SiteSettingStore
	projects     *store.ProjectStore
	jobs         *store.JobStore
	applications *store.ApplicationStore
	quotes       *store.QuoteStore
	messages     *store.MessageStore
}

func NewAdminHandler(
	renderer *render.Renderer,
	settings *store.SiteSettingStore,
	projects *store.ProjectStore,
	jobs *store.JobStore,
	applications *store.ApplicationStore,
	quotes *store.QuoteStore,
	messages *store.MessageStore,
) *AdminHandler {
	return &AdminHandler{
		renderer:     renderer,
		settings:     settings,
		projects:     projects,
		jobs:         jobs,
		applications: applications,
		quotes:       quotes,
		messages:     messages,
	}
}

func (h *AdminHandler) pageData(r *http.Request, title, section string) (*render.PageData, error) {
	settings, err := h.settings.All()
	if err != nil {
		return nil, err
	}
	return &render.PageData{
		Title:     title,
		Locale:    middleware.LocaleFromCtx(r.Context()),
		Section:   section,
		Settings:  settings,
		Claims:    middleware.ClaimsFromCtx(r.Context()),
		CSRFToken: middleware.GetCSRFToken(r),
		Data:      map[string]any{},
	}, nil
}

func (h *AdminHandler) serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// Login renders the standalone sign-in page.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	data := &render.PageData{
		Title:  "Sign in",
		Locale: middleware.LocaleFromCtx(r.Context()),
	}
	h.renderer.Page(w, "admin/login", data)
}

// Dashboard shows entity counts and the latest messages.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Dashboard", "dashboard")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}

	projects, err := h.projects.List()
	if err != nil {
		h.serverError(w, "list projects", err)
		return
	}
	jobs, err := h.jobs.List()
	if err != nil {
		h.serverError(w, "list jobs", err)
		return
	}
	published := 0
	for i := range jobs {
		if jobs[i].IsPublished() {
			published++
		}
	}
	appCounts, err := h.applications.CountByStatus()
	if err != nil {
		h.serverError(w, "count applications", err)
		return
	}
	quotes, err := h.quotes.List()
	if err != nil {
		h.serverError(w, "list quotes", err)
		return
	}
	pending := 0
	for i := range quotes {
		if quotes[i].Status == models.QuoteStatusPending {
			pending++
		}
	}
	messages, err := h.messages.List()
	if err != nil {
		h.serverError(w, "list messages", err)
		return
	}
	if len(messages) > recentMessageLimit {
		messages = messages[:recentMessageLimit]
	}

	data.Data["ProjectCount"] = len(projects)
	data.Data["PublishedJobs"] = published
	data.Data["NewApplications"] = appCounts[models.ApplicationStatusNew]
	data.Data["PendingQuotes"] = pending
	data.Data["RecentMessages"] = messages
	h.renderer.Page(w, "admin/dashboard", data)
}

func (h *AdminHandler) Projects(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Projects", "projects")
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
	h.renderer.Page(w, "admin/projects", data)
}

func (h *AdminHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Job Listings", "jobs")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	jobs, err := h.jobs.List()
	if err != nil {
		h.serverError(w, "list jobs", err)
		return
	}
	data.Data["Jobs"] = jobs
	h.renderer.Page(w, "admin/jobs", data)
}

// Applications lists all applications, optionally filtered to one
// listing via ?job=<id>.
func (h *AdminHandler) Applications(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Applications", "applications")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}

	var applications []models.Application
	if jobID, perr := uuid.Parse(r.URL.Query().Get("job")); perr == nil {
		applications, err = h.applications.ListByJob(jobID)
	} else {
		applications, err = h.applications.List()
	}
	if err != nil {
		h.serverError(w, "list applications", err)
		return
	}
	data.Data["Applications"] = applications
	h.renderer.Page(w, "admin/applications", data)
}

func (h *AdminHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Quote Requests", "quotes")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	quotes, err := h.quotes.List()
	if err != nil {
		h.serverError(w, "list quotes", err)
		return
	}
	data.Data["Quotes"] = quotes
	h.renderer.Page(w, "admin/quotes", data)
}

func (h *AdminHandler) Messages(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Messages", "messages")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	messages, err := h.messages.List()
	if err != nil {
		h.serverError(w, "list messages", err)
		return
	}
	data.Data["Messages"] = messages
	h.renderer.Page(w, "admin/messages", data)
}

func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	data, err := h.pageData(r, "Site Settings", "settings")
	if err != nil {
		h.serverError(w, "load settings", err)
		return
	}
	h.renderer.Page(w, "admin/settings", data)
}
