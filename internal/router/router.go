// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires all HTTP routes: localized public pages, the
// admin panel, and the JSON API.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"ateliercms/internal/handlers"
	"ateliercms/internal/middleware"
	"ateliercms/internal/token"
	"ateliercms/web"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Signer *token.Signer
	Valkey *redis.Client

	Public       *handlers.PublicHandler
	Admin        *handlers.AdminHandler
	Auth         *handlers.AuthHandler
	Contact      *handlers.ContactHandler
	Quote        *handlers.QuoteHandler
	Applications *handlers.ApplicationHandler
	Jobs         *handlers.JobHandler
	Projects     *handlers.ProjectHandler
	Settings     *handlers.SettingsHandler
	Upload       *handlers.UploadHandler
}

// New builds the chi router with all middleware and routes attached.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	gate := middleware.NewAuthGate(d.Signer)

	// Brute-force and spam protection on the unauthenticated endpoints.
	loginLimit := middleware.NewRateLimiter(d.Valkey, "login", 5, time.Minute)
	formLimit := middleware.NewRateLimiter(d.Valkey, "form", 10, time.Minute)
	uploadLimit := middleware.NewRateLimiter(d.Valkey, "upload", 5, time.Minute)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/robots.txt", handlers.Robots)

	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/", d.Public.RootRedirect)

	// Localized pages. The locale middleware 404s unsupported codes.
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(middleware.Locale)

		r.Get("/", d.Public.Home)
		r.Get("/about", d.Public.About)
		r.Get("/services", d.Public.Services)
		r.Get("/portfolio", d.Public.Portfolio)
		r.Get("/contact", d.Public.Contact)
		r.Get("/careers", d.Public.Careers)
		r.Get("/careers/{id}", d.Public.Job)
		r.Get("/quote", d.Public.Quote)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.CSRF)

			r.Get("/login", d.Admin.Login)

			r.Group(func(r chi.Router) {
				r.Use(gate.RequirePage)

				r.Get("/", d.Admin.Dashboard)
				r.Get("/projects", d.Admin.Projects)
				r.Get("/jobs", d.Admin.Jobs)
				r.Get("/applications", d.Admin.Applications)
				r.Get("/quotes", d.Admin.Quotes)
				r.Get("/messages", d.Admin.Messages)
				r.Get("/settings", d.Admin.Settings)
			})
		})

		r.NotFound(d.Public.NotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.With(loginLimit.Middleware).Post("/auth/login", d.Auth.Login)
		r.Post("/auth/logout", d.Auth.Logout)

		r.With(formLimit.Middleware).Post("/contact", d.Contact.Create)
		r.With(formLimit.Middleware).Post("/quotes", d.Quote.Create)
		r.With(formLimit.Middleware).Post("/applications", d.Applications.Create)
		r.With(uploadLimit.Middleware).Post("/upload", d.Upload.Public)

		r.Route("/admin", func(r chi.Router) {
			r.Use(gate.RequireAPI)
			r.Use(middleware.CSRF)

			r.Post("/auth/totp/setup", d.Auth.TOTPSetup)
			r.Post("/auth/totp/enable", d.Auth.TOTPEnable)

			r.Get("/projects", d.Projects.List)
			r.Post("/projects", d.Projects.Create)
			r.Delete("/projects/{id}", d.Projects.Delete)

			r.Get("/jobs", d.Jobs.List)
			r.Post("/jobs", d.Jobs.Create)
			r.Put("/jobs/{id}", d.Jobs.Update)
			r.Put("/jobs/{id}/status", d.Jobs.UpdateStatus)
			r.Delete("/jobs/{id}", d.Jobs.Delete)

			r.Put("/applications/{id}/status", d.Applications.UpdateStatus)
			r.Delete("/applications/{id}", d.Applications.Delete)

			r.Put("/quotes/{id}/status", d.Quote.UpdateStatus)
			r.Delete("/quotes/{id}", d.Quote.Delete)

			r.Delete("/messages/{id}", d.Contact.Delete)

			r.Get("/settings", d.Settings.Get)
			r.Put("/settings", d.Settings.Update)

			r.Post("/upload", d.Upload.Admin)
		})
	})

	return r
}
