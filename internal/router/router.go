// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// UL.CO site. It organizes routes into public, admin, and API groups
// with appropriate middleware stacks.
package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"ulco/internal/handlers"
	"ulco/internal/middleware"
	"ulco/internal/session"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sessions  *session.Store
	Admin     *handlers.Admin
	Auth      *handlers.Auth
	API       *handlers.API
	Public    *handlers.Public
	Upload    *handlers.Upload
	UploadDir string
	UploadURL string
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.Sessions))

	// Health check. No auth, no CSRF.
	r.Get("/health", healthHandler)

	// Login attempts are rate limited per client IP.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Admin routes require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages, accessible without a session.
		r.Get("/login", d.Auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", d.Auth.LoginSubmit)
		r.Post("/logout", d.Auth.Logout)

		// Authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/", d.Admin.Dashboard)
			r.Get("/dashboard", d.Admin.Dashboard)

			r.Get("/collections", d.Admin.Collections)
			r.Get("/collections/{collection}", d.Admin.CollectionDetail)

			r.Get("/sections", d.Admin.Sections)
			r.Post("/sections/{section}", d.Admin.SectionSave)

			r.Get("/2fa", d.Auth.TOTPSetup)
		})
	})

	// JSON content API. Reads are public (the storefront consumes
	// them too); mutations require an admin session and CSRF.
	r.Route("/api", func(r chi.Router) {
		r.Get("/collections", d.API.CollectionsList)
		r.Get("/products", d.API.ProductsList)
		r.Get("/content", d.API.ContentGet)

		r.Group(func(r chi.Router) {
			r.Use(middleware.CSRF)
			r.Use(middleware.RequireAuth)

			r.Post("/collections", d.API.CollectionCreate)
			r.Put("/collections", d.API.CollectionUpdate)
			r.Delete("/collections", d.API.CollectionDelete)

			r.Post("/products", d.API.ProductCreate)
			r.Put("/products", d.API.ProductUpdate)
			r.Delete("/products", d.API.ProductDelete)
			r.Post("/products/featured", d.API.ProductToggleFeatured)

			r.Post("/content", d.API.ContentReplace)
			r.Put("/content", d.API.ContentPatch)

			r.Post("/upload", d.Upload.Handle)
		})
	})

	// Public storefront pages.
	r.Get("/", d.Public.Home)
	r.Get("/portfolio", d.Public.Portfolio)
	r.Get("/portfolio/{collection}", d.Public.Collection)
	r.Get("/portfolio/{collection}/{productId}", d.Public.Product)
	r.Get("/about", d.Public.About)
	r.Get("/contact", d.Public.Contact)
	r.Get("/faq", d.Public.FAQ)

	// Locally stored uploads. When S3 is configured the upload handler
	// returns absolute S3 URLs instead and this route serves nothing.
	if d.UploadDir != "" {
		serveUploads(r, d.UploadURL, d.UploadDir)
	}

	return r
}

// serveUploads mounts a static file server for the upload directory.
func serveUploads(r chi.Router, urlPrefix, dir string) {
	fs := http.StripPrefix(urlPrefix, http.FileServer(http.Dir(filepath.Clean(dir))))
	r.Get(urlPrefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
