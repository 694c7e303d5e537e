// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the admin dashboard
// and the public storefront. Templates are embedded in the binary; public
// pages render to bytes so the page cache can store the result.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"ulco/internal/markdown"
	"ulco/internal/middleware"
	"ulco/internal/session"
)

//go:embed templates/admin/*.html templates/public/*.html
var templatesFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (admin pages)
	Session   *session.Data  // Current admin session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and fetch headers
	Data      map[string]any // Page-specific data
	Error     string         // Inline error message, shown above forms
}

// Renderer handles template parsing and execution.
type Renderer struct {
	admin   map[string]*template.Template
	public  map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML
// pages without the dashboard layout.
var standaloneTemplates = map[string]bool{
	"login": true,
	"twofa": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its group's base layout.
func New() (*Renderer, error) {
	r := &Renderer{
		admin:  make(map[string]*template.Template),
		public: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "active"
				}
				return ""
			},
			// markdown renders long-form copy written in Markdown.
			"markdown": func(src string) template.HTML {
				out, err := markdown.ToHTML(src)
				if err != nil {
					return template.HTML(template.HTMLEscapeString(src))
				}
				return template.HTML(out)
			},
		},
	}

	if err := r.parseGroup(r.admin, "templates/admin"); err != nil {
		return nil, err
	}
	if err := r.parseGroup(r.public, "templates/public"); err != nil {
		return nil, err
	}
	return r, nil
}

// parseGroup parses every page template in dir, pairing each with the
// group's base.html unless it is standalone.
func (rn *Renderer) parseGroup(dst map[string]*template.Template, dir string) error {
	entries, err := templatesFS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read embedded templates %s: %w", dir, err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error
		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				templatesFS, dir+"/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				templatesFS, dir+"/base.html", dir+"/"+name,
			)
		}
		if parseErr != nil {
			return fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		dst[tmplName] = tmpl
	}
	return nil
}

// Admin renders an admin page, injecting the CSRF token and session from
// the request context.
func (rn *Renderer) Admin(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.GetCSRFToken(r)
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Public renders a storefront page to bytes so the caller can cache the
// result before writing it.
func (rn *Renderer) Public(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.public[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
