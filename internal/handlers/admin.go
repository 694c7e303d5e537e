// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ulco/internal/cache"
	"ulco/internal/render"
	"ulco/internal/store"
)

// editableSections lists the content sections exposed in the admin
// section editor, in display order.
var editableSections = []string{"hero", "philosophy", "about", "contact", "faq", "footer", "settings"}

// Admin groups the dashboard page handlers. Collection and product
// mutations go through the JSON API from the browser; these handlers
// only render pages and save section edits.
type Admin struct {
	renderer    *render.Renderer
	content     *store.ContentStore
	collections *store.CollectionStore
	products    *store.ProductStore
	pageCache   *cache.PageCache
}

// NewAdmin creates the Admin handler group.
func NewAdmin(renderer *render.Renderer, content *store.ContentStore, collections *store.CollectionStore, products *store.ProductStore, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:    renderer,
		content:     content,
		collections: collections,
		products:    products,
		pageCache:   pageCache,
	}
}

// Dashboard renders the overview page with content stats.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	doc, err := a.content.Load()
	if err != nil {
		slog.Error("content load failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	productCount := 0
	featuredCount := 0
	for _, c := range doc.Collections {
		productCount += len(c.Products)
		for _, p := range c.Products {
			if p.Featured {
				featuredCount++
			}
		}
	}

	a.renderer.Admin(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"CollectionCount": len(doc.Collections),
			"ProductCount":    productCount,
			"FeaturedCount":   featuredCount,
			"LastUpdated":     doc.LastUpdated,
		},
	})
}

// Collections renders the collection management page.
func (a *Admin) Collections(w http.ResponseWriter, r *http.Request) {
	views, err := a.collections.List()
	if err != nil {
		slog.Error("collections list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Admin(w, r, "collections", &render.PageData{
		Title:   "Collections",
		Section: "collections",
		Data:    map[string]any{"Collections": views},
	})
}

// CollectionDetail renders one collection with its product table.
func (a *Admin) CollectionDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "collection")

	view, err := a.collections.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("collection load failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Admin(w, r, "collection_detail", &render.PageData{
		Title:   view.Name,
		Section: "collections",
		Data:    map[string]any{"Collection": view},
	})
}

// Sections renders the content section editor. Each section is shown as
// its stored JSON so the editor never loses fields it does not know.
func (a *Admin) Sections(w http.ResponseWriter, r *http.Request) {
	doc, err := a.content.Load()
	if err != nil {
		slog.Error("content load failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	type sectionEdit struct {
		Key  string
		JSON string
	}
	sections := make([]sectionEdit, 0, len(editableSections))
	for _, key := range editableSections {
		raw := doc.Section(key)
		pretty := string(raw)
		if len(raw) > 0 {
			var buf json.RawMessage
			if json.Unmarshal(raw, &buf) == nil {
				if out, err := json.MarshalIndent(buf, "", "  "); err == nil {
					pretty = string(out)
				}
			}
		}
		sections = append(sections, sectionEdit{Key: key, JSON: pretty})
	}

	a.renderer.Admin(w, r, "sections", &render.PageData{
		Title:   "Site Content",
		Section: "sections",
		Data: map[string]any{
			"Sections": sections,
			"Saved":    r.URL.Query().Get("saved") == "1",
		},
	})
}

// SectionSave stores one edited section and flushes the page cache.
func (a *Admin) SectionSave(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "section")
	body := r.FormValue("json")

	if !json.Valid([]byte(body)) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if _, err := a.content.Patch(map[string]json.RawMessage{key: json.RawMessage(body)}); err != nil {
		slog.Error("section save failed", "section", key, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}

	http.Redirect(w, r, "/admin/sections?saved=1", http.StatusSeeOther)
}
