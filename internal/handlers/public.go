// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ulco/internal/cache"
	"ulco/internal/models"
	"ulco/internal/render"
	"ulco/internal/store"
)

// Public groups handlers for the public-facing storefront. Pages render
// from the content document and are cached in Valkey; when the document
// cannot be read, they fall back to a hardcoded default snapshot instead
// of failing the render: a storage outage degrades the site, it does
// not take it down.
type Public struct {
	renderer  *render.Renderer
	content   *store.ContentStore
	pageCache *cache.PageCache
}

// NewPublic creates the Public handler group.
func NewPublic(renderer *render.Renderer, content *store.ContentStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		content:   content,
		pageCache: pageCache,
	}
}

// document loads the content document, substituting the default snapshot
// when the store is unavailable.
func (p *Public) document() *models.Document {
	doc, err := p.content.Load()
	if err != nil {
		if errors.Is(err, store.ErrStoreUnavailable) {
			slog.Warn("content store unavailable, serving default content", "error", err)
			return models.DefaultDocument()
		}
		slog.Error("content load failed", "error", err)
		return models.DefaultDocument()
	}
	return doc
}

// servePage renders a public template through the page cache. A nil
// PageData from build means the resource does not exist (404).
func (p *Public) servePage(w http.ResponseWriter, r *http.Request, tmpl string, build func(doc *models.Document) *render.PageData) {
	ctx := r.Context()
	key := cache.PageKey(r.URL.Path)

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	doc := p.document()
	data := build(doc)
	if data == nil {
		http.NotFound(w, r)
		return
	}
	p.decorate(doc, data)

	html, err := p.renderer.Public(tmpl, data)
	if err != nil {
		slog.Error("page render failed", "template", tmpl, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, key, html)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// decorate injects the footer and site settings every public page shows.
func (p *Public) decorate(doc *models.Document, data *render.PageData) {
	if data.Data == nil {
		data.Data = map[string]any{}
	}
	var footer models.Footer
	models.DecodeSection(doc, "footer", &footer)
	data.Data["Footer"] = footer

	var settings models.Settings
	models.DecodeSection(doc, "settings", &settings)
	data.Data["Settings"] = settings
}

// Home renders the homepage: hero banner, design philosophy, and the
// featured collections grid.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "home", func(doc *models.Document) *render.PageData {
		var hero models.Hero
		var philosophy models.Philosophy
		models.DecodeSection(doc, "hero", &hero)
		models.DecodeSection(doc, "philosophy", &philosophy)

		var featured []models.CollectionView
		for _, c := range doc.SortedCollections() {
			if view := c.View(); view.IsFeatured {
				featured = append(featured, view)
			}
		}

		return &render.PageData{
			Title: "Home",
			Data: map[string]any{
				"Hero":                hero,
				"Philosophy":          philosophy,
				"FeaturedCollections": featured,
			},
		}
	})
}

// Portfolio renders the collections index.
func (p *Public) Portfolio(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "portfolio", func(doc *models.Document) *render.PageData {
		views := make([]models.CollectionView, 0, len(doc.Collections))
		for _, c := range doc.SortedCollections() {
			views = append(views, c.View())
		}
		return &render.PageData{
			Title: "Portfolio",
			Data:  map[string]any{"Collections": views},
		}
	})
}

// Collection renders one collection's product grid.
func (p *Public) Collection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "collection")

	p.servePage(w, r, "collection", func(doc *models.Document) *render.PageData {
		c, ok := doc.Collections[id]
		if !ok {
			return nil
		}
		return &render.PageData{
			Title: c.Name,
			Data:  map[string]any{"Collection": c.View()},
		}
	})
}

// Product renders a product detail page with its image gallery in
// stored order (first image is the primary).
func (p *Public) Product(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collection")
	productID := chi.URLParam(r, "productId")

	p.servePage(w, r, "product", func(doc *models.Document) *render.PageData {
		c, ok := doc.Collections[collectionID]
		if !ok {
			return nil
		}
		product := c.FindProduct(productID)
		if product == nil {
			return nil
		}
		return &render.PageData{
			Title: product.Name,
			Data: map[string]any{
				"Collection": c.View(),
				"Product":    *product,
			},
		}
	})
}

// About renders the about page.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "about", func(doc *models.Document) *render.PageData {
		var about models.About
		models.DecodeSection(doc, "about", &about)
		return &render.PageData{
			Title: "About",
			Data:  map[string]any{"About": about},
		}
	})
}

// Contact renders the contact page.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "contact", func(doc *models.Document) *render.PageData {
		var contact models.Contact
		models.DecodeSection(doc, "contact", &contact)
		return &render.PageData{
			Title: "Contact",
			Data:  map[string]any{"Contact": contact},
		}
	})
}

// FAQ renders the FAQ page.
func (p *Public) FAQ(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "faq", func(doc *models.Document) *render.PageData {
		var faq models.FAQ
		models.DecodeSection(doc, "faq", &faq)
		return &render.PageData{
			Title: "FAQ",
			Data:  map[string]any{"FAQ": faq},
		}
	})
}
