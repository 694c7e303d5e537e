// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"ulco/internal/render"
	"ulco/internal/store"
)

const publicDoc = `{
  "collections": {
    "aurora": {
      "id": "aurora",
      "name": "Aurora",
      "description": "Evening wear",
      "image": "/collections/aurora.jpg",
      "products": [
        {"id": "au001", "name": "Aurora Dress", "description": "Silk and ulos",
         "price": "IDR 750,000", "images": ["/products/au001-1.jpg"],
         "materials": ["Ulos"], "sizes": ["M"], "colors": ["Red"], "featured": true}
      ]
    }
  },
  "hero": {"title": "UL.CO", "subtitle": "Fashion Berbasis Kain Ulos",
           "ctaText": "Explore", "ctaLink": "/portfolio"},
  "philosophy": {"title": "Design Philosophy", "description": "Tradisi bertemu modernitas."},
  "about": {"title": "About UL.CO", "description": "Our story."},
  "contact": {"title": "Contact", "email": "hello@ulco.id"},
  "faq": {"title": "FAQ", "items": [{"question": "Do you ship?", "answer": "Yes."}]},
  "footer": {"tagline": "Ulos modern", "copyright": "UL.CO"},
  "settings": {"siteTitle": "UL.CO", "siteDescription": "Ulos fashion"},
  "lastUpdated": "2026-01-01T00:00:00Z"
}`

// testPublic builds the Public handler group over a seeded temp content
// file, with no page cache.
func testPublic(t *testing.T, seed string) *Public {
	t.Helper()

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "content.json")
	if seed != "" {
		if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
			t.Fatalf("seed content: %v", err)
		}
	}
	return NewPublic(renderer, store.NewContentStore(path), nil)
}

// chiRequest attaches chi URL params to a request the way the router does.
func chiRequest(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPublicHome(t *testing.T) {
	p := testPublic(t, publicDoc)

	rr := httptest.NewRecorder()
	p.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	html := rr.Body.String()
	for _, want := range []string{"Fashion Berbasis Kain Ulos", "Design Philosophy", "Featured Collections", "Aurora"} {
		if !strings.Contains(html, want) {
			t.Errorf("homepage missing %q", want)
		}
	}
	if !strings.Contains(html, "Ulos modern") {
		t.Error("footer tagline missing")
	}
}

func TestPublicHomeFallsBackWithoutStore(t *testing.T) {
	p := testPublic(t, "")

	rr := httptest.NewRecorder()
	p.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	// A missing content file degrades to the default snapshot, never 500.
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Fashion Berbasis Kain Ulos") {
		t.Error("default hero copy missing")
	}
}

func TestPublicPortfolio(t *testing.T) {
	p := testPublic(t, publicDoc)

	rr := httptest.NewRecorder()
	p.Portfolio(rr, httptest.NewRequest(http.MethodGet, "/portfolio", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "/portfolio/aurora") {
		t.Error("collection link missing from portfolio")
	}
}

func TestPublicCollection(t *testing.T) {
	p := testPublic(t, publicDoc)

	rr := httptest.NewRecorder()
	p.Collection(rr, chiRequest(http.MethodGet, "/portfolio/aurora", map[string]string{"collection": "aurora"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	html := rr.Body.String()
	if !strings.Contains(html, "Aurora Dress") || !strings.Contains(html, "IDR 750,000") {
		t.Error("product grid incomplete")
	}
}

func TestPublicCollectionNotFound(t *testing.T) {
	p := testPublic(t, publicDoc)

	rr := httptest.NewRecorder()
	p.Collection(rr, chiRequest(http.MethodGet, "/portfolio/nope", map[string]string{"collection": "nope"}))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestPublicProduct(t *testing.T) {
	p := testPublic(t, publicDoc)

	rr := httptest.NewRecorder()
	p.Product(rr, chiRequest(http.MethodGet, "/portfolio/aurora/au001",
		map[string]string{"collection": "aurora", "productId": "au001"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	html := rr.Body.String()
	for _, want := range []string{"Aurora Dress", "IDR 750,000", "/products/au001-1.jpg", "Ulos"} {
		if !strings.Contains(html, want) {
			t.Errorf("product page missing %q", want)
		}
	}
}

func TestPublicProductNotFound(t *testing.T) {
	p := testPublic(t, publicDoc)

	rr := httptest.NewRecorder()
	p.Product(rr, chiRequest(http.MethodGet, "/portfolio/aurora/au999",
		map[string]string{"collection": "aurora", "productId": "au999"}))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestPublicStaticPages(t *testing.T) {
	p := testPublic(t, publicDoc)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"about", p.About, "Our story"},
		{"contact", p.Contact, "hello@ulco.id"},
		{"faq", p.FAQ, "Do you ship?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.handler(rr, httptest.NewRequest(http.MethodGet, "/"+tt.name, nil))

			if rr.Code != http.StatusOK {
				t.Fatalf("status: %d", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tt.want) {
				t.Errorf("page missing %q", tt.want)
			}
		})
	}
}
