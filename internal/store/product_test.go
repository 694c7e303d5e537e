// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestProductStoreCreateIDs(t *testing.T) {
	tests := []struct {
		name     string
		seed     string
		wantID   string
		wantNext string
	}{
		{
			name:     "first product takes 001",
			seed:     `{"collections": {"aurora": {"id": "aurora", "name": "Aurora", "products": []}}}`,
			wantID:   "au001",
			wantNext: "au002",
		},
		{
			name: "gap from deletion is never refilled",
			seed: `{"collections": {"batik": {"id": "batik", "name": "Batik", "products": [
				{"id": "ba001"}, {"id": "ba003"}
			]}}}`,
			wantID:   "ba004",
			wantNext: "ba005",
		},
		{
			name: "malformed suffixes count as zero",
			seed: `{"collections": {"mixed": {"id": "mixed", "name": "Mixed", "products": [
				{"id": "mixabc"}, {"id": "mi"}, {"id": "mi002"}
			]}}}`,
			wantID:   "mi003",
			wantNext: "mi004",
		},
		{
			name:     "short collection id used whole",
			seed:     `{"collections": {"x": {"id": "x", "name": "X", "products": []}}}`,
			wantID:   "x001",
			wantNext: "x002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := testStore(t, tt.seed)
			s := NewProductStore(cs)

			doc, err := cs.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			var collectionID string
			for id := range doc.Collections {
				collectionID = id
			}

			p, err := s.Create(collectionID, ProductInput{Name: "First"})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if p.ID != tt.wantID {
				t.Errorf("id: got %q, want %q", p.ID, tt.wantID)
			}

			next, err := s.Create(collectionID, ProductInput{Name: "Second"})
			if err != nil {
				t.Fatalf("Create second: %v", err)
			}
			if next.ID != tt.wantNext {
				t.Errorf("next id: got %q, want %q", next.ID, tt.wantNext)
			}
		})
	}
}

func TestProductStoreCreatePrice(t *testing.T) {
	tests := []struct {
		name  string
		price any
		want  string
	}{
		{"string stored verbatim", "IDR 750,000", "IDR 750,000"},
		{"arbitrary string allowed", "Custom Quote", "Custom Quote"},
		{"number formatted", float64(750000), "IDR 750,000"},
		{"small number", float64(100), "IDR 100"},
		{"absent price", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProductStore(testStore(t, seedDoc))

			p, err := s.Create("aurora", ProductInput{Name: "P", Price: tt.price})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if p.Price != tt.want {
				t.Errorf("price: got %q, want %q", p.Price, tt.want)
			}
		})
	}
}

func TestProductStoreCreateDefaults(t *testing.T) {
	s := NewProductStore(testStore(t, seedDoc))

	p, err := s.Create("aurora", ProductInput{Name: "Shawl"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Placeholder gallery follows the id convention.
	want := []string{"/products/au002-1.jpg", "/products/au002-2.jpg"}
	if len(p.Images) != 2 || p.Images[0] != want[0] || p.Images[1] != want[1] {
		t.Errorf("images: got %v, want %v", p.Images, want)
	}
	if p.Materials == nil || p.Sizes == nil || p.Colors == nil {
		t.Error("list fields must be empty slices, not nil")
	}
	if p.Featured {
		t.Error("featured must default to false")
	}
}

func TestProductStoreCreateExplicitImages(t *testing.T) {
	s := NewProductStore(testStore(t, seedDoc))

	p, err := s.Create("aurora", ProductInput{Name: "Shawl", Images: []string{"/uploads/a.jpg"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(p.Images) != 1 || p.Images[0] != "/uploads/a.jpg" {
		t.Errorf("images: got %v", p.Images)
	}
}

func TestProductStoreCreateMissingCollection(t *testing.T) {
	s := NewProductStore(testStore(t, seedDoc))

	if _, err := s.Create("nope", ProductInput{Name: "P"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("create in missing collection: got %v, want ErrNotFound", err)
	}
}

func TestProductStoreUpdateSemantics(t *testing.T) {
	s := NewProductStore(testStore(t, seedDoc))

	// Scalars overwrite unconditionally, even to empty.
	p, err := s.Update("aurora", "au001", ProductInput{Name: "", Description: "", Price: nil})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Name != "" || p.Description != "" || p.Price != "" {
		t.Errorf("scalar fields should be overwritten: %+v", p)
	}

	// Empty list fields keep the stored values.
	if len(p.Images) != 1 || p.Images[0] != "/products/au001-1.jpg" {
		t.Errorf("images should survive an empty update: %v", p.Images)
	}
	if len(p.Materials) != 1 || p.Materials[0] != "Ulos" {
		t.Errorf("materials should survive an empty update: %v", p.Materials)
	}

	// Featured absent from the payload keeps the stored true.
	if !p.Featured {
		t.Error("featured should survive when absent from the payload")
	}

	// An explicit false is honored.
	p, err = s.Update("aurora", "au001", ProductInput{Featured: boolPtr(false)})
	if err != nil {
		t.Fatalf("Update featured=false: %v", err)
	}
	if p.Featured {
		t.Error("explicit featured=false must be applied")
	}

	// Non-empty lists replace.
	p, err = s.Update("aurora", "au001", ProductInput{Sizes: []string{"S", "M", "L"}})
	if err != nil {
		t.Fatalf("Update sizes: %v", err)
	}
	if len(p.Sizes) != 3 {
		t.Errorf("sizes: got %v", p.Sizes)
	}
}

func TestProductStoreUpdateNotFound(t *testing.T) {
	s := NewProductStore(testStore(t, seedDoc))

	if _, err := s.Update("aurora", "au999", ProductInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing product: got %v, want ErrNotFound", err)
	}
	if _, err := s.Update("nope", "au001", ProductInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update in missing collection: got %v, want ErrNotFound", err)
	}
}

func TestProductStoreDelete(t *testing.T) {
	cs := testStore(t, seedDoc)
	s := NewProductStore(cs)

	if err := s.Delete("aurora", "au001"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	products, err := s.List("aurora")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("products after delete: %v", products)
	}

	// Deleting again reports not found.
	if err := s.Delete("aurora", "au001"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestProductStoreToggleFeatured(t *testing.T) {
	s := NewProductStore(testStore(t, seedDoc))

	p, err := s.ToggleFeatured("aurora", "au001")
	if err != nil {
		t.Fatalf("ToggleFeatured: %v", err)
	}
	if p.Featured {
		t.Error("toggle should flip true to false")
	}
	// Everything else untouched.
	if p.Name != "Aurora Dress" || p.Price != "IDR 750,000" {
		t.Errorf("toggle must not change other fields: %+v", p)
	}

	p, err = s.ToggleFeatured("aurora", "au001")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !p.Featured {
		t.Error("toggle should flip back to true")
	}
}

func TestProductStoreListAll(t *testing.T) {
	cs := testStore(t, seedDoc)
	collections := NewCollectionStore(cs)
	s := NewProductStore(cs)

	if _, err := collections.Create(CollectionInput{Title: "Batik"}); err != nil {
		t.Fatalf("Create collection: %v", err)
	}
	if _, err := s.Create("batik", ProductInput{Name: "Batik Scarf"}); err != nil {
		t.Fatalf("Create product: %v", err)
	}

	all, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d products, want 2", len(all))
	}
	// Collections walk in id order: aurora then batik.
	if all[0].CollectionID != "aurora" || all[1].CollectionID != "batik" {
		t.Errorf("order: %q, %q", all[0].CollectionID, all[1].CollectionID)
	}
	if all[1].CollectionName != "Batik" {
		t.Errorf("annotation: got %q", all[1].CollectionName)
	}

	featured, err := s.Featured()
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(featured) != 1 || featured[0].ID != "au001" {
		t.Errorf("featured: %+v", featured)
	}
}
