// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"
)

func TestCollectionStoreCreateDerivesIDFromTitle(t *testing.T) {
	tests := []struct {
		name   string
		input  CollectionInput
		wantID string
	}{
		{
			name:   "lowercased title",
			input:  CollectionInput{Title: "Aurora"},
			wantID: "aurora",
		},
		{
			name:   "whitespace stripped",
			input:  CollectionInput{Title: "Midnight Bloom"},
			wantID: "midnightbloom",
		},
		{
			name:   "category wins over title",
			input:  CollectionInput{Title: "Anything At All", Category: "heritage"},
			wantID: "heritage",
		},
		{
			name:   "category kept verbatim",
			input:  CollectionInput{Title: "X", Category: "Mixed-Case_ID"},
			wantID: "Mixed-Case_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCollectionStore(testStore(t, `{"collections": {}}`))

			view, err := s.Create(tt.input)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if view.ID != tt.wantID {
				t.Errorf("id: got %q, want %q", view.ID, tt.wantID)
			}
		})
	}
}

func TestCollectionStoreCreateDefaults(t *testing.T) {
	s := NewCollectionStore(testStore(t, `{"collections": {}}`))

	view, err := s.Create(CollectionInput{Title: "Aurora", Description: "Evening wear"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if view.CoverImage != "/collections/aurora.jpg" {
		t.Errorf("cover image: got %q, want conventional default", view.CoverImage)
	}
	if view.ProductCount != 0 {
		t.Errorf("product count: got %d, want 0", view.ProductCount)
	}
	if view.Products == nil {
		t.Error("products should be an empty slice, not nil")
	}
	if view.IsFeatured {
		t.Error("new collection must not be featured")
	}
	if !view.IsActive {
		t.Error("new collection should be active")
	}
	if view.Title != "Aurora" || view.Category != "aurora" {
		t.Errorf("derived fields: title %q category %q", view.Title, view.Category)
	}
}

func TestCollectionStoreCreateExplicitCover(t *testing.T) {
	s := NewCollectionStore(testStore(t, `{"collections": {}}`))

	view, err := s.Create(CollectionInput{Title: "Aurora", CoverImage: "/uploads/custom.jpg"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if view.CoverImage != "/uploads/custom.jpg" {
		t.Errorf("cover image: got %q", view.CoverImage)
	}
}

func TestCollectionStoreCreateDuplicate(t *testing.T) {
	s := NewCollectionStore(testStore(t, seedDoc))

	_, err := s.Create(CollectionInput{Title: "AURORA"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate create: got %v, want ErrDuplicateID", err)
	}
}

func TestCollectionStoreCreateEmpty(t *testing.T) {
	s := NewCollectionStore(testStore(t, `{"collections": {}}`))

	if _, err := s.Create(CollectionInput{Title: "   "}); err == nil {
		t.Fatal("whitespace-only title must not create a collection")
	}
}

func TestCollectionStoreUpdatePartial(t *testing.T) {
	s := NewCollectionStore(testStore(t, seedDoc))

	desc := "New description"
	view, err := s.Update("aurora", CollectionUpdate{Description: &desc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if view.Description != "New description" {
		t.Errorf("description: got %q", view.Description)
	}
	// Fields not supplied keep their stored value.
	if view.Name != "Aurora" {
		t.Errorf("name should be untouched: got %q", view.Name)
	}
	if view.CoverImage != "/collections/aurora.jpg" {
		t.Errorf("empty cover image must keep the stored one: got %q", view.CoverImage)
	}
	// Products ride along unchanged.
	if view.ProductCount != 1 {
		t.Errorf("product count: got %d, want 1", view.ProductCount)
	}
}

func TestCollectionStoreUpdateNotFound(t *testing.T) {
	s := NewCollectionStore(testStore(t, seedDoc))

	name := "X"
	_, err := s.Update("nope", CollectionUpdate{Title: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: got %v, want ErrNotFound", err)
	}
}

func TestCollectionStoreDeleteCascades(t *testing.T) {
	cs := testStore(t, seedDoc)
	s := NewCollectionStore(cs)

	if err := s.Delete("aurora"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	doc, err := cs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Collections) != 0 {
		t.Errorf("collections remaining after delete: %d", len(doc.Collections))
	}
	// The nested products go with the collection.
	products := NewProductStore(cs)
	if _, err := products.Get("aurora", "au001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("product lookup after cascade: got %v, want ErrNotFound", err)
	}
}

func TestCollectionStoreDeleteNotFound(t *testing.T) {
	s := NewCollectionStore(testStore(t, seedDoc))

	if err := s.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: got %v, want ErrNotFound", err)
	}
}

func TestCollectionStoreList(t *testing.T) {
	cs := testStore(t, seedDoc)
	s := NewCollectionStore(cs)

	if _, err := s.Create(CollectionInput{Title: "Batik"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	views, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d collections, want 2", len(views))
	}
	// Ordered by id.
	if views[0].ID != "aurora" || views[1].ID != "batik" {
		t.Errorf("order: got %q, %q", views[0].ID, views[1].ID)
	}
	if !views[0].IsFeatured {
		t.Error("aurora has a featured product and should report featured")
	}
}
