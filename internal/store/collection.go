// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"

	"ulco/internal/models"
	"ulco/internal/slug"
)

// CollectionStore handles CRUD over the collections map in the content
// document. Every operation runs as one locked read-modify-write against
// the whole document.
type CollectionStore struct {
	content *ContentStore
}

// NewCollectionStore creates a CollectionStore over the given content store.
func NewCollectionStore(content *ContentStore) *CollectionStore {
	return &CollectionStore{content: content}
}

// CollectionInput carries the fields accepted when creating a collection.
// Category, when set, becomes the id verbatim; otherwise the id is
// derived from the title.
type CollectionInput struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

// CollectionUpdate carries a partial update. Nil fields keep their prior
// stored value; an empty CoverImage also keeps the prior image so an
// edit form without a new upload does not wipe the cover.
type CollectionUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverImage  string  `json:"coverImage"`
}

// List returns every collection with derived display aggregates, ordered
// by id.
func (s *CollectionStore) List() ([]models.CollectionView, error) {
	doc, err := s.content.Load()
	if err != nil {
		return nil, err
	}

	views := make([]models.CollectionView, 0, len(doc.Collections))
	for _, c := range doc.SortedCollections() {
		views = append(views, c.View())
	}
	return views, nil
}

// Get returns a single collection view by id.
func (s *CollectionStore) Get(id string) (models.CollectionView, error) {
	doc, err := s.content.Load()
	if err != nil {
		return models.CollectionView{}, err
	}

	c, ok := doc.Collections[id]
	if !ok {
		return models.CollectionView{}, fmt.Errorf("collection %q: %w", id, ErrNotFound)
	}
	return c.View(), nil
}

// Create adds a new collection. The id is the supplied category, or the
// slugified title when no category is given. Creating over an existing
// id fails with ErrDuplicateID rather than overwriting.
func (s *CollectionStore) Create(in CollectionInput) (models.CollectionView, error) {
	id := in.Category
	if id == "" {
		id = slug.CollectionID(in.Title)
	}
	if id == "" {
		return models.CollectionView{}, fmt.Errorf("collection title or category required")
	}

	image := in.CoverImage
	if image == "" {
		image = "/collections/" + id + ".jpg"
	}

	var view models.CollectionView
	_, err := s.content.Update(func(doc *models.Document) error {
		if _, exists := doc.Collections[id]; exists {
			return fmt.Errorf("collection %q: %w", id, ErrDuplicateID)
		}
		c := &models.Collection{
			ID:          id,
			Name:        in.Title,
			Description: in.Description,
			Image:       image,
			Products:    []models.Product{},
		}
		doc.Collections[id] = c
		view = c.View()
		return nil
	})
	if err != nil {
		return models.CollectionView{}, err
	}
	return view, nil
}

// Update applies a partial update to collection metadata. The id itself
// is immutable and cannot be changed.
func (s *CollectionStore) Update(id string, in CollectionUpdate) (models.CollectionView, error) {
	var view models.CollectionView
	_, err := s.content.Update(func(doc *models.Document) error {
		c, ok := doc.Collections[id]
		if !ok {
			return fmt.Errorf("collection %q: %w", id, ErrNotFound)
		}
		if in.Title != nil {
			c.Name = *in.Title
		}
		if in.Description != nil {
			c.Description = *in.Description
		}
		if in.CoverImage != "" {
			c.Image = in.CoverImage
		}
		view = c.View()
		return nil
	})
	if err != nil {
		return models.CollectionView{}, err
	}
	return view, nil
}

// Delete removes a collection and all its nested products in one
// document save. The products are not independently addressable, so
// this is a cascading delete.
func (s *CollectionStore) Delete(id string) error {
	_, err := s.content.Update(func(doc *models.Document) error {
		if _, ok := doc.Collections[id]; !ok {
			return fmt.Errorf("collection %q: %w", id, ErrNotFound)
		}
		delete(doc.Collections, id)
		return nil
	})
	return err
}
