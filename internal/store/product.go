// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"strconv"

	"ulco/internal/models"
	"ulco/internal/price"
)

// ProductStore handles CRUD over the products nested inside each
// collection. Product ids are collection-scoped, never global: the
// cross-collection listings annotate each product with its parent
// collection instead of assuming id uniqueness.
type ProductStore struct {
	content *ContentStore
}

// NewProductStore creates a ProductStore over the given content store.
func NewProductStore(content *ContentStore) *ProductStore {
	return &ProductStore{content: content}
}

// ProductInput carries the fields accepted on product create and update.
//
// Price is the decoded JSON value: a string is stored verbatim, a number
// is normalized to the "IDR <formatted>" display form.
//
// On update the list fields keep their stored value when the incoming
// slice is empty, while Featured keeps its stored value only when the
// field was absent from the payload (nil); an explicit false is honored.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       any      `json:"price"`
	Images      []string `json:"images"`
	Materials   []string `json:"materials"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Featured    *bool    `json:"featured"`
}

// List returns the products of a collection in stored order, insertion
// order is display order, never re-sorted.
func (s *ProductStore) List(collectionID string) ([]models.Product, error) {
	doc, err := s.content.Load()
	if err != nil {
		return nil, err
	}

	c, ok := doc.Collections[collectionID]
	if !ok {
		return nil, fmt.Errorf("collection %q: %w", collectionID, ErrNotFound)
	}
	if c.Products == nil {
		return []models.Product{}, nil
	}
	return c.Products, nil
}

// Get returns a single product from a collection.
func (s *ProductStore) Get(collectionID, productID string) (models.Product, error) {
	doc, err := s.content.Load()
	if err != nil {
		return models.Product{}, err
	}

	c, ok := doc.Collections[collectionID]
	if !ok {
		return models.Product{}, fmt.Errorf("collection %q: %w", collectionID, ErrNotFound)
	}
	p := c.FindProduct(productID)
	if p == nil {
		return models.Product{}, fmt.Errorf("product %q/%q: %w", collectionID, productID, ErrNotFound)
	}
	return *p, nil
}

// ListAll returns every product across all collections, annotated with
// the parent collection id and name. Collections are walked in id order
// for a stable listing.
func (s *ProductStore) ListAll() ([]models.AnnotatedProduct, error) {
	doc, err := s.content.Load()
	if err != nil {
		return nil, err
	}

	var out []models.AnnotatedProduct
	for _, c := range doc.SortedCollections() {
		for _, p := range c.Products {
			out = append(out, models.AnnotatedProduct{
				Product:        p,
				CollectionID:   c.ID,
				CollectionName: c.Name,
			})
		}
	}
	return out, nil
}

// Featured returns every featured product across all collections, for
// the cross-site "Featured Products" aggregations.
func (s *ProductStore) Featured() ([]models.AnnotatedProduct, error) {
	all, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	var out []models.AnnotatedProduct
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create appends a new product to a collection. The id is the first two
// characters of the collection id plus a zero-padded 3-digit sequence,
// one past the highest existing numeric suffix, so gaps from deletions
// are never refilled and an id is never reissued.
func (s *ProductStore) Create(collectionID string, in ProductInput) (models.Product, error) {
	var created models.Product
	_, err := s.content.Update(func(doc *models.Document) error {
		c, ok := doc.Collections[collectionID]
		if !ok {
			return fmt.Errorf("collection %q: %w", collectionID, ErrNotFound)
		}

		id := nextProductID(c)

		images := in.Images
		if len(images) == 0 {
			// Placeholder gallery paths; the public product page expects
			// at least a primary and a secondary image to exist.
			images = []string{
				"/products/" + id + "-1.jpg",
				"/products/" + id + "-2.jpg",
			}
		}

		created = models.Product{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Price:       price.Display(in.Price),
			Images:      images,
			Materials:   emptyIfNil(in.Materials),
			Sizes:       emptyIfNil(in.Sizes),
			Colors:      emptyIfNil(in.Colors),
			Featured:    in.Featured != nil && *in.Featured,
		}
		c.Products = append(c.Products, created)
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// Update overwrites a product's fields. Name, description, and price are
// replaced unconditionally; the list fields fall back to the stored value
// when the incoming slice is empty; featured falls back only when absent
// from the payload.
func (s *ProductStore) Update(collectionID, productID string, in ProductInput) (models.Product, error) {
	var updated models.Product
	_, err := s.content.Update(func(doc *models.Document) error {
		c, ok := doc.Collections[collectionID]
		if !ok {
			return fmt.Errorf("collection %q: %w", collectionID, ErrNotFound)
		}
		p := c.FindProduct(productID)
		if p == nil {
			return fmt.Errorf("product %q/%q: %w", collectionID, productID, ErrNotFound)
		}

		p.Name = in.Name
		p.Description = in.Description
		p.Price = price.Display(in.Price)
		if len(in.Images) > 0 {
			p.Images = in.Images
		}
		if len(in.Materials) > 0 {
			p.Materials = in.Materials
		}
		if len(in.Sizes) > 0 {
			p.Sizes = in.Sizes
		}
		if len(in.Colors) > 0 {
			p.Colors = in.Colors
		}
		if in.Featured != nil {
			p.Featured = *in.Featured
		}

		updated = *p
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// Delete removes a product from its collection. Absence is detected by
// comparing the filtered slice length against the original.
func (s *ProductStore) Delete(collectionID, productID string) error {
	_, err := s.content.Update(func(doc *models.Document) error {
		c, ok := doc.Collections[collectionID]
		if !ok {
			return fmt.Errorf("collection %q: %w", collectionID, ErrNotFound)
		}

		kept := c.Products[:0:0]
		for _, p := range c.Products {
			if p.ID != productID {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(c.Products) {
			return fmt.Errorf("product %q/%q: %w", collectionID, productID, ErrNotFound)
		}
		c.Products = kept
		return nil
	})
	return err
}

// ToggleFeatured flips exactly the featured flag, leaving every other
// field untouched.
func (s *ProductStore) ToggleFeatured(collectionID, productID string) (models.Product, error) {
	var updated models.Product
	_, err := s.content.Update(func(doc *models.Document) error {
		c, ok := doc.Collections[collectionID]
		if !ok {
			return fmt.Errorf("collection %q: %w", collectionID, ErrNotFound)
		}
		p := c.FindProduct(productID)
		if p == nil {
			return fmt.Errorf("product %q/%q: %w", collectionID, productID, ErrNotFound)
		}
		p.Featured = !p.Featured
		updated = *p
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// nextProductID computes the next id for a collection: the 2-character
// collection prefix plus max(existing numeric suffixes)+1, zero-padded
// to three digits. Malformed suffixes count as 0.
func nextProductID(c *models.Collection) string {
	prefix := c.ID
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	maxSeq := 0
	for _, p := range c.Products {
		if len(p.ID) <= 2 {
			continue
		}
		n, err := strconv.Atoi(p.ID[2:])
		if err != nil || n < 0 {
			continue
		}
		if n > maxSeq {
			maxSeq = n
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}

// emptyIfNil normalizes an absent list field to an empty slice so the
// persisted JSON always carries [], never null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
