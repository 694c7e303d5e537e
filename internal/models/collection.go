// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package models

// Collection is a named grouping of products: a fashion line shown in
// portfolio navigation. The map key in Document.Collections and the
// embedded ID never diverge; the id doubles as the URL segment.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Products    []Product `json:"products"`
}

// Product is an individual sellable item belonging to exactly one
// collection. Its id is unique within the parent collection only, never
// globally: cross-collection aggregates must key by (collection id,
// product id).
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
	Materials   []string `json:"materials"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Featured    bool     `json:"featured"`
}

// CollectionView is the shape the admin dashboard and portfolio listings
// consume: the stored collection plus derived display aggregates.
// IsFeatured is derived (any contained product featured), not a
// persisted collection attribute.
type CollectionView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	CoverImage   string    `json:"coverImage"`
	ProductCount int       `json:"productCount"`
	Products     []Product `json:"products"`
	IsFeatured   bool      `json:"isFeatured"`
	IsActive     bool      `json:"isActive"`
}

// View derives the display aggregates for a collection.
func (c *Collection) View() CollectionView {
	featured := false
	for _, p := range c.Products {
		if p.Featured {
			featured = true
			break
		}
	}
	products := c.Products
	if products == nil {
		products = []Product{}
	}
	return CollectionView{
		ID:           c.ID,
		Name:         c.Name,
		Title:        c.Name,
		Category:     c.ID,
		Description:  c.Description,
		CoverImage:   c.Image,
		ProductCount: len(c.Products),
		Products:     products,
		IsFeatured:   featured,
		IsActive:     true,
	}
}

// FeaturedProducts returns the products flagged for cross-site promotion.
func (c *Collection) FeaturedProducts() []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// FindProduct returns a pointer into Products for the given id, or nil.
func (c *Collection) FindProduct(productID string) *Product {
	for i := range c.Products {
		if c.Products[i].ID == productID {
			return &c.Products[i]
		}
	}
	return nil
}

// AnnotatedProduct is a product labelled with its parent collection, used
// by the all-products listing and featured aggregations.
type AnnotatedProduct struct {
	Product
	CollectionID   string `json:"collectionId"`
	CollectionName string `json:"collectionName"`
}
