// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the UL.CO site.
// Handlers are grouped by concern (api, upload, auth, admin, public) and
// receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"ulco/internal/cache"
	"ulco/internal/models"
	"ulco/internal/store"
)

// API groups the JSON endpoints the admin dashboard calls: collection and
// product CRUD, raw content access, and uploads. Authorization is
// enforced by the router middleware; these handlers assume the caller is
// already an authenticated admin.
type API struct {
	content     *store.ContentStore
	collections *store.CollectionStore
	products    *store.ProductStore
	pageCache   *cache.PageCache
}

// NewAPI creates the API handler group.
func NewAPI(content *store.ContentStore, collections *store.CollectionStore, products *store.ProductStore, pageCache *cache.PageCache) *API {
	return &API{
		content:     content,
		collections: collections,
		products:    products,
		pageCache:   pageCache,
	}
}

// --- Collections ---

// CollectionsList handles GET /api/collections.
func (a *API) CollectionsList(w http.ResponseWriter, r *http.Request) {
	views, err := a.collections.List()
	if err != nil {
		a.writeStoreError(w, "Failed to fetch collections", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"collections": views})
}

// CollectionCreate handles POST /api/collections.
func (a *API) CollectionCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CollectionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateCollection(in.Title, in.Category, in.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	view, err := a.collections.Create(in)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			writeError(w, http.StatusConflict, "A collection with this id already exists")
			return
		}
		a.writeStoreError(w, "Failed to create collection", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Collection created successfully",
		"collection": view,
	})
}

// CollectionUpdate handles PUT /api/collections.
func (a *API) CollectionUpdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID string `json:"id"`
		store.CollectionUpdate
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.ID == "" {
		writeError(w, http.StatusBadRequest, "Collection ID is required")
		return
	}

	view, err := a.collections.Update(in.ID, in.CollectionUpdate)
	if err != nil {
		a.writeStoreError(w, "Failed to update collection", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Collection updated successfully",
		"collection": view,
	})
}

// CollectionDelete handles DELETE /api/collections?id=. Deleting a
// collection cascades to all its products.
func (a *API) CollectionDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Collection ID is required")
		return
	}

	if err := a.collections.Delete(id); err != nil {
		a.writeStoreError(w, "Failed to delete collection", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Collection deleted successfully"})
}

// --- Products ---

// ProductsList handles GET /api/products?collectionId=.
// Without a collectionId it returns every product across collections,
// annotated with the parent collection id and name; featured=true
// narrows that to the featured products.
func (a *API) ProductsList(w http.ResponseWriter, r *http.Request) {
	collectionID := r.URL.Query().Get("collectionId")

	if collectionID == "" {
		list := a.products.ListAll
		if r.URL.Query().Get("featured") == "true" {
			list = a.products.Featured
		}
		all, err := list()
		if err != nil {
			a.writeStoreError(w, "Failed to fetch products", err)
			return
		}
		if all == nil {
			all = []models.AnnotatedProduct{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": all})
		return
	}

	products, err := a.products.List(collectionID)
	if err != nil {
		a.writeStoreError(w, "Failed to fetch products", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// ProductCreate handles POST /api/products.
func (a *API) ProductCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CollectionID string `json:"collectionId"`
		store.ProductInput
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.CollectionID == "" {
		writeError(w, http.StatusBadRequest, "Collection ID is required")
		return
	}
	if msg := validateProduct(in.Name, in.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product, err := a.products.Create(in.CollectionID, in.ProductInput)
	if err != nil {
		a.writeStoreError(w, "Failed to create product", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Product created successfully",
		"product": product,
	})
}

// ProductUpdate handles PUT /api/products.
func (a *API) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CollectionID string `json:"collectionId"`
		ProductID    string `json:"productId"`
		store.ProductInput
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.CollectionID == "" || in.ProductID == "" {
		writeError(w, http.StatusBadRequest, "Collection ID and Product ID are required")
		return
	}
	// Unlike create, update does not require a name: the payload fields
	// overwrite the stored product unconditionally (except the list
	// fields and featured, which the store treats specially).
	if msg := validateLengths(in.Name, in.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product, err := a.products.Update(in.CollectionID, in.ProductID, in.ProductInput)
	if err != nil {
		a.writeStoreError(w, "Failed to update product", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Product updated successfully",
		"product": product,
	})
}

// ProductDelete handles DELETE /api/products?collectionId=&productId=.
func (a *API) ProductDelete(w http.ResponseWriter, r *http.Request) {
	collectionID := r.URL.Query().Get("collectionId")
	productID := r.URL.Query().Get("productId")
	if collectionID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "Collection ID and Product ID are required")
		return
	}

	if err := a.products.Delete(collectionID, productID); err != nil {
		a.writeStoreError(w, "Failed to delete product", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Product deleted successfully"})
}

// ProductToggleFeatured handles POST /api/products/featured.
// Flips exactly the featured flag of one product.
func (a *API) ProductToggleFeatured(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CollectionID string `json:"collectionId"`
		ProductID    string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.CollectionID == "" || in.ProductID == "" {
		writeError(w, http.StatusBadRequest, "Collection ID and Product ID are required")
		return
	}

	product, err := a.products.ToggleFeatured(in.CollectionID, in.ProductID)
	if err != nil {
		a.writeStoreError(w, "Failed to update product", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Product updated successfully",
		"product": product,
	})
}

// --- Raw content ---

// ContentGet handles GET /api/content: the full document as stored.
func (a *API) ContentGet(w http.ResponseWriter, r *http.Request) {
	doc, err := a.content.Load()
	if err != nil {
		a.writeStoreError(w, "Failed to load content", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ContentReplace handles POST /api/content: a full-document overwrite.
// The lastUpdated stamp is set on save regardless of the payload.
func (a *API) ContentReplace(w http.ResponseWriter, r *http.Request) {
	doc := &models.Document{}
	if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid content document")
		return
	}

	if err := a.content.Save(doc); err != nil {
		a.writeStoreError(w, "Failed to update content", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Content updated successfully",
	})
}

// ContentPatch handles PUT /api/content: a shallow top-level merge used
// by the section editors (hero, about, settings, ...). Each supplied key
// fully replaces the stored one; everything else is untouched.
func (a *API) ContentPatch(w http.ResponseWriter, r *http.Request) {
	var partial map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid content document")
		return
	}

	doc, err := a.content.Patch(partial)
	if err != nil {
		a.writeStoreError(w, "Failed to update content", err)
		return
	}

	a.invalidatePages(r)
	writeJSON(w, http.StatusOK, doc)
}

// invalidatePages flushes the public page cache after any mutation. The
// content document is one unit, so any write can affect any page.
func (a *API) invalidatePages(r *http.Request) {
	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}
}

// writeStoreError maps store errors onto HTTP statuses: not-found → 404,
// everything else (including an unreadable store) → 500.
func (a *API) writeStoreError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage(err))
	default:
		slog.Error(msg, "error", err)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

// notFoundMessage picks the user-facing message for a not-found error.
func notFoundMessage(err error) string {
	if strings.HasPrefix(err.Error(), "product") {
		return "Product not found"
	}
	return "Collection not found"
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
