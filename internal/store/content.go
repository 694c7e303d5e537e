// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

// Package store implements the content persistence layer: a single JSON
// document on disk holding all site content, plus CRUD repositories over
// the collections map and the products nested inside each collection.
//
// Every mutation is a read-modify-write of the whole document. A mutex
// serializes the cycle so two admin writes cannot clobber each other;
// a deliberate strengthening over the original flat-file behaviour,
// which left that race open.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ulco/internal/models"
)

// ContentStore is the single authoritative load/save of the root content
// document. There is no partial-write primitive: Save replaces the whole
// file, and Patch is a shallow top-level merge followed by a full Save.
type ContentStore struct {
	path string
	mu   sync.Mutex

	// now is swappable so tests can pin the lastUpdated stamp.
	now func() time.Time
}

// NewContentStore creates a store over the JSON document at path. The
// file is not created eagerly; Load fails with ErrStoreUnavailable until
// it exists.
func NewContentStore(path string) *ContentStore {
	return &ContentStore{path: path, now: time.Now}
}

// Path returns the location of the backing content file.
func (s *ContentStore) Path() string {
	return s.path
}

// Load reads and parses the persisted document.
func (s *ContentStore) Load() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Save stamps lastUpdated and persists the complete document, replacing
// any previous content.
func (s *ContentStore) Save(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Patch loads the current document, applies a shallow key-wise merge
// (each supplied top-level key fully replaces the stored one, keys not
// supplied are left untouched), then saves and returns the merged result.
// Used by the settings-style endpoints that edit one section at a time.
func (s *ContentStore) Patch(partial map[string]json.RawMessage) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	for key, val := range partial {
		switch key {
		case "collections":
			collections := make(map[string]*models.Collection)
			if err := json.Unmarshal(val, &collections); err != nil {
				return nil, fmt.Errorf("patch collections: %w", err)
			}
			doc.Collections = collections
		case "lastUpdated":
			// Stamped on save; a client-supplied value is ignored.
		default:
			doc.SetSection(key, val)
		}
	}

	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update runs fn inside a locked load-modify-save cycle. The repositories
// build every mutation on this so no two writers interleave.
func (s *ContentStore) Update(fn func(doc *models.Document) error) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// read loads the document without taking the lock. Callers hold s.mu.
func (s *ContentStore) read() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}

	doc := &models.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return doc, nil
}

// write stamps lastUpdated and persists the document without taking the
// lock. The file is written to a temp sibling and renamed into place so
// a crash mid-write never leaves a truncated document.
func (s *ContentStore) write(doc *models.Document) error {
	doc.LastUpdated = s.now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".content-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrStoreUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrStoreUnavailable, tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return nil
}
