// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

// Package models defines the content document persisted as a single JSON
// file: the collections map, the products nested inside each collection,
// and the opaque page sections (hero, about, contact, ...) that round-trip
// through load/save untouched.
package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Document is the root content document. Collections and LastUpdated are
// the structured parts; every other top-level key (hero, philosophy,
// about, contact, faq, footer, settings) is carried in Sections as raw
// JSON so unknown keys survive a load/save round trip byte-for-byte.
type Document struct {
	Collections map[string]*Collection
	LastUpdated string
	Sections    map[string]json.RawMessage
}

// knownKeys are the top-level keys the document handles structurally.
var knownKeys = map[string]bool{
	"collections": true,
	"lastUpdated": true,
}

// UnmarshalJSON decodes the structured keys and stashes everything else
// in Sections.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Collections = make(map[string]*Collection)
	d.Sections = make(map[string]json.RawMessage)

	for key, val := range raw {
		switch key {
		case "collections":
			if err := json.Unmarshal(val, &d.Collections); err != nil {
				return fmt.Errorf("decode collections: %w", err)
			}
		case "lastUpdated":
			if err := json.Unmarshal(val, &d.LastUpdated); err != nil {
				return fmt.Errorf("decode lastUpdated: %w", err)
			}
		default:
			d.Sections[key] = val
		}
	}
	return nil
}

// MarshalJSON reassembles the document, merging the structured keys back
// with the opaque sections.
func (d *Document) MarshalJSON() ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(d.Sections)+2)
	for key, val := range d.Sections {
		if knownKeys[key] {
			continue
		}
		raw[key] = val
	}

	collections, err := json.Marshal(d.collectionsOrEmpty())
	if err != nil {
		return nil, fmt.Errorf("encode collections: %w", err)
	}
	raw["collections"] = collections

	lastUpdated, err := json.Marshal(d.LastUpdated)
	if err != nil {
		return nil, err
	}
	raw["lastUpdated"] = lastUpdated

	return json.Marshal(raw)
}

func (d *Document) collectionsOrEmpty() map[string]*Collection {
	if d.Collections == nil {
		return map[string]*Collection{}
	}
	return d.Collections
}

// Section returns the raw JSON for an opaque top-level key, or nil when
// the key is absent.
func (d *Document) Section(key string) json.RawMessage {
	if d.Sections == nil {
		return nil
	}
	return d.Sections[key]
}

// SetSection replaces an opaque top-level key with new raw JSON.
func (d *Document) SetSection(key string, val json.RawMessage) {
	if d.Sections == nil {
		d.Sections = make(map[string]json.RawMessage)
	}
	d.Sections[key] = val
}

// SortedCollections returns the collections ordered by id. Go map
// iteration order is random, so listings sort for a stable display order.
func (d *Document) SortedCollections() []*Collection {
	out := make([]*Collection, 0, len(d.Collections))
	for _, c := range d.Collections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
