// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

// Package slug derives collection ids from display titles. Collection
// ids double as URL segments, so they are lowercase with all whitespace
// removed ("Mar Parbue I" → "marparbuei").
package slug

import (
	"regexp"
	"strings"
)

// whitespace matches any run of whitespace characters.
var whitespace = regexp.MustCompile(`\s+`)

// CollectionID creates a collection id from the given title.
// Ids are immutable once created, so this runs only at creation time.
func CollectionID(title string) string {
	id := strings.ToLower(strings.TrimSpace(title))
	return whitespace.ReplaceAllString(id, "")
}
