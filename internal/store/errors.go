// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package store

import "errors"

var (
	// ErrStoreUnavailable indicates the backing content file could not
	// be read or written (missing file, permissions, malformed JSON).
	// Admin callers surface it as a 500; public page handlers catch it
	// and render the default content snapshot instead.
	ErrStoreUnavailable = errors.New("content store unavailable")

	// ErrNotFound indicates the requested collection or product id does
	// not exist in the document.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID indicates a collection create collided with an
	// existing id. Creates never overwrite silently.
	ErrDuplicateID = errors.New("duplicate id")
)
