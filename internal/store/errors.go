// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "errors"

// Sentinel errors handlers branch on. Everything else coming out of the
// store layer is an unexpected database failure.
var (
	// ErrNotFound means the id did not resolve to a row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSlug means a unique-slug insert collided.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrAlreadyLiked means the viewer is already a member of the item's
	// liker set. The accompanying count is the unchanged like count.
	ErrAlreadyLiked = errors.New("already liked")

	// ErrNotLikedYet means the viewer is not a member of the item's liker
	// set. The accompanying count is the unchanged like count.
	ErrNotLikedYet = errors.New("not liked yet")
)
