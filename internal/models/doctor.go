// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is an authoring identity in the portal. ClerkUserID links the row
// to the external identity provider; content items reference doctors by ID.
type Doctor struct {
	ID            uuid.UUID `json:"id"`
	ClerkUserID   string    `json:"clerkUserId"`
	FullName      string    `json:"fullName"`
	Qualification string    `json:"qualification"`
	Specialty     string    `json:"specialty"`
	Avatar        string    `json:"avatar"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Summary returns the profile subset embedded in content responses.
func (d *Doctor) Summary() *AuthorSummary {
	return &AuthorSummary{
		ID:            d.ID,
		FullName:      d.FullName,
		Qualification: d.Qualification,
		Specialty:     d.Specialty,
		Avatar:        d.Avatar,
	}
}
