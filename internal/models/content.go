// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentType distinguishes the three kinds of portal content. Articles can
// be AI-drafted; announcements and alerts always carry caller-supplied text.
type ContentType string

const (
	ContentTypeArticle      ContentType = "Article"
	ContentTypeAnnouncement ContentType = "Announcement"
	ContentTypeAlert        ContentType = "Alert"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeAnnouncement, ContentTypeAlert:
		return true
	}
	return false
}

// Image is one entry of a content item's ordered image list. StorageID is
// the object-storage key so the file can be removed when the item is.
type Image struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// AuthorSummary is the doctor profile subset attached to content responses.
type AuthorSummary struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"fullName"`
	Qualification string    `json:"qualification"`
	Specialty     string    `json:"specialty"`
	Avatar        string    `json:"avatar"`
}

// Content represents an article, announcement, or alert in the community
// portal. AuthorID is nil for admin-authored items. Liked is a per-viewer
// annotation computed by the store on reads; it is never persisted and
// never accepted from clients.
type Content struct {
	ID          uuid.UUID      `json:"id"`
	AuthorID    *uuid.UUID     `json:"authorId,omitempty"`
	Author      *AuthorSummary `json:"author,omitempty"`
	Type        ContentType    `json:"type"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Body        string         `json:"content"`
	BodyHTML    string         `json:"contentHtml,omitempty"`
	Tags        []string       `json:"tags"`
	Images      []Image        `json:"images"`
	LikeCount   int            `json:"likes"`
	Liked       bool           `json:"isLiked"`
	PublishedAt *time.Time     `json:"publishedAt"`
	ViewCount   int            `json:"views"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// IsPublished returns true once the item has a publication timestamp.
func (c *Content) IsPublished() bool {
	return c.PublishedAt != nil
}
