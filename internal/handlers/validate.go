package handlers

import (
	"strings"
	"unicode/utf8"

	"healthportal/internal/models"
)

// Validation limits for content fields.
const (
	maxTitleLen    = 300
	maxBodyLen     = 100_000
	maxTagLen      = 100
	maxTagCount    = 25
	maxImageCount  = 20
	maxSymptomsLen = 2_000
)

// validateContentFields checks shared create/update inputs and returns the
// first error found, or "" if all are valid.
func validateContentFields(contentType models.ContentType, title string, tags []string, images []models.Image) string {
	if !contentType.Valid() {
		return "Invalid type: must be Article, Announcement, or Alert."
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "Missing required fields: type, title"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if len(tags) > maxTagCount {
		return "Too many tags (max 25)."
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > maxTagLen {
			return "Tag is too long (max 100 characters)."
		}
	}
	if len(images) > maxImageCount {
		return "Too many images (max 20)."
	}
	return ""
}

// validateBody checks body length. Presence rules differ per type and are
// enforced in the create handler.
func validateBody(body string) string {
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}
