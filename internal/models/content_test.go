package models

import (
	"testing"
	"time"
)

func TestContentTypeValid(t *testing.T) {
	valid := []ContentType{ContentTypeArticle, ContentTypeAnnouncement, ContentTypeAlert}
	for _, ct := range valid {
		if !ct.Valid() {
			t.Errorf("%q should be valid", ct)
		}
	}

	invalid := []ContentType{"", "article", "Post", "ALERT", "News"}
	for _, ct := range invalid {
		if ct.Valid() {
			t.Errorf("%q should be invalid", ct)
		}
	}
}

func TestContentIsPublished(t *testing.T) {
	c := &Content{}
	if c.IsPublished() {
		t.Error("draft should not be published")
	}

	now := time.Now()
	c.PublishedAt = &now
	if !c.IsPublished() {
		t.Error("item with publishedAt should be published")
	}
}
