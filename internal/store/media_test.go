// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"healthportal/internal/models"
)

func TestMediaCreateAndFind(t *testing.T) {
	db := testDB(t)
	store := NewMediaStore(db)
	ctx := context.Background()

	key := "2026/01/" + uuid.NewString() + ".png"
	t.Cleanup(func() { cleanMediaByKey(t, db, key) })

	created, err := store.Create(ctx, &models.Media{
		Filename:    "xray.png",
		ContentType: "image/png",
		SizeBytes:   2048,
		StorageID:   key,
		URL:         "https://cdn.example.com/" + key,
	})
	if err != nil {
		t.Fatalf("failed to create media: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	found, err := store.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to find media: %v", err)
	}
	if found == nil {
		t.Fatal("expected media to be found")
	}
	if found.StorageID != key {
		t.Errorf("expected storage id %q, got %q", key, found.StorageID)
	}
	if found.SizeBytes != 2048 {
		t.Errorf("expected size 2048, got %d", found.SizeBytes)
	}
	if !found.IsImage() {
		t.Error("expected media to be an image")
	}
}

func TestMediaFindMissing(t *testing.T) {
	db := testDB(t)
	store := NewMediaStore(db)

	found, err := store.FindByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for missing media, got %+v", found)
	}
}
