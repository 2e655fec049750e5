// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"healthportal/internal/models"
)

// MediaStore records metadata for files uploaded to object storage.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

// Create inserts a media record and returns it with the generated ID.
func (s *MediaStore) Create(ctx context.Context, m *models.Media) (*models.Media, error) {
	result := &models.Media{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO media (filename, content_type, size_bytes, storage_id, url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, filename, content_type, size_bytes, storage_id, url, created_at`,
		m.Filename, m.ContentType, m.SizeBytes, m.StorageID, m.URL,
	).Scan(&result.ID, &result.Filename, &result.ContentType, &result.SizeBytes,
		&result.StorageID, &result.URL, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return result, nil
}

// FindByID retrieves a media record by ID. Returns nil if not found.
func (s *MediaStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	m := &models.Media{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, content_type, size_bytes, storage_id, url, created_at
		FROM media WHERE id = $1`, id,
	).Scan(&m.ID, &m.Filename, &m.ContentType, &m.SizeBytes,
		&m.StorageID, &m.URL, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}
	return m, nil
}
