// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// EngagementStore manages per-viewer likes. The like set and the counter
// live in one database, and every mutation is a single statement, so the
// counter always equals the number of like rows no matter how requests
// interleave.
type EngagementStore struct {
	db *sql.DB
}

// NewEngagementStore creates a new EngagementStore with the given database connection.
func NewEngagementStore(db *sql.DB) *EngagementStore {
	return &EngagementStore{db: db}
}

// Like records that viewerID likes the content item and returns the new
// like count. Returns ErrAlreadyLiked (with the current count) if the
// viewer already likes it, ErrNotFound if the item does not exist.
func (s *EngagementStore) Like(ctx context.Context, contentID uuid.UUID, viewerID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		WITH ins AS (
			INSERT INTO content_likes (content_id, viewer_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
			RETURNING content_id
		)
		UPDATE content SET like_count = like_count + 1, updated_at = now()
		WHERE id = $1 AND EXISTS (SELECT 1 FROM ins)
		RETURNING like_count
	`, contentID, viewerID).Scan(&count)
	if err == nil {
		return count, nil
	}
	if err != sql.ErrNoRows {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("like content: %w", err)
	}
	// No row updated: the insert conflicted, meaning the like already
	// exists. Report the unchanged count.
	count, err = s.likeCount(ctx, contentID)
	if err != nil {
		return 0, err
	}
	return count, ErrAlreadyLiked
}

// Unlike removes viewerID's like and returns the new like count. The
// counter is floored at zero as a belt against historical drift. Returns
// ErrNotLikedYet (with the current count) if no like exists, ErrNotFound
// if the item does not exist.
func (s *EngagementStore) Unlike(ctx context.Context, contentID uuid.UUID, viewerID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		WITH del AS (
			DELETE FROM content_likes
			WHERE content_id = $1 AND viewer_id = $2
			RETURNING content_id
		)
		UPDATE content SET like_count = GREATEST(like_count - 1, 0), updated_at = now()
		WHERE id = $1 AND EXISTS (SELECT 1 FROM del)
		RETURNING like_count
	`, contentID, viewerID).Scan(&count)
	if err == nil {
		return count, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("unlike content: %w", err)
	}
	// No row updated: nothing was deleted, so the viewer never liked it,
	// or the item is gone entirely.
	count, err = s.likeCount(ctx, contentID)
	if err != nil {
		return 0, err
	}
	return count, ErrNotLikedYet
}

func (s *EngagementStore) likeCount(ctx context.Context, contentID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT like_count FROM content WHERE id = $1`, contentID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("read like count: %w", err)
	}
	return count, nil
}
