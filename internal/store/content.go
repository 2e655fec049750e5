// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL data stores. One store type per
// concern, all operating on a shared *sql.DB pool.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"healthportal/internal/models"
)

// contentColumns is the unannotated select list for content rows.
const contentColumns = `id, author_id, type, title, slug, body, tags, images,
	like_count, view_count, published_at, created_at, updated_at`

// annotatedColumns extends contentColumns with the per-viewer liked flag and
// the joined author summary. $1 is always the viewer id ("" for anonymous
// viewers — viewer ids are never empty, so the EXISTS comes back false).
const annotatedColumns = `
	c.id, c.author_id, c.type, c.title, c.slug, c.body, c.tags, c.images,
	c.like_count, c.view_count, c.published_at, c.created_at, c.updated_at,
	EXISTS (SELECT 1 FROM content_likes cl
	        WHERE cl.content_id = c.id AND cl.viewer_id = $1) AS liked,
	d.id, d.full_name, d.qualification, d.specialty, d.avatar`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ContentStore handles all content-related database operations. Articles,
// announcements, and alerts share the content table, differentiated by type.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// Create inserts a new content item and returns it with the generated ID.
// The slug must already be assigned by the caller; a collision on the
// unique slug index is reported as ErrDuplicateSlug.
func (s *ContentStore) Create(ctx context.Context, c *models.Content) (*models.Content, error) {
	tags, err := json.Marshal(orEmpty(c.Tags))
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	images, err := json.Marshal(orEmptyImages(c.Images))
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	result := &models.Content{}
	err = scanContent(s.db.QueryRowContext(ctx, `
		INSERT INTO content (author_id, type, title, slug, body, tags, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+contentColumns,
		c.AuthorID, c.Type, c.Title, c.Slug, c.Body, tags, images,
	), result)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create content: %w", err)
	}
	return result, nil
}

// FindByID retrieves a content item by ID without annotation and without
// touching the view counter. Returns nil if not found.
func (s *ContentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	c := &models.Content{}
	err := scanContent(s.db.QueryRowContext(ctx,
		`SELECT `+contentColumns+` FROM content WHERE id = $1`, id), c)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by id: %w", err)
	}
	return c, nil
}

// List returns all content items newest-first, each annotated with the
// viewer's liked flag and the author summary.
func (s *ContentStore) List(ctx context.Context, viewerID string) ([]models.Content, error) {
	return s.listWhere(ctx, "", viewerID)
}

// ListByAuthor returns all content authored by the given doctor, newest-first.
func (s *ContentStore) ListByAuthor(ctx context.Context, doctorID uuid.UUID, viewerID string) ([]models.Content, error) {
	return s.listWhere(ctx, "WHERE c.author_id = $2", viewerID, doctorID)
}

// ListExcludingAuthor returns all content NOT authored by the given doctor,
// including admin-authored items, newest-first.
func (s *ContentStore) ListExcludingAuthor(ctx context.Context, doctorID uuid.UUID, viewerID string) ([]models.Content, error) {
	return s.listWhere(ctx, "WHERE c.author_id IS DISTINCT FROM $2", viewerID, doctorID)
}

// listWhere runs the shared annotated list query with an optional WHERE
// clause. viewerID is always $1; extra arguments start at $2.
func (s *ContentStore) listWhere(ctx context.Context, where, viewerID string, extra ...any) ([]models.Content, error) {
	query := `SELECT ` + annotatedColumns + `
		FROM content c
		LEFT JOIN doctors d ON d.id = c.author_id
		` + where + `
		ORDER BY c.created_at DESC`

	args := append([]any{viewerID}, extra...)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		var c models.Content
		if err := scanAnnotated(rows, &c); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// GetAndCountView fetches a content item by ID, incrementing its view
// counter in the same statement so concurrent reads never lose a count.
// Every successful call counts exactly one view. Returns ErrNotFound if
// the id does not resolve.
func (s *ContentStore) GetAndCountView(ctx context.Context, id uuid.UUID, viewerID string) (*models.Content, error) {
	c := &models.Content{}
	err := scanAnnotated(s.db.QueryRowContext(ctx, `
		WITH c AS (
			UPDATE content SET view_count = view_count + 1, updated_at = now()
			WHERE id = $2
			RETURNING `+contentColumns+`
		)
		SELECT `+annotatedColumns+`
		FROM c
		LEFT JOIN doctors d ON d.id = c.author_id
	`, viewerID, id), c)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return c, nil
}

// ContentPatch is a partial update. Nil fields are left untouched. Slug,
// author, counters, and the publication timestamp are deliberately absent:
// they are system-managed and never client-settable after creation.
type ContentPatch struct {
	Type   *models.ContentType
	Title  *string
	Body   *string
	Tags   *[]string
	Images *[]models.Image
}

// Update applies a partial field update and returns the updated item.
// Returns ErrNotFound if the id does not resolve.
func (s *ContentStore) Update(ctx context.Context, id uuid.UUID, p ContentPatch) (*models.Content, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	n := 1

	add := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}

	if p.Type != nil {
		add("type", *p.Type)
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Body != nil {
		add("body", *p.Body)
	}
	if p.Tags != nil {
		b, err := json.Marshal(orEmpty(*p.Tags))
		if err != nil {
			return nil, fmt.Errorf("update content: %w", err)
		}
		add("tags", b)
	}
	if p.Images != nil {
		b, err := json.Marshal(orEmptyImages(*p.Images))
		if err != nil {
			return nil, fmt.Errorf("update content: %w", err)
		}
		add("images", b)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE content SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), n, contentColumns,
	)

	c := &models.Content{}
	err := scanContent(s.db.QueryRowContext(ctx, query, args...), c)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return c, nil
}

// Publish stamps the item with the current time. Republishing an already
// published item refreshes the timestamp; there is no way back to draft.
func (s *ContentStore) Publish(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	c := &models.Content{}
	err := scanContent(s.db.QueryRowContext(ctx, `
		UPDATE content SET published_at = now(), updated_at = now()
		WHERE id = $1
		RETURNING `+contentColumns, id), c)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("publish content: %w", err)
	}
	return c, nil
}

// Delete physically removes a content item. Likes cascade with it.
// Returns ErrNotFound if the id does not resolve.
func (s *ContentStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- scanning helpers ---

// scanContent scans the unannotated content column list into c.
func scanContent(row rowScanner, c *models.Content) error {
	var authorID uuid.NullUUID
	var tags, images []byte
	if err := row.Scan(
		&c.ID, &authorID, &c.Type, &c.Title, &c.Slug, &c.Body, &tags, &images,
		&c.LikeCount, &c.ViewCount, &c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return err
	}
	return finishContent(c, authorID, tags, images)
}

// scanAnnotated scans the annotated column list (liked flag + author join).
func scanAnnotated(row rowScanner, c *models.Content) error {
	var authorID, docID uuid.NullUUID
	var tags, images []byte
	var name, qual, spec, avatar sql.NullString
	if err := row.Scan(
		&c.ID, &authorID, &c.Type, &c.Title, &c.Slug, &c.Body, &tags, &images,
		&c.LikeCount, &c.ViewCount, &c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
		&c.Liked,
		&docID, &name, &qual, &spec, &avatar,
	); err != nil {
		return err
	}
	if err := finishContent(c, authorID, tags, images); err != nil {
		return err
	}
	if docID.Valid {
		c.Author = &models.AuthorSummary{
			ID:            docID.UUID,
			FullName:      name.String,
			Qualification: qual.String,
			Specialty:     spec.String,
			Avatar:        avatar.String,
		}
	}
	return nil
}

// finishContent decodes the JSONB list columns and the nullable author id.
func finishContent(c *models.Content, authorID uuid.NullUUID, tags, images []byte) error {
	if authorID.Valid {
		id := authorID.UUID
		c.AuthorID = &id
	}
	c.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &c.Tags); err != nil {
			return fmt.Errorf("decode tags: %w", err)
		}
	}
	c.Images = []models.Image{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &c.Images); err != nil {
			return fmt.Errorf("decode images: %w", err)
		}
	}
	return nil
}

// orEmpty normalizes a nil slice to an empty one so JSONB columns always
// hold arrays, never null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyImages(s []models.Image) []models.Image {
	if s == nil {
		return []models.Image{}
	}
	return s
}
