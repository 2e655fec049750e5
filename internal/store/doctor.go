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

const doctorColumns = `id, clerk_user_id, full_name, qualification, specialty,
	avatar, created_at, updated_at`

// DoctorStore handles doctor directory lookups. Doctor profiles are
// provisioned out of band (seed or admin tooling); the API only reads them.
type DoctorStore struct {
	db *sql.DB
}

// NewDoctorStore creates a new DoctorStore with the given database connection.
func NewDoctorStore(db *sql.DB) *DoctorStore {
	return &DoctorStore{db: db}
}

// FindByID retrieves a doctor by internal ID. Returns nil if not found.
func (s *DoctorStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	return s.findWhere(ctx, "id = $1", id)
}

// FindByClerkID retrieves a doctor by their identity-provider user id.
// Returns nil if not found.
func (s *DoctorStore) FindByClerkID(ctx context.Context, clerkUserID string) (*models.Doctor, error) {
	return s.findWhere(ctx, "clerk_user_id = $1", clerkUserID)
}

func (s *DoctorStore) findWhere(ctx context.Context, where string, arg any) (*models.Doctor, error) {
	d := &models.Doctor{}
	err := s.db.QueryRowContext(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE `+where, arg,
	).Scan(&d.ID, &d.ClerkUserID, &d.FullName, &d.Qualification,
		&d.Specialty, &d.Avatar, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return d, nil
}

// List returns all doctors ordered by name.
func (s *DoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+doctorColumns+` FROM doctors ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var doctors []models.Doctor
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.ID, &d.ClerkUserID, &d.FullName, &d.Qualification,
			&d.Specialty, &d.Avatar, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}
