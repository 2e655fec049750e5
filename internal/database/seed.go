package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data.
// It creates a couple of doctors so authored content can be exercised
// locally. No-op if any doctors already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM doctors").Scan(&count); err != nil {
		return fmt.Errorf("seed check doctors: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	doctors := []struct {
		clerkUserID, fullName, qualification, specialty string
	}{
		{"user_dev_doctor_1", "Dr. Asha Verma", "MBBS, MD", "General Medicine"},
		{"user_dev_doctor_2", "Dr. Daniel Okafor", "MBBS, DCH", "Pediatrics"},
	}

	for _, d := range doctors {
		_, err := db.Exec(`
			INSERT INTO doctors (clerk_user_id, full_name, qualification, specialty)
			VALUES ($1, $2, $3, $4)
		`, d.clerkUserID, d.fullName, d.qualification, d.specialty)
		if err != nil {
			return fmt.Errorf("seed insert doctor: %w", err)
		}
	}

	slog.Info("database seeded with development doctors", "count", len(doctors))
	return nil
}
