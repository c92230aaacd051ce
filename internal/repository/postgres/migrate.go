package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// RunMigrations applies the presensi schema. Statements are idempotent so the
// function is safe to run on every startup.
//
// The partial unique index is the store-level guard behind the single active
// session rule: two concurrent check-ins for the same user cannot both insert
// an open row, whatever the application layer observed beforehand.
func RunMigrations(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS presensi (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			nama TEXT NOT NULL,
			check_in TIMESTAMPTZ NOT NULL,
			check_out TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS presensi_user_id_idx ON presensi (user_id)`,
		`CREATE INDEX IF NOT EXISTS presensi_created_at_idx ON presensi (created_at)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS presensi_user_open_idx
			ON presensi (user_id) WHERE check_out IS NULL`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
