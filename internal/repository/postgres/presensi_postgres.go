package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/domain"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository"
)

// uniqueViolation is the Postgres error code raised when the partial unique
// index on open records rejects a second active presensi for a user.
const uniqueViolation = "23505"

type presensiRepository struct {
	db *sqlx.DB
}

// NewPresensiRepository creates a new PostgreSQL presensi repository
func NewPresensiRepository(db *sqlx.DB) repository.PresensiRepository {
	return &presensiRepository{db: db}
}

// Create inserts a new presensi record into the database
func (r *presensiRepository) Create(ctx context.Context, presensi *domain.Presensi) error {
	query := `
		INSERT INTO presensi (
			id, user_id, nama, check_in, check_out, created_at, updated_at
		) VALUES (
			:id, :user_id, :nama, :check_in, :check_out, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, presensi)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrDuplicateOpen
		}
		return fmt.Errorf("failed to create presensi: %w", err)
	}

	return nil
}

// GetByID retrieves a presensi record by its ID. Returns (nil, nil) when the
// record does not exist.
func (r *presensiRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Presensi, error) {
	query := `
		SELECT id, user_id, nama, check_in, check_out, created_at, updated_at
		FROM presensi
		WHERE id = $1`

	var presensi domain.Presensi
	err := r.db.GetContext(ctx, &presensi, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get presensi by id: %w", err)
	}

	return &presensi, nil
}

// GetOpenByUserID retrieves the user's active presensi record, if any.
// Returns (nil, nil) when the user has no open record.
func (r *presensiRepository) GetOpenByUserID(ctx context.Context, userID uuid.UUID) (*domain.Presensi, error) {
	query := `
		SELECT id, user_id, nama, check_in, check_out, created_at, updated_at
		FROM presensi
		WHERE user_id = $1 AND check_out IS NULL`

	var presensi domain.Presensi
	err := r.db.GetContext(ctx, &presensi, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open presensi: %w", err)
	}

	return &presensi, nil
}

// Update persists the mutable fields of an existing presensi record
func (r *presensiRepository) Update(ctx context.Context, presensi *domain.Presensi) error {
	query := `
		UPDATE presensi
		SET nama = :nama,
			check_in = :check_in,
			check_out = :check_out,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, presensi)
	if err != nil {
		return fmt.Errorf("failed to update presensi: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("presensi not found")
	}

	return nil
}

// Delete removes a presensi record from the database by ID
func (r *presensiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM presensi WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete presensi: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("presensi not found")
	}

	return nil
}

// List retrieves presensi records matching the filter, oldest first
func (r *presensiRepository) List(ctx context.Context, filter repository.ListFilter) ([]*domain.Presensi, error) {
	query, args := buildListQuery(filter)

	presensi := []*domain.Presensi{}
	err := r.db.SelectContext(ctx, &presensi, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list presensi: %w", err)
	}

	return presensi, nil
}

// buildListQuery composes the List statement from the supplied predicates.
// The nama predicate is a case-insensitive substring match. The date range is
// applied only when both bounds are supplied; the bounds are cast by Postgres,
// and the end bound is extended by one day so the whole end date is included.
func buildListQuery(filter repository.ListFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Nama != "" {
		args = append(args, "%"+filter.Nama+"%")
		conditions = append(conditions, fmt.Sprintf("nama ILIKE $%d", len(args)))
	}

	if filter.TanggalMulai != "" && filter.TanggalSelesai != "" {
		args = append(args, filter.TanggalMulai)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d::date", len(args)))
		args = append(args, filter.TanggalSelesai)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d::date + interval '1 day'", len(args)))
	}

	query := `SELECT id, user_id, nama, check_in, check_out, created_at, updated_at FROM presensi`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC"

	return query, args
}
