package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/domain"
)

// ErrDuplicateOpen is returned by Create when the store's single-open-record
// constraint rejects a second active presensi for the same user.
var ErrDuplicateOpen = errors.New("active presensi already exists for this user")

// ListFilter narrows List results. Nama matches as a case-insensitive
// substring. The date range applies only when both bounds are present; the
// bounds are passed to the store as-is so the store performs its own date
// validation.
type ListFilter struct {
	Nama           string
	TanggalMulai   string
	TanggalSelesai string
}

//go:generate mockgen -package=mocks -destination=mocks/mock_presensi_repository.go github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository PresensiRepository
type PresensiRepository interface {
	Create(ctx context.Context, presensi *domain.Presensi) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Presensi, error)
	GetOpenByUserID(ctx context.Context, userID uuid.UUID) (*domain.Presensi, error)
	Update(ctx context.Context, presensi *domain.Presensi) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Presensi, error)
}
