package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/common/clock"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/domain"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository"
)

// Custom errors
var (
	ErrAlreadyCheckedIn = errors.New("active presensi already exists")
	ErrNoActivePresensi = errors.New("no active presensi to close")
	ErrPresensiNotFound = errors.New("presensi not found")
	ErrNotOwner         = errors.New("presensi belongs to another user")
	ErrEmptyPatch       = errors.New("patch contains no fields to update")
)

// CorrectionPatch is a field-level update for an existing record. A nil field
// leaves the stored value untouched; a non-nil field overwrites it. CheckOut
// cannot be cleared back to nil through this path.
type CorrectionPatch struct {
	CheckIn  *time.Time `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
	Nama     *string    `json:"nama"`
}

// IsEmpty reports whether no field was supplied at all.
func (p CorrectionPatch) IsEmpty() bool {
	return p.CheckIn == nil && p.CheckOut == nil && p.Nama == nil
}

type PresensiService struct {
	presensiRepo repository.PresensiRepository
	clock        clock.Clock
}

func NewPresensiService(presensiRepo repository.PresensiRepository, clk clock.Clock) *PresensiService {
	return &PresensiService{
		presensiRepo: presensiRepo,
		clock:        clk,
	}
}

// CheckIn opens a new attendance cycle for the caller. The open-record lookup
// runs before the insert so a duplicate check-in never creates a row; the
// store's partial unique index closes the remaining race between two
// concurrent check-ins for the same user.
func (s *PresensiService) CheckIn(ctx context.Context, identity domain.Identity) (*domain.Presensi, error) {
	existing, err := s.presensiRepo.GetOpenByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active presensi: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	now := s.clock.Now()
	presensi := &domain.Presensi{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		Nama:      identity.Nama,
		CheckIn:   now,
		CheckOut:  nil,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.presensiRepo.Create(ctx, presensi); err != nil {
		if errors.Is(err, repository.ErrDuplicateOpen) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	log.Printf("DATA TERUPDATE: %s (ID: %s) melakukan check-in.", identity.Nama, identity.UserID)

	return presensi, nil
}

// CheckOut closes the caller's active cycle. Calling it again right away
// fails with ErrNoActivePresensi since the record is no longer open.
func (s *PresensiService) CheckOut(ctx context.Context, identity domain.Identity) (*domain.Presensi, error) {
	presensi, err := s.presensiRepo.GetOpenByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active presensi: %w", err)
	}
	if presensi == nil {
		return nil, ErrNoActivePresensi
	}

	now := s.clock.Now()
	presensi.CheckOut = &now
	presensi.UpdatedAt = now

	if err := s.presensiRepo.Update(ctx, presensi); err != nil {
		return nil, err
	}

	log.Printf("DATA TERUPDATE: %s (ID: %s) melakukan check-out.", identity.Nama, identity.UserID)

	return presensi, nil
}

// Delete removes a record owned by the caller and returns its prior state.
// The ownership check applies to everyone; no role bypasses it here.
func (s *PresensiService) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) (*domain.Presensi, error) {
	presensi, err := s.presensiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up presensi: %w", err)
	}
	if presensi == nil {
		return nil, ErrPresensiNotFound
	}

	if presensi.UserID != identity.UserID {
		return nil, ErrNotOwner
	}

	if err := s.presensiRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return presensi, nil
}

// Correct overwrites the supplied fields of an existing record. Authorization
// is the caller's responsibility: the route is role-gated upstream and no
// ownership check runs here.
func (s *PresensiService) Correct(ctx context.Context, id uuid.UUID, patch CorrectionPatch) (*domain.Presensi, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	presensi, err := s.presensiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up presensi: %w", err)
	}
	if presensi == nil {
		return nil, ErrPresensiNotFound
	}

	if patch.CheckIn != nil {
		presensi.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		presensi.CheckOut = patch.CheckOut
	}
	if patch.Nama != nil {
		presensi.Nama = *patch.Nama
	}
	presensi.UpdatedAt = s.clock.Now()

	if err := s.presensiRepo.Update(ctx, presensi); err != nil {
		return nil, err
	}

	return presensi, nil
}
