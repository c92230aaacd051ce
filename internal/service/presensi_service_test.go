package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/common/clock/mocks"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/common/timezone"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/domain"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository"
	repoMocks "github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository/mocks"
)

type PresensiServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *repoMocks.MockPresensiRepository
	mockClock *clockMocks.MockClock
	service   *PresensiService
	ctx       context.Context

	// Test data
	testTime     time.Time
	testIdentity domain.Identity
	testPresensi *domain.Presensi
}

func (s *PresensiServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockPresensiRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.service = NewPresensiService(s.mockRepo, s.mockClock)
	s.ctx = context.Background()

	// 02:00 UTC renders as 09:00 in Jakarta
	s.testTime = time.Date(2024, 1, 10, 2, 0, 0, 0, time.UTC)
	s.testIdentity = domain.Identity{
		UserID: uuid.MustParse("6f1c0f54-9f1e-4aad-8f40-111111111111"),
		Nama:   "Ali",
		Role:   "karyawan",
	}
	s.testPresensi = &domain.Presensi{
		ID:        uuid.MustParse("2d1be4a1-33e5-4c3a-b9a7-222222222222"),
		UserID:    s.testIdentity.UserID,
		Nama:      s.testIdentity.Nama,
		CheckIn:   s.testTime,
		CheckOut:  nil,
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *PresensiServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PresensiServiceTestSuite) TestCheckInCreatesOpenRecord() {
	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(nil, nil)

	var created *domain.Presensi
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Presensi) error {
			created = p
			return nil
		})

	result, err := s.service.CheckIn(s.ctx, s.testIdentity)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(created, result)
	s.Equal(s.testIdentity.UserID, result.UserID)
	s.Equal("Ali", result.Nama)
	s.Equal(s.testTime, result.CheckIn)
	s.Nil(result.CheckOut)
	s.NotEqual(uuid.Nil, result.ID)
	s.Equal("2024-01-10 09:00:00+07:00", timezone.Format(result.CheckIn))
}

func (s *PresensiServiceTestSuite) TestCheckInFailsWhenRecordStillOpen() {
	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(s.testPresensi, nil)

	result, err := s.service.CheckIn(s.ctx, s.testIdentity)

	s.Nil(result)
	s.ErrorIs(err, ErrAlreadyCheckedIn)
}

func (s *PresensiServiceTestSuite) TestCheckInRaceLosesToStoreConstraint() {
	// Both racing check-ins pass the lookup; the store index rejects the loser
	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(nil, nil)
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(repository.ErrDuplicateOpen)

	result, err := s.service.CheckIn(s.ctx, s.testIdentity)

	s.Nil(result)
	s.ErrorIs(err, ErrAlreadyCheckedIn)
}

func (s *PresensiServiceTestSuite) TestCheckInAfterCheckOutCreatesNewRecord() {
	closedAt := s.testTime.Add(-time.Hour)
	closed := *s.testPresensi
	closed.CheckOut = &closedAt

	// The previous cycle is closed, so no open record is found
	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(nil, nil)
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil)

	result, err := s.service.CheckIn(s.ctx, s.testIdentity)

	s.Require().NoError(err)
	s.NotEqual(closed.ID, result.ID)
	s.Nil(result.CheckOut)
}

func (s *PresensiServiceTestSuite) TestCheckOutClosesOpenRecord() {
	checkedInAt := s.testTime.Add(-8 * time.Hour)
	open := *s.testPresensi
	open.CheckIn = checkedInAt

	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(&open, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, &open).
		Return(nil)

	result, err := s.service.CheckOut(s.ctx, s.testIdentity)

	s.Require().NoError(err)
	s.Require().NotNil(result.CheckOut)
	s.Equal(s.testTime, *result.CheckOut)
	s.Equal(s.testTime, result.UpdatedAt)
	s.Equal(checkedInAt, result.CheckIn)
}

func (s *PresensiServiceTestSuite) TestCheckOutFailsWithoutOpenRecord() {
	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(nil, nil)

	result, err := s.service.CheckOut(s.ctx, s.testIdentity)

	s.Nil(result)
	s.ErrorIs(err, ErrNoActivePresensi)
}

func (s *PresensiServiceTestSuite) TestCheckOutIsNotIdempotent() {
	closedAt := s.testTime
	closed := *s.testPresensi
	closed.CheckOut = &closedAt

	// The record is already closed, so the open lookup finds nothing
	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(nil, nil)

	_, err := s.service.CheckOut(s.ctx, s.testIdentity)

	s.ErrorIs(err, ErrNoActivePresensi)
}

func (s *PresensiServiceTestSuite) TestDeleteReturnsPriorRecord() {
	s.mockRepo.EXPECT().
		GetByID(s.ctx, s.testPresensi.ID).
		Return(s.testPresensi, nil)
	s.mockRepo.EXPECT().
		Delete(s.ctx, s.testPresensi.ID).
		Return(nil)

	result, err := s.service.Delete(s.ctx, s.testIdentity, s.testPresensi.ID)

	s.Require().NoError(err)
	s.Equal(s.testPresensi, result)
}

func (s *PresensiServiceTestSuite) TestDeleteFailsWhenMissing() {
	missingID := uuid.MustParse("99999999-9999-4999-8999-999999999999")
	s.mockRepo.EXPECT().
		GetByID(s.ctx, missingID).
		Return(nil, nil)

	result, err := s.service.Delete(s.ctx, s.testIdentity, missingID)

	s.Nil(result)
	s.ErrorIs(err, ErrPresensiNotFound)
}

func (s *PresensiServiceTestSuite) TestDeleteFailsForNonOwner() {
	other := domain.Identity{
		UserID: uuid.MustParse("aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee"),
		Nama:   "Budi",
	}

	s.mockRepo.EXPECT().
		GetByID(s.ctx, s.testPresensi.ID).
		Return(s.testPresensi, nil)

	result, err := s.service.Delete(s.ctx, other, s.testPresensi.ID)

	s.Nil(result)
	s.ErrorIs(err, ErrNotOwner)
}

func (s *PresensiServiceTestSuite) TestCorrectRejectsEmptyPatch() {
	result, err := s.service.Correct(s.ctx, s.testPresensi.ID, CorrectionPatch{})

	s.Nil(result)
	s.ErrorIs(err, ErrEmptyPatch)
}

func (s *PresensiServiceTestSuite) TestCorrectFailsWhenMissing() {
	nama := "Alice"
	missingID := uuid.MustParse("99999999-9999-4999-8999-999999999999")

	s.mockRepo.EXPECT().
		GetByID(s.ctx, missingID).
		Return(nil, nil)

	result, err := s.service.Correct(s.ctx, missingID, CorrectionPatch{Nama: &nama})

	s.Nil(result)
	s.ErrorIs(err, ErrPresensiNotFound)
}

func (s *PresensiServiceTestSuite) TestCorrectOverwritesOnlySuppliedFields() {
	stored := *s.testPresensi
	originalCheckIn := stored.CheckIn
	nama := "Alice"

	s.mockRepo.EXPECT().
		GetByID(s.ctx, stored.ID).
		Return(&stored, nil)

	var updated *domain.Presensi
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Presensi) error {
			updated = p
			return nil
		})

	result, err := s.service.Correct(s.ctx, stored.ID, CorrectionPatch{Nama: &nama})

	s.Require().NoError(err)
	s.Equal(result, updated)
	s.Equal("Alice", result.Nama)
	s.Equal(originalCheckIn, result.CheckIn)
	s.Nil(result.CheckOut)
	s.Equal(s.testTime, result.UpdatedAt)
}

func (s *PresensiServiceTestSuite) TestCorrectCanRewriteBothStamps() {
	stored := *s.testPresensi
	newCheckIn := s.testTime.Add(-9 * time.Hour)
	newCheckOut := s.testTime.Add(-time.Hour)

	s.mockRepo.EXPECT().
		GetByID(s.ctx, stored.ID).
		Return(&stored, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil)

	result, err := s.service.Correct(s.ctx, stored.ID, CorrectionPatch{
		CheckIn:  &newCheckIn,
		CheckOut: &newCheckOut,
	})

	s.Require().NoError(err)
	s.Equal(newCheckIn, result.CheckIn)
	s.Require().NotNil(result.CheckOut)
	s.Equal(newCheckOut, *result.CheckOut)
	s.Equal("Ali", result.Nama)
}

func (s *PresensiServiceTestSuite) TestCheckInPropagatesStoreFailure() {
	storeErr := errors.New("connection refused")
	s.mockRepo.EXPECT().
		GetOpenByUserID(s.ctx, s.testIdentity.UserID).
		Return(nil, storeErr)

	result, err := s.service.CheckIn(s.ctx, s.testIdentity)

	s.Nil(result)
	s.ErrorIs(err, storeErr)
}

func TestPresensiServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PresensiServiceTestSuite))
}
