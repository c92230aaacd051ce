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
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/domain"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository"
	repoMocks "github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository/mocks"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *repoMocks.MockPresensiRepository
	mockClock *clockMocks.MockClock
	service   *ReportService
	ctx       context.Context

	testTime    time.Time
	testRecords []*domain.Presensi
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockPresensiRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.service = NewReportService(s.mockRepo, s.mockClock)
	s.ctx = context.Background()

	// 18:00 UTC on Jan 9 is already Jan 10 in Jakarta
	s.testTime = time.Date(2024, 1, 9, 18, 0, 0, 0, time.UTC)
	s.testRecords = []*domain.Presensi{
		{ID: uuid.New(), Nama: "Ali", CheckIn: s.testTime},
		{ID: uuid.New(), Nama: "Alice", CheckIn: s.testTime},
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReportServiceTestSuite) TestDailyPassesFilterThrough() {
	filter := ReportFilter{
		Nama:           "ali",
		TanggalMulai:   "2024-01-01",
		TanggalSelesai: "2024-01-31",
	}

	s.mockRepo.EXPECT().
		List(s.ctx, repository.ListFilter{
			Nama:           "ali",
			TanggalMulai:   "2024-01-01",
			TanggalSelesai: "2024-01-31",
		}).
		Return(s.testRecords, nil)

	report, err := s.service.Daily(s.ctx, filter)

	s.Require().NoError(err)
	s.Equal(s.testRecords, report.Data)
}

func (s *ReportServiceTestSuite) TestDailyReportDateUsesJakartaCalendar() {
	s.mockRepo.EXPECT().
		List(s.ctx, repository.ListFilter{}).
		Return([]*domain.Presensi{}, nil)

	report, err := s.service.Daily(s.ctx, ReportFilter{})

	s.Require().NoError(err)
	s.Equal("2024-01-10", report.ReportDate)
	s.Empty(report.Data)
}

func (s *ReportServiceTestSuite) TestDailyPropagatesStoreFailure() {
	storeErr := errors.New("connection refused")
	s.mockRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(nil, storeErr)

	report, err := s.service.Daily(s.ctx, ReportFilter{})

	s.Nil(report)
	s.ErrorIs(err, storeErr)
}

func (s *ReportServiceTestSuite) TestExportWorkbookWritesRecords() {
	checkOut := s.testTime.Add(8 * time.Hour)
	records := []*domain.Presensi{
		{ID: uuid.New(), Nama: "Ali", CheckIn: s.testTime, CheckOut: &checkOut, CreatedAt: s.testTime},
		{ID: uuid.New(), Nama: "Budi", CheckIn: s.testTime, CreatedAt: s.testTime},
	}

	s.mockRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(records, nil)

	f, err := s.service.ExportWorkbook(s.ctx, ReportFilter{})

	s.Require().NoError(err)
	s.Require().NotNil(f)

	nama, err := f.GetCellValue("Laporan Presensi", "A2")
	s.Require().NoError(err)
	s.Equal("Ali", nama)

	checkOutCell, err := f.GetCellValue("Laporan Presensi", "C2")
	s.Require().NoError(err)
	s.Equal("2024-01-10 09:00:00+07:00", checkOutCell)

	// An open record leaves the check-out column blank
	openCell, err := f.GetCellValue("Laporan Presensi", "C3")
	s.Require().NoError(err)
	s.Equal("", openCell)
}

func (s *ReportServiceTestSuite) TestExportPropagatesStoreFailure() {
	storeErr := errors.New("connection refused")
	s.mockRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(nil, storeErr)

	f, err := s.service.ExportWorkbook(s.ctx, ReportFilter{})

	s.Nil(f)
	s.ErrorIs(err, storeErr)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
