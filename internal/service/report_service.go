package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/common/clock"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/common/timezone"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/domain"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository"
)

// ReportFilter carries the optional daily-report criteria. Nama narrows by
// case-insensitive substring. The date range only takes effect when both
// bounds are supplied; a one-sided range is ignored entirely.
type ReportFilter struct {
	Nama           string
	TanggalMulai   string
	TanggalSelesai string
}

// DailyReport is the result of a report query: the date the report was
// generated plus every matching record, oldest first.
type DailyReport struct {
	ReportDate string             `json:"reportDate"`
	Data       []*domain.Presensi `json:"data"`
}

type ReportService struct {
	presensiRepo repository.PresensiRepository
	clock        clock.Clock
}

func NewReportService(presensiRepo repository.PresensiRepository, clk clock.Clock) *ReportService {
	return &ReportService{
		presensiRepo: presensiRepo,
		clock:        clk,
	}
}

// Daily returns all records matching the filter. Filter values are handed to
// the store as-is; a malformed date surfaces as a store failure rather than
// being rejected up front.
func (s *ReportService) Daily(ctx context.Context, filter ReportFilter) (*DailyReport, error) {
	records, err := s.presensiRepo.List(ctx, repository.ListFilter{
		Nama:           filter.Nama,
		TanggalMulai:   filter.TanggalMulai,
		TanggalSelesai: filter.TanggalSelesai,
	})
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		ReportDate: s.clock.Now().In(timezone.Jakarta()).Format("2006-01-02"),
		Data:       records,
	}, nil
}

// ExportWorkbook renders a daily report as an xlsx workbook for download.
func (s *ReportService) ExportWorkbook(ctx context.Context, filter ReportFilter) (*excelize.File, error) {
	report, err := s.Daily(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Laporan Presensi"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Nama", "Check-In", "Check-Out", "Dibuat"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx, record := range report.Data {
		row := idx + 2

		checkOut := ""
		if record.CheckOut != nil {
			checkOut = timezone.Format(*record.CheckOut)
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), record.Nama)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), timezone.Format(record.CheckIn))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), checkOut)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), timezone.Format(record.CreatedAt))
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "D", 22)

	return f, nil
}
