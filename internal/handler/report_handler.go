package handler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	queryTimeout  time.Duration
}

func NewReportHandler(reportService *service.ReportService, queryTimeout time.Duration) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		queryTimeout:  queryTimeout,
	}
}

func filterFromQuery(c *fiber.Ctx) service.ReportFilter {
	return service.ReportFilter{
		Nama:           c.Query("nama"),
		TanggalMulai:   c.Query("tanggalMulai"),
		TanggalSelesai: c.Query("tanggalSelesai"),
	}
}

// Daily returns attendance records matching the optional nama and date filters
// GET /api/reports/daily
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.queryTimeout)
	defer cancel()

	report, err := h.reportService.Daily(ctx, filterFromQuery(c))
	if err != nil {
		log.Printf("[REPORT_HANDLER] daily report failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal mengambil laporan",
		})
	}

	data := make([]PresensiResponse, len(report.Data))
	for i, record := range report.Data {
		data[i] = toPresensiResponse(record)
	}

	return c.JSON(fiber.Map{
		"reportDate": report.ReportDate,
		"data":       data,
	})
}

// Export streams the filtered daily report as an xlsx workbook
// GET /api/reports/daily/export
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.queryTimeout)
	defer cancel()

	f, err := h.reportService.ExportWorkbook(ctx, filterFromQuery(c))
	if err != nil {
		log.Printf("[REPORT_HANDLER] export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal mengambil laporan",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="laporan_presensi_%s.xlsx"`, time.Now().Format("20060102")))

	if err := f.Write(c.Response().BodyWriter()); err != nil {
		log.Printf("[REPORT_HANDLER] failed to write workbook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Gagal mengambil laporan",
		})
	}

	return nil
}
