package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	presensiHandler *PresensiHandler,
	reportHandler *ReportHandler,
	healthHandler *HealthHandler,
	authMiddleware fiber.Handler,
	requireAdmin fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	api := app.Group("/api")

	// Attendance routes (protected)
	presensi := api.Group("/presensi", authMiddleware)
	presensi.Post("/check-in", presensiHandler.CheckIn)
	presensi.Post("/check-out", presensiHandler.CheckOut)
	presensi.Delete("/:id", presensiHandler.Delete)
	presensi.Put("/:id", requireAdmin, presensiHandler.Update)

	// Report routes (admin only)
	reports := api.Group("/reports", authMiddleware, requireAdmin)
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/daily/export", reportHandler.Export)
}
