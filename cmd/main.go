package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/common/clock"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/config"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/handler"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/handler/middleware"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/repository/postgres"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/service"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/pkg/jwt"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()
	log.Println("✓ Database connection established")

	// Apply schema
	if err := postgres.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("✓ Database schema up to date")

	// Initialize JWT token service
	tokenService, err := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	// Initialize validator
	validate := validator.NewValidator()

	// Initialize repositories
	presensiRepo := postgres.NewPresensiRepository(db)

	// Initialize services
	clk := &clock.DefaultClock{}
	presensiService := service.NewPresensiService(presensiRepo, clk)
	reportService := service.NewReportService(presensiRepo, clk)

	// Initialize handlers
	presensiHandler := handler.NewPresensiHandler(presensiService, validate, cfg.Database.QueryTimeout)
	reportHandler := handler.NewReportHandler(reportService, cfg.Database.QueryTimeout)
	healthHandler := handler.NewHealthHandler(db)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Presensi Service v1.0",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	// Setup global middlewares
	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CORSMiddleware())

	// Setup authorization middlewares
	authMiddleware := middleware.AuthMiddleware(tokenService)
	requireAdmin := middleware.RequireAdmin()

	// Setup routes
	handler.SetupRoutes(
		app,
		presensiHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
		requireAdmin,
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("🚀 Server starting on http://localhost%s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Printf("❌ Server failed to start: %v", err)
			stop()
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Println("⏳ Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✓ Server stopped")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxOpenConns / 2)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}
