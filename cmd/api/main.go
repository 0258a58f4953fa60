package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/projectx/clinic-api/internal/config"
	appointmentHandler "github.com/projectx/clinic-api/internal/handler/appointment"
	billingHandler "github.com/projectx/clinic-api/internal/handler/billing"
	dashboardHandler "github.com/projectx/clinic-api/internal/handler/dashboard"
	healthHandler "github.com/projectx/clinic-api/internal/handler/health"
	metaHandler "github.com/projectx/clinic-api/internal/handler/meta"
	patientHandler "github.com/projectx/clinic-api/internal/handler/patient"
	"github.com/projectx/clinic-api/internal/middleware"
	"github.com/projectx/clinic-api/internal/repository/postgres"
	"github.com/projectx/clinic-api/internal/router"
	appointmentService "github.com/projectx/clinic-api/internal/service/appointment"
	billingService "github.com/projectx/clinic-api/internal/service/billing"
	dashboardService "github.com/projectx/clinic-api/internal/service/dashboard"
	patientService "github.com/projectx/clinic-api/internal/service/patient"
	"github.com/projectx/clinic-api/pkg/logger"
	"github.com/projectx/clinic-api/pkg/payment"
)

const version = "1.0.0"

const dashboardCacheTTL = 5 * time.Second

func main() {
	log := logger.NewLogger(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal(err, "failed to apply schema")
	}
	if cfg.Database.Seed {
		if err := postgres.Seed(context.Background(), db); err != nil {
			log.Fatal(err, "failed to seed database")
		}
	}

	// Initialize repositories
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	billRepo := postgres.NewBillRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Initialize services
	gateway := payment.NewSimulator(cfg.Payment.Delay())
	dashboardSvc := dashboardService.NewService(statsRepo, dashboardCacheTTL)
	patientSvc := patientService.NewService(patientRepo, appointmentRepo, billRepo, dashboardSvc)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, dashboardSvc)
	billingSvc := billingService.NewService(billRepo, patientRepo, gateway, dashboardSvc)

	// Setup router
	r := router.New(
		router.Config{
			RateLimit:        middleware.RateLimiterConfig{RPS: cfg.RateLimit.RPS, Burst: cfg.RateLimit.Burst},
			CORS:             middleware.DefaultCORSConfig(),
			MetricsNamespace: "clinic",
		},
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		billingHandler.NewHandler(billingSvc),
		dashboardHandler.NewHandler(dashboardSvc),
		healthHandler.NewHandler(db),
		metaHandler.NewHandler(version),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
