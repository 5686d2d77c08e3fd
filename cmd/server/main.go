package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"rent-backend/internal/config"
	"rent-backend/internal/db"
	"rent-backend/internal/handlers"
	"rent-backend/internal/health"
	h "rent-backend/internal/http"
	"rent-backend/internal/middleware"
	"rent-backend/internal/monitoring"
	"rent-backend/internal/repositories"
	"rent-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Open the embedded store and run auto-migration
	gdb := db.Connect(cfg)

	// Initialize health checker and monitoring collector
	healthChecker := health.NewHealthChecker(gdb)
	collector := monitoring.NewCollector(cfg.Database.Path)

	// Initialize repositories
	tenantRepo := repositories.NewTenantRepository(gdb)

	// Initialize services
	tenantService := services.NewTenantService(tenantRepo)
	reminderService := services.NewReminderService(tenantRepo, cfg.App.Currency)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(tenantService, cfg.App.Currency)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Build router and middleware chain
	router := h.NewRouter(pageHandler, tenantHandler, reminderHandler, healthHandler, collector)
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			corsMiddleware(
				middleware.RequestLogging(router),
			),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
