package http

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rent-backend/internal/handlers"
	"rent-backend/internal/monitoring"
	"rent-backend/static"
)

func NewRouter(
	pageHandler *handlers.PageHandler,
	tenantHandler *handlers.TenantHandler,
	reminderHandler *handlers.ReminderHandler,
	healthHandler *handlers.HealthHandler,
	collector *monitoring.Collector,
) *mux.Router {
	r := mux.NewRouter()

	// Serve static files from embedded filesystem
	staticFS, _ := fs.Sub(static.FS, ".")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Dashboard and tenant operations
	r.HandleFunc("/", pageHandler.Dashboard).Methods("GET")
	r.HandleFunc("/add", tenantHandler.AddTenant).Methods("POST")
	r.HandleFunc("/mark_paid/{tenant_id}", tenantHandler.MarkPaid).Methods("GET")
	r.HandleFunc("/reminder/{tenant_id}", reminderHandler.Reminder).Methods("GET")
	r.HandleFunc("/reminder/{tenant_id}/pdf", reminderHandler.ReminderSlip).Methods("GET")

	// JSON API
	r.HandleFunc("/api/tenants", tenantHandler.ListTenants).Methods("GET")

	// Monitoring
	monitoringAPI := r.PathPrefix("/api/monitoring").Subrouter()
	monitoringAPI.HandleFunc("/stats", collector.StatsHandler).Methods("GET")
	monitoringAPI.HandleFunc("/ws", collector.WSHandler).Methods("GET")

	// Operational endpoints
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
