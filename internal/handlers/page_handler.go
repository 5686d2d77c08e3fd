package handlers

import (
	"html/template"
	"log"
	"net/http"

	"rent-backend/internal/billing"
	"rent-backend/internal/metrics"
	"rent-backend/internal/models"
	"rent-backend/internal/services"
	"rent-backend/internal/timeutil"
	"rent-backend/templates"
)

type PageHandler struct {
	templates *template.Template
	service   *services.TenantService
	currency  string
}

func NewPageHandler(service *services.TenantService, currency string) *PageHandler {
	// Parse all templates from embedded filesystem
	tmpl := template.Must(template.ParseFS(templates.FS, "*.html"))

	return &PageHandler{
		templates: tmpl,
		service:   service,
		currency:  currency,
	}
}

type dashboardData struct {
	Tenants  []*models.TenantDues
	Currency string
}

// Dashboard serves the tenant listing with computed fee, total and status.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dues, err := h.service.ListDues(r.Context(), timeutil.Today())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	updateTenantGauges(dues)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "index.html", dashboardData{
		Tenants:  dues,
		Currency: h.currency,
	}); err != nil {
		log.Printf("[Pages] render index failed: %v", err)
	}
}

func updateTenantGauges(dues []*models.TenantDues) {
	late := 0
	for _, d := range dues {
		if d.Status == billing.StatusLate {
			late++
		}
	}
	metrics.TenantsTotal.Set(float64(len(dues)))
	metrics.TenantsLate.Set(float64(late))
}
