package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rent-backend/internal/models"
	"rent-backend/internal/services"
	"rent-backend/internal/timeutil"
)

type TenantHandler struct {
	Service *services.TenantService
}

func NewTenantHandler(s *services.TenantService) *TenantHandler {
	return &TenantHandler{Service: s}
}

// AddTenant handles the dashboard's add-tenant form. Malformed numeric or
// date fields are rejected here, before any core logic runs.
func (h *TenantHandler) AddTenant(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req, err := parseTenantForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.Service.AddTenant(r.Context(), req); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// MarkPaid stamps today's date as the tenant's last payment and bounces
// back to the dashboard. An unknown id is a zero-row no-op and still
// redirects, matching the store contract.
func (h *TenantHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["tenant_id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid tenant id", http.StatusBadRequest)
		return
	}

	if err := h.Service.MarkPaid(r.Context(), id, timeutil.Today()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ListTenants serves the enriched rows as JSON, same data as the dashboard.
func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	dues, err := h.Service.ListDues(r.Context(), timeutil.Today())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dues)
}

func parseTenantForm(r *http.Request) (*models.CreateTenantRequest, error) {
	rent, err := strconv.ParseFloat(r.PostFormValue("rent"), 64)
	if err != nil || rent < 0 {
		return nil, errInvalidField("rent")
	}

	dueDate := r.PostFormValue("due_date")
	if _, err := timeutil.ParseDate(dueDate); err != nil {
		return nil, errInvalidField("due_date")
	}

	feeValue, err := strconv.ParseFloat(r.PostFormValue("late_fee_value"), 64)
	if err != nil || feeValue < 0 {
		return nil, errInvalidField("late_fee_value")
	}

	// Closed variant: anything that is not "percentage" is a flat fee.
	feeType := models.FeeTypeFlat
	if r.PostFormValue("late_fee_type") == models.FeeTypePercentage {
		feeType = models.FeeTypePercentage
	}

	return &models.CreateTenantRequest{
		Name:         r.PostFormValue("name"),
		Room:         r.PostFormValue("room"),
		Phone:        r.PostFormValue("phone"),
		Rent:         rent,
		DueDate:      dueDate,
		LateFeeType:  feeType,
		LateFeeValue: feeValue,
	}, nil
}

type errInvalidField string

func (e errInvalidField) Error() string {
	return "invalid value for field " + string(e)
}
