package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rent-backend/internal/models"
	"rent-backend/internal/services"
	"rent-backend/internal/timeutil"
)

type ReminderHandler struct {
	Service *services.ReminderService
}

func NewReminderHandler(s *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: s}
}

// Reminder returns the templated payment reminder as {"message": "..."}.
func (h *ReminderHandler) Reminder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["tenant_id"])
	if err != nil {
		writeNotFound(w)
		return
	}

	message, err := h.Service.Message(r.Context(), id, timeutil.Today())
	if errors.Is(err, models.ErrTenantNotFound) {
		writeNotFound(w)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// ReminderSlip streams the printable PDF version of the reminder.
func (h *ReminderHandler) ReminderSlip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["tenant_id"])
	if err != nil {
		writeNotFound(w)
		return
	}

	pdf, err := h.Service.Slip(r.Context(), id, timeutil.Today())
	if errors.Is(err, models.ErrTenantNotFound) {
		writeNotFound(w)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=reminder-"+strconv.Itoa(id)+".pdf")
	w.Write(pdf)
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
}
