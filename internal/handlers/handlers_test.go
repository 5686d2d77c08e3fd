package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rent-backend/internal/handlers"
	"rent-backend/internal/health"
	h "rent-backend/internal/http"
	"rent-backend/internal/models"
	"rent-backend/internal/monitoring"
	"rent-backend/internal/repositories"
	"rent-backend/internal/services"
	"rent-backend/internal/timeutil"
)

func setupTestServer(t *testing.T) (http.Handler, *repositories.TenantRepository) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Tenant{}))

	repo := repositories.NewTenantRepository(gdb)
	tenantService := services.NewTenantService(repo)
	reminderService := services.NewReminderService(repo, "₹")

	router := h.NewRouter(
		handlers.NewPageHandler(tenantService, "₹"),
		handlers.NewTenantHandler(tenantService),
		handlers.NewReminderHandler(reminderService),
		handlers.NewHealthHandler(health.NewHealthChecker(gdb)),
		monitoring.NewCollector(t.TempDir()+"/test.db"),
	)
	return router, repo
}

func performRequest(handler http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func addTenantForm() url.Values {
	return url.Values{
		"name":           {"Asha"},
		"room":           {"101"},
		"phone":          {"9876543210"},
		"rent":           {"5000"},
		"due_date":       {"2024-01-05"},
		"late_fee_type":  {"percentage"},
		"late_fee_value": {"5"},
	}
}

func TestAddTenant_RedirectsToDashboard(t *testing.T) {
	router, repo := setupTestServer(t)

	rec := performRequest(router, http.MethodPost, "/add", addTenantForm())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	tenants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Asha", tenants[0].Name)
	assert.Equal(t, models.FeeTypePercentage, tenants[0].LateFeeType)
}

func TestAddTenant_UnknownFeeTypeIsFlat(t *testing.T) {
	router, repo := setupTestServer(t)

	form := addTenantForm()
	form.Set("late_fee_type", "fixed")
	rec := performRequest(router, http.MethodPost, "/add", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	tenants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, models.FeeTypeFlat, tenants[0].LateFeeType)
}

func TestAddTenant_RejectsMalformedFields(t *testing.T) {
	router, _ := setupTestServer(t)

	tests := []struct {
		name  string
		field string
		value string
	}{
		{"non numeric rent", "rent", "abc"},
		{"negative rent", "rent", "-100"},
		{"bad date", "due_date", "05-01-2024"},
		{"non numeric fee value", "late_fee_value", "five"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := addTenantForm()
			form.Set(tt.field, tt.value)
			rec := performRequest(router, http.MethodPost, "/add", form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDashboard_ListsTenants(t *testing.T) {
	router, _ := setupTestServer(t)
	performRequest(router, http.MethodPost, "/add", addTenantForm())

	rec := performRequest(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Asha")
	assert.Contains(t, rec.Body.String(), "Late")
}

func TestMarkPaid_SetsDateAndRedirects(t *testing.T) {
	router, repo := setupTestServer(t)
	performRequest(router, http.MethodPost, "/add", addTenantForm())

	rec := performRequest(router, http.MethodGet, "/mark_paid/1", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	tenant, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, tenant.LastPaidDate)
	assert.Equal(t, timeutil.FormatDate(timeutil.Today()), *tenant.LastPaidDate)

	// The listing now shows Paid, but the fee is still computed from
	// months late; paying does not reset it.
	var dues []*models.TenantDues
	listRec := performRequest(router, http.MethodGet, "/api/tenants", nil)
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &dues))
	require.Len(t, dues, 1)
	assert.Equal(t, "Paid", dues[0].Status)
	assert.Greater(t, dues[0].MonthsLate, 0)
	assert.Greater(t, dues[0].LateFee, 0.0)
}

func TestMarkPaid_UnknownIDStillRedirects(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := performRequest(router, http.MethodGet, "/mark_paid/999", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestReminder_ReturnsMessage(t *testing.T) {
	router, _ := setupTestServer(t)
	performRequest(router, http.MethodPost, "/add", addTenantForm())

	rec := performRequest(router, http.MethodGet, "/reminder/1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Hi Asha,")
	assert.Contains(t, body["message"], "Room 101")
	assert.Contains(t, body["message"], "Total Payable:")
}

func TestReminder_NotFound(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := performRequest(router, http.MethodGet, "/reminder/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Not found"}`, rec.Body.String())
}

func TestReminderSlip_ServesPDF(t *testing.T) {
	router, _ := setupTestServer(t)
	performRequest(router, http.MethodPost, "/add", addTenantForm())

	rec := performRequest(router, http.MethodGet, "/reminder/1/pdf", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestReminderSlip_NotFound(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := performRequest(router, http.MethodGet, "/reminder/999/pdf", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTenants_JSON(t *testing.T) {
	router, _ := setupTestServer(t)
	performRequest(router, http.MethodPost, "/add", addTenantForm())

	rec := performRequest(router, http.MethodGet, "/api/tenants", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var dues []*models.TenantDues
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dues))
	require.Len(t, dues, 1)
	assert.Equal(t, 1, dues[0].ID)
	assert.Equal(t, 5000.0, dues[0].Rent)
	assert.Equal(t, "Late", dues[0].Status)
	expected := dues[0].Rent * 0.05 * float64(dues[0].MonthsLate)
	assert.InDelta(t, expected, dues[0].LateFee, 0.01)
}

func TestMonitoringStats(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := performRequest(router, http.MethodGet, "/api/monitoring/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats monitoring.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.NotEmpty(t, stats.Timestamp)
}

func TestHealth(t *testing.T) {
	router, _ := setupTestServer(t)

	rec := performRequest(router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}
