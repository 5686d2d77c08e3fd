package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"rent-backend/internal/billing"
	"rent-backend/internal/repositories"
	"rent-backend/internal/timeutil"
)

// ReminderService builds payment reminder messages and printable slips.
// It only formats; the system never sends anything.
type ReminderService struct {
	Repo     *repositories.TenantRepository
	Currency string
}

func NewReminderService(repo *repositories.TenantRepository, currency string) *ReminderService {
	return &ReminderService{Repo: repo, Currency: currency}
}

// Message looks up the tenant and renders the fixed reminder template.
// Returns models.ErrTenantNotFound for an unknown id.
func (s *ReminderService) Message(ctx context.Context, id int, today time.Time) (string, error) {
	tenant, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	due, err := timeutil.ParseDate(tenant.DueDate)
	if err != nil {
		return "", fmt.Errorf("tenant %d has invalid due date %q: %w", tenant.ID, tenant.DueDate, err)
	}

	charges := billing.Assess(tenant, due, today)
	policy := billing.PolicyDescription(tenant.LateFeeType, tenant.LateFeeValue, charges.MonthsLate, s.Currency)

	message := fmt.Sprintf(`Hi %s,

Your rent of %s%s for Room %s is pending.

Late Fee Policy: %s
Late Fee Applied: %s%s

Total Payable: %s%s

Kindly clear the payment soon.

Thank you.`,
		tenant.Name,
		s.Currency, billing.FormatAmount(tenant.Rent),
		tenant.Room,
		policy,
		s.Currency, billing.FormatAmount(charges.LateFee),
		s.Currency, billing.FormatAmount(charges.Total),
	)

	return strings.TrimSpace(message), nil
}

// Slip renders the reminder as a printable A5 PDF, one slip per tenant.
// gofpdf's core fonts are latin-1 only, so amounts fall back to "Rs." when
// the configured currency symbol is outside that range.
func (s *ReminderService) Slip(ctx context.Context, id int, today time.Time) ([]byte, error) {
	tenant, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	due, err := timeutil.ParseDate(tenant.DueDate)
	if err != nil {
		return nil, fmt.Errorf("tenant %d has invalid due date %q: %w", tenant.ID, tenant.DueDate, err)
	}

	charges := billing.Assess(tenant, due, today)
	currency := s.pdfCurrency()
	policy := billing.PolicyDescription(tenant.LateFeeType, tenant.LateFeeValue, charges.MonthsLate, currency)

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Rent Payment Reminder", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated on "+timeutil.FormatDate(today), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Tenant", tenant.Name},
		{"Room", tenant.Room},
		{"Phone", tenant.Phone},
		{"Monthly Rent", currency + billing.FormatAmount(tenant.Rent)},
		{"Due Since", tenant.DueDate},
		{"Months Late", fmt.Sprintf("%d", charges.MonthsLate)},
		{"Late Fee Policy", policy},
		{"Late Fee Applied", currency + billing.FormatAmount(charges.LateFee)},
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, row[0], "B", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, row[1], "B", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Total Payable: "+currency+billing.FormatAmount(charges.Total), "1", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6, "Kindly clear the payment soon. Thank you.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render reminder slip: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReminderService) pdfCurrency() string {
	for _, r := range s.Currency {
		if r > 0xFF {
			return "Rs."
		}
	}
	return s.Currency
}
