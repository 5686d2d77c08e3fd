// Package billing computes late fees and payment status for tenants.
// All functions are pure; callers pass the reference date explicitly.
package billing

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"rent-backend/internal/models"
)

// Display statuses for the dashboard listing.
const (
	StatusPaid    = "Paid"
	StatusLate    = "Late"
	StatusPending = "Pending"
)

// Charges holds the computed dues for one tenant as of a reference date.
type Charges struct {
	MonthsLate int
	LateFee    float64
	Total      float64
	Status     string
}

// MonthsLate counts full calendar-month boundaries crossed between the due
// date and today. Day-of-month is ignored on purpose: rent due on the 28th
// is already one month late on the 1st of the next month. Never negative.
func MonthsLate(due, today time.Time) int {
	months := (today.Year()-due.Year())*12 + int(today.Month()) - int(due.Month())
	if months < 0 {
		return 0
	}
	return months
}

// LateFee converts months late into a monetary penalty under the tenant's
// fee policy. Zero months late means no fee regardless of policy.
func LateFee(rent float64, feeType string, feeValue float64, monthsLate int) float64 {
	if monthsLate == 0 {
		return 0
	}
	if feeType == models.FeeTypePercentage {
		return rent * (feeValue / 100) * float64(monthsLate)
	}
	return feeValue * float64(monthsLate)
}

// Status resolves the listing status. Precedence: a recorded payment wins
// over lateness, lateness wins over pending. A recorded payment is never
// tied to a billing period, so "Paid" does not expire as new months accrue.
func Status(paid bool, monthsLate int) string {
	switch {
	case paid:
		return StatusPaid
	case monthsLate > 0:
		return StatusLate
	default:
		return StatusPending
	}
}

// Assess computes the full dues for a tenant as of today. Fee and total are
// rounded to 2 decimals for display; intermediate values are not rounded.
func Assess(t *models.Tenant, due, today time.Time) Charges {
	months := MonthsLate(due, today)
	fee := LateFee(t.Rent, t.LateFeeType, t.LateFeeValue, months)

	return Charges{
		MonthsLate: months,
		LateFee:    Round2(fee),
		Total:      Round2(t.Rent + fee),
		Status:     Status(t.LastPaidDate != nil, months),
	}
}

// PolicyDescription renders the fee policy for reminder text, e.g.
// "5% per month" or "₹50 per month". A tenant with nothing overdue
// gets "No Late Fee".
func PolicyDescription(feeType string, feeValue float64, monthsLate int, currency string) string {
	if monthsLate == 0 {
		return "No Late Fee"
	}
	if feeType == models.FeeTypePercentage {
		return fmt.Sprintf("%s%% per month", FormatAmount(feeValue))
	}
	return fmt.Sprintf("%s%s per month", currency, FormatAmount(feeValue))
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a monetary value without trailing zeros (1500, 99.5).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}
