package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-backend/internal/models"
	"rent-backend/internal/services"
)

func TestReminderService_Message(t *testing.T) {
	repo := setupTestRepo(t)
	svc := services.NewReminderService(repo, "₹")
	ctx := context.Background()

	tenant := &models.Tenant{
		Name:         "Asha",
		Room:         "101",
		Phone:        "9876543210",
		Rent:         5000,
		DueDate:      "2024-01-05",
		LateFeeType:  models.FeeTypePercentage,
		LateFeeValue: 5,
	}
	require.NoError(t, repo.Create(ctx, tenant))

	msg, err := svc.Message(ctx, tenant.ID, istDate("2024-03-10"))
	require.NoError(t, err)

	assert.Contains(t, msg, "Hi Asha,")
	assert.Contains(t, msg, "Your rent of ₹5000 for Room 101 is pending.")
	assert.Contains(t, msg, "Late Fee Policy: 5% per month")
	assert.Contains(t, msg, "Late Fee Applied: ₹500")
	assert.Contains(t, msg, "Total Payable: ₹5500")
	assert.Contains(t, msg, "Kindly clear the payment soon.")
}

func TestReminderService_Message_NoLateFee(t *testing.T) {
	repo := setupTestRepo(t)
	svc := services.NewReminderService(repo, "₹")
	ctx := context.Background()

	tenant := &models.Tenant{
		Name:         "Ravi",
		Room:         "102",
		Phone:        "9123456780",
		Rent:         3000,
		DueDate:      "2024-03-05",
		LateFeeType:  models.FeeTypeFlat,
		LateFeeValue: 100,
	}
	require.NoError(t, repo.Create(ctx, tenant))

	msg, err := svc.Message(ctx, tenant.ID, istDate("2024-03-20"))
	require.NoError(t, err)

	assert.Contains(t, msg, "Late Fee Policy: No Late Fee")
	assert.Contains(t, msg, "Late Fee Applied: ₹0")
	assert.Contains(t, msg, "Total Payable: ₹3000")
}

func TestReminderService_Message_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	svc := services.NewReminderService(repo, "₹")

	_, err := svc.Message(context.Background(), 999, istDate("2024-03-10"))
	assert.ErrorIs(t, err, models.ErrTenantNotFound)
}

func TestReminderService_Slip(t *testing.T) {
	repo := setupTestRepo(t)
	svc := services.NewReminderService(repo, "₹")
	ctx := context.Background()

	tenant := &models.Tenant{
		Name:         "Asha",
		Room:         "101",
		Phone:        "9876543210",
		Rent:         5000,
		DueDate:      "2024-01-05",
		LateFeeType:  models.FeeTypePercentage,
		LateFeeValue: 5,
	}
	require.NoError(t, repo.Create(ctx, tenant))

	pdf, err := svc.Slip(ctx, tenant.ID, istDate("2024-03-10"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestReminderService_Slip_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	svc := services.NewReminderService(repo, "₹")

	_, err := svc.Slip(context.Background(), 999, istDate("2024-03-10"))
	assert.ErrorIs(t, err, models.ErrTenantNotFound)
}
