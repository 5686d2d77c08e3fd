package services

import (
	"context"
	"fmt"
	"time"

	"rent-backend/internal/billing"
	"rent-backend/internal/models"
	"rent-backend/internal/repositories"
	"rent-backend/internal/timeutil"
)

type TenantService struct {
	Repo *repositories.TenantRepository
}

func NewTenantService(repo *repositories.TenantRepository) *TenantService {
	return &TenantService{Repo: repo}
}

func (s *TenantService) AddTenant(ctx context.Context, req *models.CreateTenantRequest) (*models.Tenant, error) {
	tenant := &models.Tenant{
		Name:         req.Name,
		Room:         req.Room,
		Phone:        req.Phone,
		Rent:         req.Rent,
		DueDate:      req.DueDate,
		LateFeeType:  req.LateFeeType,
		LateFeeValue: req.LateFeeValue,
	}
	if err := s.Repo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// ListDues loads every tenant and applies the late-fee calculator against
// the given reference date.
func (s *TenantService) ListDues(ctx context.Context, today time.Time) ([]*models.TenantDues, error) {
	tenants, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dues := make([]*models.TenantDues, 0, len(tenants))
	for _, t := range tenants {
		due, err := timeutil.ParseDate(t.DueDate)
		if err != nil {
			return nil, fmt.Errorf("tenant %d has invalid due date %q: %w", t.ID, t.DueDate, err)
		}
		charges := billing.Assess(t, due, today)
		dues = append(dues, &models.TenantDues{
			ID:         t.ID,
			Name:       t.Name,
			Room:       t.Room,
			Phone:      t.Phone,
			Rent:       t.Rent,
			MonthsLate: charges.MonthsLate,
			LateFee:    charges.LateFee,
			Total:      charges.Total,
			Status:     charges.Status,
		})
	}
	return dues, nil
}

// MarkPaid records today's date as the tenant's last payment. An unknown id
// updates zero rows and still succeeds; the redirect behavior of the
// original system depends on it.
func (s *TenantService) MarkPaid(ctx context.Context, id int, today time.Time) error {
	return s.Repo.SetLastPaid(ctx, id, timeutil.FormatDate(today))
}

func (s *TenantService) GetTenant(ctx context.Context, id int) (*models.Tenant, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *TenantService) CountTenants(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
