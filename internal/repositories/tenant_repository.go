package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rent-backend/internal/models"
)

type TenantRepository struct {
	DB *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) List(ctx context.Context) ([]*models.Tenant, error) {
	var tenants []*models.Tenant
	if err := r.DB.WithContext(ctx).Order("id").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	if err := r.DB.WithContext(ctx).Create(tenant).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	return nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id int) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.DB.WithContext(ctx).First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant %d: %w", id, err)
	}
	return &tenant, nil
}

// SetLastPaid records a payment date for a tenant. An unknown id updates
// zero rows and is reported as success; callers that need existence checks
// use GetByID first.
func (r *TenantRepository) SetLastPaid(ctx context.Context, id int, date string) error {
	err := r.DB.WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", id).
		Update("last_paid_date", date).Error
	if err != nil {
		return fmt.Errorf("failed to set last paid date for tenant %d: %w", id, err)
	}
	return nil
}

// Count returns the total number of tenants, used by the business gauges
// exported on /metrics.
func (r *TenantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Tenant{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tenants: %w", err)
	}
	return count, nil
}
