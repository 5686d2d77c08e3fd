package models

import "errors"

// ErrTenantNotFound is returned when a tenant id does not exist in the store.
var ErrTenantNotFound = errors.New("tenant not found")

// Fee policy kinds. The policy is a closed variant: anything that is not
// "percentage" is normalized to "flat" at the input boundary.
const (
	FeeTypePercentage = "percentage"
	FeeTypeFlat       = "flat"
)

type Tenant struct {
	ID           int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string  `json:"name" gorm:"not null"`
	Room         string  `json:"room" gorm:"not null"`
	Phone        string  `json:"phone" gorm:"not null"`
	Rent         float64 `json:"rent" gorm:"not null"`
	DueDate      string  `json:"due_date" gorm:"not null"` // ISO YYYY-MM-DD
	LateFeeType  string  `json:"late_fee_type" gorm:"not null"`
	LateFeeValue float64 `json:"late_fee_value" gorm:"not null"`
	LastPaidDate *string `json:"last_paid_date"` // ISO YYYY-MM-DD, nil = never paid
}

func (Tenant) TableName() string {
	return "tenants"
}

// CreateTenantRequest carries the validated /add form fields.
type CreateTenantRequest struct {
	Name         string  `json:"name"`
	Room         string  `json:"room"`
	Phone        string  `json:"phone"`
	Rent         float64 `json:"rent"`
	DueDate      string  `json:"due_date"`
	LateFeeType  string  `json:"late_fee_type"`
	LateFeeValue float64 `json:"late_fee_value"`
}

// TenantDues is a tenant row enriched with the computed late fee,
// total payable and display status for the dashboard and JSON API.
type TenantDues struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Room       string  `json:"room"`
	Phone      string  `json:"phone"`
	Rent       float64 `json:"rent"`
	MonthsLate int     `json:"months_late"`
	LateFee    float64 `json:"late_fee"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
}
