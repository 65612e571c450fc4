package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GlobalBudgetCategory is the sentinel category for a whole-ledger monthly
// limit, evaluated in addition to per-category budgets.
const GlobalBudgetCategory = "_GLOBAL_"

// MonthTokenLayout is the time layout for "YYYY-MM" month tokens.
const MonthTokenLayout = "2006-01"

var (
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
	ErrInvalidMonthToken   = errors.New("month must be in YYYY-MM format")
	ErrMissingBudgetScope  = errors.New("budget category is required")
)

// Budget is a monthly spend limit for one category, or for the whole ledger
// when Category is GlobalBudgetCategory. One row exists per
// (user, category, month); setting a new limit replaces the row atomically.
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_month" json:"user_id"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_user_category_month" json:"category"`
	Month     string          `gorm:"type:varchar(7);not null;index;uniqueIndex:idx_budgets_user_category_month" json:"month"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if b.Category == "" {
		return ErrMissingBudgetScope
	}

	if !IsValidMonthToken(b.Month) {
		return ErrInvalidMonthToken
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	return nil
}

// IsGlobal returns true for whole-ledger budget rows
func (b *Budget) IsGlobal() bool {
	return b.Category == GlobalBudgetCategory
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidMonthToken checks that a month token parses as "YYYY-MM"
func IsValidMonthToken(month string) bool {
	if len(month) != len(MonthTokenLayout) {
		return false
	}
	_, err := time.Parse(MonthTokenLayout, month)
	return err == nil
}
