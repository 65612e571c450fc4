package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetAmount  = errors.New("goal target amount must be positive")
	ErrNegativeSavedAmount  = errors.New("goal current amount cannot be negative")
	ErrMissingGoalName      = errors.New("goal name is required")
	ErrNonPositiveGoalDelta = errors.New("amount to add must be positive")
)

// SavingsGoal tracks money put aside toward a named target. CurrentAmount is
// mutated either by an absolute overwrite (the low-level primitive) or by a
// read-modify-write delta; callers pick the one matching their semantics.
type SavingsGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for SavingsGoal
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for SavingsGoal
func (g *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	// Skip validation for map-based updates where the receiver is empty
	// and only specific columns change
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the savings goal fields
func (g *SavingsGoal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if g.Name == "" {
		return ErrMissingGoalName
	}

	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTargetAmount
	}

	if g.CurrentAmount.IsNegative() {
		return ErrNegativeSavedAmount
	}

	return nil
}

// IsCompleted returns true once the saved amount has reached the target
func (g *SavingsGoal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// TableName returns the table name for SavingsGoal
func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
