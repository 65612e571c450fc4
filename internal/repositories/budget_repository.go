package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// ListByUserAndMonth retrieves all budget rows for one user and month
func (r *budgetRepository) ListByUserAndMonth(userID uuid.UUID, month string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ? AND month = ?", userID, month).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// Replace sets the limit for (user, category, month) as one conditional
// upsert on the unique key. Concurrent readers see either the old row or the
// new one, never a gap.
func (r *budgetRepository) Replace(userID uuid.UUID, category, month string, amount decimal.Decimal) (*models.Budget, error) {
	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Month:    month,
		Amount:   amount,
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     amount,
			"updated_at": time.Now(),
		}),
	}).Create(budget).Error; err != nil {
		return nil, fmt.Errorf("failed to replace budget: %w", err)
	}

	// The conflict path keeps the existing row's identity; reload so the
	// caller sees the stored state rather than the candidate insert.
	var stored models.Budget
	if err := r.db.Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to reload budget after replace: %w", err)
	}

	return &stored, nil
}

// DeleteByKey removes the budget row for (user, category, month)
func (r *budgetRepository) DeleteByKey(userID uuid.UUID, category, month string) error {
	result := r.db.Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
