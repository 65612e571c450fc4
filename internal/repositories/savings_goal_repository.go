package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("savings goal not found")
)

// savingsGoalRepository implements SavingsGoalRepositoryInterface
type savingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository
func NewSavingsGoalRepository(db *gorm.DB) SavingsGoalRepositoryInterface {
	return &savingsGoalRepository{
		db: db,
	}
}

// Create creates a new savings goal
func (r *savingsGoalRepository) Create(goal *models.SavingsGoal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}
	return nil
}

// GetByID retrieves a savings goal by ID
func (r *savingsGoalRepository) GetByID(id uuid.UUID) (*models.SavingsGoal, error) {
	goal := &models.SavingsGoal{ID: id}
	if err := r.db.First(goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}
	return goal, nil
}

// ListByUser retrieves all goals for a user, newest first
func (r *savingsGoalRepository) ListByUser(userID uuid.UUID) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	return goals, nil
}

// Delete removes a savings goal
func (r *savingsGoalRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.SavingsGoal{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete savings goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// SetCurrentAmount overwrites the saved amount with an absolute value
func (r *savingsGoalRepository) SetCurrentAmount(id uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, error) {
	result := r.db.Model(&models.SavingsGoal{ID: id}).
		Updates(map[string]interface{}{
			"current_amount": amount,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to set goal amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrGoalNotFound
	}

	return r.GetByID(id)
}

// AddToCurrent applies a delta as a read-modify-write inside one database
// transaction, so two concurrent deposits both land instead of the later
// write clobbering the earlier one.
func (r *savingsGoalRepository) AddToCurrent(id uuid.UUID, delta decimal.Decimal) (*models.SavingsGoal, error) {
	var updated models.SavingsGoal

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var goal models.SavingsGoal
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&goal, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("failed to load goal for update: %w", err)
		}

		goal.CurrentAmount = goal.CurrentAmount.Add(delta)
		if goal.CurrentAmount.IsNegative() {
			return models.ErrNegativeSavedAmount
		}

		if err := tx.Model(&models.SavingsGoal{ID: id}).
			Updates(map[string]interface{}{
				"current_amount": goal.CurrentAmount,
				"updated_at":     time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update goal amount: %w", err)
		}

		updated = goal
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
