package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	GetByUserAndDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(userID uuid.UUID, name string) (*models.Category, error)
	ListForUser(userID uuid.UUID) ([]models.Category, error)
	Delete(id uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	ListByUserAndMonth(userID uuid.UUID, month string) ([]models.Budget, error)
	// Replace sets the limit for (user, category, month) as a single atomic
	// upsert; readers never observe a state with the row missing.
	Replace(userID uuid.UUID, category, month string, amount decimal.Decimal) (*models.Budget, error)
	DeleteByKey(userID uuid.UUID, category, month string) error
}

// SavingsGoalRepositoryInterface defines the contract for savings goal repository operations
type SavingsGoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	GetByID(id uuid.UUID) (*models.SavingsGoal, error)
	ListByUser(userID uuid.UUID) ([]models.SavingsGoal, error)
	Delete(id uuid.UUID) error
	// SetCurrentAmount overwrites the saved amount with an absolute value.
	// It is the low-level primitive; callers computing old+delta should use
	// AddToCurrent instead so concurrent updates cannot be clobbered.
	SetCurrentAmount(id uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, error)
	// AddToCurrent applies a delta as a read-modify-write inside one
	// database transaction.
	AddToCurrent(id uuid.UUID, delta decimal.Decimal) (*models.SavingsGoal, error)
}
