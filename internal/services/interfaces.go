package services

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportServiceInterface builds derived financial views for one user
type ReportServiceInterface interface {
	// GetMonthlyReport aggregates a user's ledger for one month and evaluates
	// the month's budgets against it
	GetMonthlyReport(ctx context.Context, userID uuid.UUID, month string) (*models.MonthlyReport, []models.BudgetLine, error)

	// GetDashboard assembles the current month's report, budget lines, goal
	// progress and most recent transactions in one call
	GetDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardData, error)
}

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, amount decimal.Decimal, category, txnType, description string, date time.Time) (*models.Transaction, error)
	GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uuid.UUID, amount decimal.Decimal, category, txnType, description string, date time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uuid.UUID) error
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, name, categoryType string) (*models.Category, error)
	ListCategories(userID uuid.UUID) ([]models.Category, error)
	DeleteCategory(userID, categoryID uuid.UUID) error
}

// BudgetServiceInterface defines monthly budget operations. An empty category
// addresses the whole-ledger limit.
type BudgetServiceInterface interface {
	SetBudget(userID uuid.UUID, category, month string, amount decimal.Decimal) (*models.Budget, error)
	ListBudgets(userID uuid.UUID, month string) ([]models.Budget, error)
	DeleteBudget(userID uuid.UUID, category, month string) error
}

// GoalServiceInterface defines savings goal operations
type GoalServiceInterface interface {
	CreateGoal(userID uuid.UUID, name string, targetAmount, currentAmount decimal.Decimal) (*models.SavingsGoal, error)
	GetGoal(userID, goalID uuid.UUID) (*models.SavingsGoal, models.GoalProgress, error)
	ListGoals(userID uuid.UUID) ([]models.SavingsGoal, []models.GoalProgress, error)
	DeleteGoal(userID, goalID uuid.UUID) error

	// AddFunds applies a positive delta to the saved amount
	AddFunds(userID, goalID uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, models.GoalProgress, error)

	// SetAmount overwrites the saved amount with an absolute value
	SetAmount(userID, goalID uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, models.GoalProgress, error)
}

// TokenServiceInterface validates bearer tokens for authenticated routes
type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface abstracts metric recording for business events
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleDataGeneratorInterface generates realistic ledger data for demos and tests
type SampleDataGeneratorInterface interface {
	GenerateTransactions(userID uuid.UUID, months int) []*models.Transaction
	GenerateSalaryTransactions(userID uuid.UUID, months int) []*models.Transaction
	GenerateExpenseTransactions(userID uuid.UUID, months int) []*models.Transaction
	GenerateAmount(category string) decimal.Decimal
	GenerateTimestamp(start, end time.Time) time.Time
}
