package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// SetBudget replaces the limit for (user, category, month). An empty category
// addresses the whole-ledger limit; setting a limit twice overwrites it.
func (s *budgetService) SetBudget(userID uuid.UUID, category, month string, amount decimal.Decimal) (*models.Budget, error) {
	category = strings.TrimSpace(category)

	if !models.IsValidMonthToken(month) {
		return nil, models.ErrInvalidMonthToken
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidBudgetAmount
	}

	scope := "category"
	if category == "" {
		category = models.GlobalBudgetCategory
		scope = "global"
	} else if err := s.validateCategoryVisible(userID, category); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.Replace(userID, category, month, amount)
	if err != nil {
		slog.Error("failed to set budget",
			"user_id", userID,
			"category", category,
			"month", month,
			"error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("budget.set", map[string]string{"scope": scope})
	}

	slog.Info("budget set",
		"budget_id", budget.ID,
		"user_id", userID,
		"category", category,
		"month", month)

	return budget, nil
}

func (s *budgetService) ListBudgets(userID uuid.UUID, month string) ([]models.Budget, error) {
	if !models.IsValidMonthToken(month) {
		return nil, models.ErrInvalidMonthToken
	}

	budgets, err := s.budgetRepo.ListByUserAndMonth(userID, month)
	if err != nil {
		slog.Error("failed to list budgets",
			"user_id", userID,
			"month", month,
			"error", err)
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) DeleteBudget(userID uuid.UUID, category, month string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		category = models.GlobalBudgetCategory
	}
	if !models.IsValidMonthToken(month) {
		return models.ErrInvalidMonthToken
	}

	if err := s.budgetRepo.DeleteByKey(userID, category, month); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrNotFound
		}
		slog.Error("failed to delete budget",
			"user_id", userID,
			"category", category,
			"month", month,
			"error", err)
		return err
	}

	slog.Info("budget deleted",
		"user_id", userID,
		"category", category,
		"month", month)

	return nil
}

func (s *budgetService) validateCategoryVisible(userID uuid.UUID, category string) error {
	_, err := s.categoryRepo.GetByName(userID, category)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to verify category: %w", err)
	}
	return nil
}
