package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/ledger"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type goalService struct {
	goalRepo repositories.SavingsGoalRepositoryInterface
	metrics  MetricsRecorderInterface
}

func NewGoalService(
	goalRepo repositories.SavingsGoalRepositoryInterface,
	metrics MetricsRecorderInterface,
) GoalServiceInterface {
	return &goalService{
		goalRepo: goalRepo,
		metrics:  metrics,
	}
}

func (s *goalService) CreateGoal(userID uuid.UUID, name string, targetAmount, currentAmount decimal.Decimal) (*models.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrMissingGoalName
	}
	if targetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidTargetAmount
	}
	if currentAmount.IsNegative() {
		return nil, models.ErrNegativeSavedAmount
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
	}

	if err := s.goalRepo.Create(goal); err != nil {
		slog.Error("failed to create savings goal",
			"user_id", userID,
			"name", name,
			"error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("goal.created", nil)
	}

	slog.Info("savings goal created",
		"goal_id", goal.ID,
		"user_id", userID,
		"name", name)

	return goal, nil
}

func (s *goalService) GetGoal(userID, goalID uuid.UUID) (*models.SavingsGoal, models.GoalProgress, error) {
	goal, err := s.getOwnedGoal(userID, goalID)
	if err != nil {
		return nil, models.GoalProgress{}, err
	}
	return goal, ledger.ComputeGoalProgress(goal), nil
}

func (s *goalService) ListGoals(userID uuid.UUID) ([]models.SavingsGoal, []models.GoalProgress, error) {
	goals, err := s.goalRepo.ListByUser(userID)
	if err != nil {
		slog.Error("failed to list savings goals",
			"user_id", userID,
			"error", err)
		return nil, nil, err
	}

	progress := make([]models.GoalProgress, len(goals))
	for i := range goals {
		progress[i] = ledger.ComputeGoalProgress(&goals[i])
	}

	return goals, progress, nil
}

func (s *goalService) DeleteGoal(userID, goalID uuid.UUID) error {
	if _, err := s.getOwnedGoal(userID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.Delete(goalID); err != nil {
		slog.Error("failed to delete savings goal",
			"goal_id", goalID,
			"user_id", userID,
			"error", err)
		return err
	}

	slog.Info("savings goal deleted",
		"goal_id", goalID,
		"user_id", userID)

	return nil
}

// AddFunds deposits into a goal. The delta must be positive; the write goes
// through the repository's transactional read-modify-write so concurrent
// deposits both land.
func (s *goalService) AddFunds(userID, goalID uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, models.GoalProgress, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.GoalProgress{}, models.ErrNonPositiveGoalDelta
	}

	if _, err := s.getOwnedGoal(userID, goalID); err != nil {
		return nil, models.GoalProgress{}, err
	}

	goal, err := s.goalRepo.AddToCurrent(goalID, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, models.GoalProgress{}, ErrNotFound
		}
		slog.Error("failed to add funds to savings goal",
			"goal_id", goalID,
			"user_id", userID,
			"error", err)
		return nil, models.GoalProgress{}, err
	}

	progress := ledger.ComputeGoalProgress(goal)

	if s.metrics != nil {
		s.metrics.IncrementCounter("goal.funded", nil)
		if progress.Completed {
			s.metrics.IncrementCounter("goal.completed", nil)
		}
	}

	slog.Info("funds added to savings goal",
		"goal_id", goalID,
		"user_id", userID,
		"completed", progress.Completed)

	return goal, progress, nil
}

// SetAmount overwrites the saved amount with an absolute value.
func (s *goalService) SetAmount(userID, goalID uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, models.GoalProgress, error) {
	if amount.IsNegative() {
		return nil, models.GoalProgress{}, models.ErrNegativeSavedAmount
	}

	if _, err := s.getOwnedGoal(userID, goalID); err != nil {
		return nil, models.GoalProgress{}, err
	}

	goal, err := s.goalRepo.SetCurrentAmount(goalID, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, models.GoalProgress{}, ErrNotFound
		}
		slog.Error("failed to set savings goal amount",
			"goal_id", goalID,
			"user_id", userID,
			"error", err)
		return nil, models.GoalProgress{}, err
	}

	slog.Info("savings goal amount set",
		"goal_id", goalID,
		"user_id", userID)

	return goal, ledger.ComputeGoalProgress(goal), nil
}

func (s *goalService) getOwnedGoal(userID, goalID uuid.UUID) (*models.SavingsGoal, error) {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}

	if goal.UserID != userID {
		slog.Warn("unauthorized access attempt to savings goal",
			"goal_id", goalID,
			"owner_id", goal.UserID,
			"requestor_id", userID)
		return nil, ErrUnauthorized
	}

	return goal, nil
}
