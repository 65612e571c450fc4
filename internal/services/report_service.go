package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/ledger"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const dashboardRecentTransactions = 5

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized access to resource")
)

type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	goalRepo        repositories.SavingsGoalRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	goalRepo repositories.SavingsGoalRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		metrics:         metrics,
	}
}

func (s *reportService) GetMonthlyReport(ctx context.Context, userID uuid.UUID, month string) (*models.MonthlyReport, []models.BudgetLine, error) {
	period, err := s.resolvePeriod(month)
	if err != nil {
		return nil, nil, err
	}

	started := time.Now()

	transactions, categories, budgets, err := s.fetchReportInputs(ctx, userID, period)
	if err != nil {
		return nil, nil, err
	}

	report := ledger.ComputeMonthlyReport(transactions, categories, period)
	lines := ledger.EvaluateBudgets(report, budgets)

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("report.generation", time.Since(started))
		s.metrics.IncrementCounter("report.generated", map[string]string{"view": "monthly"})
	}

	slog.Info("monthly report generated",
		"user_id", userID,
		"month", period.Token,
		"transaction_count", report.TransactionCount,
		"budget_lines", len(lines))

	return &report, lines, nil
}

func (s *reportService) GetDashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardData, error) {
	period := ledger.CurrentMonthPeriod()
	started := time.Now()

	var (
		transactions []models.Transaction
		categories   []models.Category
		budgets      []models.Budget
		goals        []models.SavingsGoal
		recent       []models.Transaction
	)

	// All reads are dispatched concurrently and must complete before any
	// aggregation starts.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetByUserAndDateRange(userID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListForUser(userID)
		if err != nil {
			return fmt.Errorf("failed to fetch categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.ListByUserAndMonth(userID, period.Token)
		if err != nil {
			return fmt.Errorf("failed to fetch budgets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.ListByUser(userID)
		if err != nil {
			return fmt.Errorf("failed to fetch goals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = s.transactionRepo.GetRecentByUserID(userID, dashboardRecentTransactions)
		if err != nil {
			return fmt.Errorf("failed to fetch recent transactions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to assemble dashboard",
			"user_id", userID,
			"error", err)
		return nil, err
	}

	report := ledger.ComputeMonthlyReport(transactions, categories, period)
	lines := ledger.EvaluateBudgets(report, budgets)

	progress := make([]models.GoalProgress, len(goals))
	for i := range goals {
		progress[i] = ledger.ComputeGoalProgress(&goals[i])
	}

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("report.generation", time.Since(started))
		s.metrics.IncrementCounter("report.generated", map[string]string{"view": "dashboard"})
	}

	slog.Info("dashboard assembled",
		"user_id", userID,
		"month", period.Token,
		"transaction_count", report.TransactionCount,
		"goal_count", len(goals))

	return &models.DashboardData{
		Report:             report,
		BudgetLines:        lines,
		Goals:              goals,
		GoalProgress:       progress,
		RecentTransactions: recent,
	}, nil
}

// resolvePeriod maps an optional month token to a concrete period, falling
// back to the current month when the token is empty.
func (s *reportService) resolvePeriod(month string) (ledger.Period, error) {
	if month == "" {
		return ledger.CurrentMonthPeriod(), nil
	}

	period, err := ledger.MonthPeriod(month)
	if err != nil {
		slog.Warn("rejected malformed month token", "month", month)
		return ledger.Period{}, err
	}
	return period, nil
}

func (s *reportService) fetchReportInputs(ctx context.Context, userID uuid.UUID, period ledger.Period) ([]models.Transaction, []models.Category, []models.Budget, error) {
	var (
		transactions []models.Transaction
		categories   []models.Category
		budgets      []models.Budget
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetByUserAndDateRange(userID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListForUser(userID)
		if err != nil {
			return fmt.Errorf("failed to fetch categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.ListByUserAndMonth(userID, period.Token)
		if err != nil {
			return fmt.Errorf("failed to fetch budgets: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("failed to fetch report inputs",
			"user_id", userID,
			"month", period.Token,
			"error", err)
		return nil, nil, nil, err
	}

	return transactions, categories, budgets, nil
}
