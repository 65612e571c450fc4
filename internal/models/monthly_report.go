package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyReport contains the derived figures for one calendar month. It is
// recomputed from the live transaction set on every view load and never
// persisted.
type MonthlyReport struct {
	Month            string                     `json:"month"`
	PeriodStart      time.Time                  `json:"period_start"`
	PeriodEnd        time.Time                  `json:"period_end"`
	TotalIncome      decimal.Decimal            `json:"total_income"`
	TotalExpense     decimal.Decimal            `json:"total_expense"`
	NetSavings       decimal.Decimal            `json:"net_savings"`
	SavingsRatePct   decimal.Decimal            `json:"savings_rate_pct"`
	PerCategorySpend map[string]decimal.Decimal `json:"per_category_spend"`
	TransactionCount int                        `json:"transaction_count"`
	GeneratedAt      time.Time                  `json:"generated_at"`
}

// BudgetLine is one evaluated budget row: configured limit joined against
// actual spend for the period. A zero limit means "no limit"; such lines are
// never flagged over.
type BudgetLine struct {
	Category       string          `json:"category"`
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	UtilizationPct decimal.Decimal `json:"utilization_pct"`
	OverLimit      bool            `json:"over_limit"`
}

// IsGlobal returns true for the whole-ledger line
func (l *BudgetLine) IsGlobal() bool {
	return l.Category == GlobalBudgetCategory
}

// DashboardData bundles everything the landing view needs for one user:
// the current month's report, its evaluated budget lines, every goal with
// progress, and the latest transactions.
type DashboardData struct {
	Report             MonthlyReport  `json:"report"`
	BudgetLines        []BudgetLine   `json:"budget_lines"`
	Goals              []SavingsGoal  `json:"goals"`
	GoalProgress       []GoalProgress `json:"goal_progress"`
	RecentTransactions []Transaction  `json:"recent_transactions"`
}

// GoalProgress is the derived completion state of a savings goal.
type GoalProgress struct {
	ProgressPct decimal.Decimal `json:"progress_pct"`
	Remaining   decimal.Decimal `json:"remaining"`
	Completed   bool            `json:"completed"`
}
