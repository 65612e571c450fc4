package ledger

import (
	"sort"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// EvaluateBudgets joins the report's per-category spend against the budget
// rows configured for the period. The returned lines cover the union of
// budgeted categories and categories with spend, so a category with spend
// but no budget still shows up (zero limit, never flagged over) and a budget
// with no spend shows up at 0% utilization.
//
// The _GLOBAL_ line aggregates across all expense categories combined and is
// returned first, ahead of the per-category lines. Its spend intentionally
// double-counts the category lines: they answer different questions.
func EvaluateBudgets(report models.MonthlyReport, budgets []models.Budget) []models.BudgetLine {
	limits := make(map[string]decimal.Decimal, len(budgets))
	for i := range budgets {
		limits[budgets[i].Category] = budgets[i].Amount
	}

	categories := make([]string, 0, len(limits)+len(report.PerCategorySpend))
	seen := make(map[string]bool, len(limits)+len(report.PerCategorySpend))
	for category := range limits {
		if category == models.GlobalBudgetCategory {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}
	for category := range report.PerCategorySpend {
		if !seen[category] {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	lines := make([]models.BudgetLine, 0, len(categories)+1)

	globalLimit, ok := limits[models.GlobalBudgetCategory]
	if !ok {
		globalLimit = decimal.Zero
	}
	lines = append(lines, evaluateLine(models.GlobalBudgetCategory, globalLimit, report.TotalExpense))

	for _, category := range categories {
		limit, ok := limits[category]
		if !ok {
			limit = decimal.Zero
		}
		spent, ok := report.PerCategorySpend[category]
		if !ok {
			spent = decimal.Zero
		}
		lines = append(lines, evaluateLine(category, limit, spent))
	}

	return lines
}

// evaluateLine computes the utilization figures for one budget line. A zero
// limit means "no limit": utilization pins to 0 and the line is never over.
func evaluateLine(category string, limit, spent decimal.Decimal) models.BudgetLine {
	line := models.BudgetLine{
		Category:       category,
		Limit:          limit,
		Spent:          spent,
		Remaining:      limit.Sub(spent),
		UtilizationPct: decimal.Zero,
	}

	if limit.IsPositive() {
		line.UtilizationPct = spent.Div(limit).Mul(oneHundred)
		line.OverLimit = spent.GreaterThan(limit)
	}

	return line
}
