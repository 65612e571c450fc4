package ledger

import (
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeMonthlyReport reduces the transactions falling inside the period
// into the monthly totals. Every in-period transaction is counted in exactly
// one of the income/expense buckets; income rows contribute only to the
// income total, never to per-category spend.
func ComputeMonthlyReport(transactions []models.Transaction, categories []models.Category, period Period) models.MonthlyReport {
	classifier := NewClassifier(categories)

	report := models.MonthlyReport{
		Month:            period.Token,
		PeriodStart:      period.Start,
		PeriodEnd:        period.End,
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		NetSavings:       decimal.Zero,
		SavingsRatePct:   decimal.Zero,
		PerCategorySpend: make(map[string]decimal.Decimal),
		GeneratedAt:      time.Now(),
	}

	for i := range transactions {
		txn := &transactions[i]

		if !period.Contains(txn.Date) {
			continue
		}

		report.TransactionCount++

		if classifier.Classify(txn) == models.TransactionTypeIncome {
			report.TotalIncome = report.TotalIncome.Add(txn.Amount)
			continue
		}

		report.TotalExpense = report.TotalExpense.Add(txn.Amount)
		spent, ok := report.PerCategorySpend[txn.Category]
		if !ok {
			spent = decimal.Zero
		}
		report.PerCategorySpend[txn.Category] = spent.Add(txn.Amount)
	}

	report.NetSavings = report.TotalIncome.Sub(report.TotalExpense)

	if report.TotalIncome.IsPositive() {
		report.SavingsRatePct = report.NetSavings.Div(report.TotalIncome).Mul(oneHundred)
	}

	return report
}
