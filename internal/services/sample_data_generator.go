package services

import (
	"math/rand"
	"time"

	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryHour        = 9
	spendingHourStart = 7
	spendingHourEnd   = 23
	purchasesPerMonth = 18
)

type sampleDataGenerator struct {
	rng *rand.Rand
}

// NewSampleDataGenerator creates a generator for realistic demo ledgers
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataGenerator{
		rng: rand.New(source),
	}
}

// GenerateTransactions produces a full demo ledger covering the given number
// of trailing months: monthly salary plus day-to-day spending.
func (g *sampleDataGenerator) GenerateTransactions(userID uuid.UUID, months int) []*models.Transaction {
	transactions := g.GenerateSalaryTransactions(userID, months)
	transactions = append(transactions, g.GenerateExpenseTransactions(userID, months)...)
	return transactions
}

// GenerateSalaryTransactions generates one salary deposit per month
func (g *sampleDataGenerator) GenerateSalaryTransactions(userID uuid.UUID, months int) []*models.Transaction {
	salaryAmounts := []float64{2500.00, 3000.00, 3500.00, 4000.00, 4500.00}
	baseSalary := salaryAmounts[g.rng.Intn(len(salaryAmounts))]

	transactions := make([]*models.Transaction, 0, months)
	now := time.Now()

	for i := 0; i < months; i++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)
		payDay := time.Date(monthStart.Year(), monthStart.Month(), 25, salaryHour, 0, 0, 0, time.Local)
		if payDay.After(now) {
			continue
		}

		timestamp := payDay
		transactions = append(transactions, &models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      decimal.NewFromFloat(baseSalary),
			Category:    "Salary",
			Type:        models.TransactionTypeIncome,
			Description: "Salary - " + gofakeit.Company(),
			Date:        timestamp,
			CreatedAt:   timestamp,
			UpdatedAt:   timestamp,
		})
	}

	return transactions
}

// GenerateExpenseTransactions generates scattered purchases across the
// trailing months using the default expense categories
func (g *sampleDataGenerator) GenerateExpenseTransactions(userID uuid.UUID, months int) []*models.Transaction {
	categories := []string{"Food", "Transport", "Housing", "Utilities", "Entertainment", "Health", "Shopping", "Other"}

	transactions := make([]*models.Transaction, 0, months*purchasesPerMonth)
	now := time.Now()

	for i := 0; i < months; i++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)
		if monthEnd.After(now) {
			monthEnd = now
		}
		if !monthStart.Before(monthEnd) {
			continue
		}

		for j := 0; j < purchasesPerMonth; j++ {
			category := categories[g.rng.Intn(len(categories))]
			timestamp := g.GenerateTimestamp(monthStart, monthEnd)

			transactions = append(transactions, &models.Transaction{
				ID:          uuid.New(),
				UserID:      userID,
				Amount:      g.GenerateAmount(category),
				Category:    category,
				Type:        models.TransactionTypeExpense,
				Description: gofakeit.ProductName(),
				Date:        timestamp,
				CreatedAt:   timestamp,
				UpdatedAt:   timestamp,
			})
		}
	}

	return transactions
}

// GenerateAmount generates a realistic amount based on category
func (g *sampleDataGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.getAmountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *sampleDataGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		"Food":          {8.00, 180.00},
		"Transport":     {3.00, 90.00},
		"Housing":       {400.00, 1500.00},
		"Utilities":     {40.00, 250.00},
		"Entertainment": {10.00, 80.00},
		"Health":        {15.00, 300.00},
		"Shopping":      {20.00, 400.00},
		"Salary":        {2000.00, 8000.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateTimestamp generates a random timestamp within the date range,
// clamped to waking hours
func (g *sampleDataGenerator) GenerateTimestamp(start, end time.Time) time.Time {
	diff := end.Sub(start)
	randomDuration := time.Duration(g.rng.Int63n(int64(diff)))
	timestamp := start.Add(randomDuration)

	hour := spendingHourStart + g.rng.Intn(spendingHourEnd-spendingHourStart)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	return time.Date(
		timestamp.Year(),
		timestamp.Month(),
		timestamp.Day(),
		hour,
		minute,
		second,
		0,
		time.Local,
	)
}
