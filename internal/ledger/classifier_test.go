package ledger

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: uuid.New(), Name: "Salary", Type: models.TransactionTypeIncome},
		{ID: uuid.New(), Name: "Food", Type: models.TransactionTypeExpense},
		{ID: uuid.New(), Name: "Transport", Type: models.TransactionTypeExpense},
	}
}

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(testCategories())

	tests := []struct {
		name        string
		transaction models.Transaction
		want        string
	}{
		{
			name:        "explicit income type wins",
			transaction: models.Transaction{Category: "Food", Type: models.TransactionTypeIncome},
			want:        models.TransactionTypeIncome,
		},
		{
			name:        "explicit expense type wins over income category",
			transaction: models.Transaction{Category: "Salary", Type: models.TransactionTypeExpense},
			want:        models.TransactionTypeExpense,
		},
		{
			name:        "legacy row resolves through income category",
			transaction: models.Transaction{Category: "Salary"},
			want:        models.TransactionTypeIncome,
		},
		{
			name:        "legacy row resolves through expense category",
			transaction: models.Transaction{Category: "Transport"},
			want:        models.TransactionTypeExpense,
		},
		{
			name:        "unknown category defaults to expense",
			transaction: models.Transaction{Category: "Deleted Category"},
			want:        models.TransactionTypeExpense,
		},
		{
			name:        "empty category defaults to expense",
			transaction: models.Transaction{},
			want:        models.TransactionTypeExpense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(&tt.transaction))
		})
	}
}

func TestClassifier_EmptyCategorySet(t *testing.T) {
	classifier := NewClassifier(nil)

	txn := models.Transaction{Category: "Food"}
	assert.Equal(t, models.TransactionTypeExpense, classifier.Classify(&txn))

	typed := models.Transaction{Category: "Food", Type: models.TransactionTypeIncome}
	assert.Equal(t, models.TransactionTypeIncome, classifier.Classify(&typed))
}

// Classification is total: every transaction lands in exactly one bucket, so
// the two bucket sums always add back up to the full ledger sum.
func TestClassifier_BucketTotality(t *testing.T) {
	classifier := NewClassifier(testCategories())

	transactions := []models.Transaction{
		{Category: "Salary", Amount: decimal.NewFromInt(2000), Date: time.Now()},
		{Category: "Food", Amount: decimal.NewFromInt(500), Date: time.Now()},
		{Category: "Unknown", Amount: decimal.NewFromInt(75), Date: time.Now()},
		{Category: "Food", Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(25), Date: time.Now()},
	}

	income, expense, total := decimal.Zero, decimal.Zero, decimal.Zero
	for i := range transactions {
		total = total.Add(transactions[i].Amount)
		if classifier.Classify(&transactions[i]) == models.TransactionTypeIncome {
			income = income.Add(transactions[i].Amount)
		} else {
			expense = expense.Add(transactions[i].Amount)
		}
	}

	assert.True(t, income.Add(expense).Equal(total))
}
