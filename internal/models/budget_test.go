package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{
			name:   "valid category budget",
			budget: Budget{UserID: userID, Category: "Food", Month: "2024-03", Amount: decimal.NewFromInt(400)},
		},
		{
			name:   "valid global budget",
			budget: Budget{UserID: userID, Category: GlobalBudgetCategory, Month: "2024-03", Amount: decimal.NewFromInt(2000)},
		},
		{
			name:    "missing category",
			budget:  Budget{UserID: userID, Month: "2024-03", Amount: decimal.NewFromInt(400)},
			wantErr: ErrMissingBudgetScope,
		},
		{
			name:    "bad month token",
			budget:  Budget{UserID: userID, Category: "Food", Month: "03-2024", Amount: decimal.NewFromInt(400)},
			wantErr: ErrInvalidMonthToken,
		},
		{
			name:    "zero amount",
			budget:  Budget{UserID: userID, Category: "Food", Month: "2024-03", Amount: decimal.Zero},
			wantErr: ErrInvalidBudgetAmount,
		},
		{
			name:    "negative amount",
			budget:  Budget{UserID: userID, Category: "Food", Month: "2024-03", Amount: decimal.NewFromInt(-1)},
			wantErr: ErrInvalidBudgetAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBudget_IsGlobal(t *testing.T) {
	assert.True(t, (&Budget{Category: GlobalBudgetCategory}).IsGlobal())
	assert.False(t, (&Budget{Category: "Food"}).IsGlobal())
}

func TestIsValidMonthToken(t *testing.T) {
	assert.True(t, IsValidMonthToken("2024-03"))
	assert.True(t, IsValidMonthToken("1999-12"))
	assert.False(t, IsValidMonthToken("2024-13"))
	assert.False(t, IsValidMonthToken("2024-3"))
	assert.False(t, IsValidMonthToken("2024-03-01"))
	assert.False(t, IsValidMonthToken(""))
}
